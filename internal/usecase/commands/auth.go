package commands

import (
	"context"
	"time"

	"gaming-zone-booking/internal/domain/auth"
	"gaming-zone-booking/internal/domain/user"
	"gaming-zone-booking/internal/infra"
	"gaming-zone-booking/internal/pkg/clock"
	"gaming-zone-booking/internal/pkg/errs"
	"gaming-zone-booking/internal/usecase/shared"
)

var (
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Phone    string
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	User        *user.User
	AccessToken string
	ExpiresAt   time.Time
}

type AuthCommands interface {
	Register(ctx context.Context, in RegisterInput) (*user.User, error)
	Login(ctx context.Context, in LoginInput) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow    shared.UnitOfWork
	hasher PasswordHasher
	tokens TokenIssuer
	ttl    time.Duration
	clock  clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, hasher PasswordHasher, tokens TokenIssuer, ttl time.Duration, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:    uow,
		hasher: hasher,
		tokens: tokens,
		ttl:    ttl,
		clock:  clk,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, in RegisterInput) (*user.User, error) {
	reg, err := auth.NewRegistration(in.Email, in.Password, in.Name, in.Phone)
	if err != nil {
		return nil, err
	}

	hash, err := a.hasher.Hash(reg.Password().Value())
	if err != nil {
		return nil, err
	}

	u, err := user.NewUser(reg.Email(), reg.Name(), reg.Phone(), hash)
	if err != nil {
		return nil, err
	}

	var created *user.User
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var cerr error
		created, cerr = tx.Users().Create(ctx, tx.DB(), u)
		if infra.IsKind(cerr, infra.KindDuplicateKey) {
			return auth.ErrEmailTaken
		}
		return cerr
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	credentials, err := auth.NewCredentials(in.Email, in.Password)
	if err != nil {
		// Same answer as a wrong password so callers cannot enumerate accounts
		return nil, auth.ErrInvalidCredentials
	}

	u, err := a.uow.CommandReads().UserByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	if err := a.hasher.Compare(u.PasswordHash(), credentials.Password().Value()); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	token, err := a.tokens.GenerateToken(u.Actor())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		User:        u,
		AccessToken: token,
		ExpiresAt:   a.clock.Now().Add(a.ttl),
	}, nil
}
