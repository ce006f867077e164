//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"gaming-zone-booking/internal/domain/auth"
	"gaming-zone-booking/internal/domain/user"
	"gaming-zone-booking/internal/infra"
	"gaming-zone-booking/internal/pkg/clock"
	"gaming-zone-booking/internal/pkg/errs"
	"gaming-zone-booking/internal/usecase/commands"
	"gaming-zone-booking/internal/usecase/shared"
	"gaming-zone-booking/tests/common/builder"
	commandsmock "gaming-zone-booking/tests/mock/commands"
	sharedmock "gaming-zone-booking/tests/mock/shared"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthCommandsTestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	uow    *sharedmock.MockUnitOfWork
	tx     *sharedmock.MockTx
	reads  *sharedmock.MockCommandReads
	users  *sharedmock.MockUserRepository
	hasher *commandsmock.MockPasswordHasher
	tokens *commandsmock.MockTokenIssuer
	clock  *clock.MockClock
	uc     commands.AuthCommands
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.reads = sharedmock.NewMockCommandReads(s.ctrl)
	s.users = sharedmock.NewMockUserRepository(s.ctrl)
	s.hasher = commandsmock.NewMockPasswordHasher(s.ctrl)
	s.tokens = commandsmock.NewMockTokenIssuer(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC))

	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).AnyTimes()
	s.uow.EXPECT().CommandReads().Return(s.reads).AnyTimes()
	s.tx.EXPECT().Users().Return(s.users).AnyTimes()
	s.tx.EXPECT().DB().Return(nil).AnyTimes()

	s.uc = commands.NewAuthCommands(s.uow, s.hasher, s.tokens, time.Hour, s.clock)
}

func (s *AuthCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) TestRegister() {
	ctx := context.Background()
	in := commands.RegisterInput{Email: "New@Example.com", Password: "password123", Name: "New Player", Phone: ""}

	s.Run("success: stores hashed password and lower-cased email", func() {
		s.hasher.EXPECT().Hash("password123").Return("hashed", nil)
		s.users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, u *user.User) (*user.User, error) {
				return u, nil
			})

		u, err := s.uc.Register(ctx, in)

		s.Require().NoError(err)
		s.Equal("new@example.com", u.Email().Value())
		s.Equal("hashed", u.PasswordHash())
		s.Equal(user.RoleUser, u.Role())
	})

	s.Run("error: email already registered", func() {
		s.hasher.EXPECT().Hash("password123").Return("hashed", nil)
		s.users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("dup", nil, infra.KindDuplicateKey))

		_, err := s.uc.Register(ctx, in)

		s.ErrorIs(err, auth.ErrEmailTaken)
	})

	s.Run("error: short password never reaches the hasher", func() {
		weak := in
		weak.Password = "short"

		_, err := s.uc.Register(ctx, weak)

		s.ErrorIs(err, user.ErrPasswordTooWeak)
	})
}

func (s *AuthCommandsTestSuite) TestLogin() {
	ctx := context.Background()
	stored := builder.NewUserBuilder().WithEmail("player@example.com").BuildStored()

	s.Run("success: issues token with expiry", func() {
		s.reads.EXPECT().UserByEmail(gomock.Any(), "player@example.com").Return(stored, nil)
		s.hasher.EXPECT().Compare("hashed_password", "password123").Return(nil)
		s.tokens.EXPECT().GenerateToken(stored.Actor()).Return("signed-token", nil)

		res, err := s.uc.Login(ctx, commands.LoginInput{Email: "Player@Example.com", Password: "password123"})

		s.Require().NoError(err)
		s.Equal("signed-token", res.AccessToken)
		s.Equal(s.clock.Now().Add(time.Hour), res.ExpiresAt)
		s.Equal(stored.ID(), res.User.ID())
	})

	s.Run("error: unknown email looks like a wrong password", func() {
		s.reads.EXPECT().UserByEmail(gomock.Any(), "ghost@example.com").
			Return(nil, infra.WrapRepoErr("missing", nil, infra.KindNotFound))

		_, err := s.uc.Login(ctx, commands.LoginInput{Email: "ghost@example.com", Password: "password123"})

		s.ErrorIs(err, auth.ErrInvalidCredentials)
	})

	s.Run("error: wrong password", func() {
		s.reads.EXPECT().UserByEmail(gomock.Any(), "player@example.com").Return(stored, nil)
		s.hasher.EXPECT().Compare("hashed_password", "wrong-password").Return(assertErr)

		_, err := s.uc.Login(ctx, commands.LoginInput{Email: "player@example.com", Password: "wrong-password"})

		s.ErrorIs(err, auth.ErrInvalidCredentials)
	})

	s.Run("error: malformed email", func() {
		_, err := s.uc.Login(ctx, commands.LoginInput{Email: "not-an-email", Password: "password123"})

		s.ErrorIs(err, auth.ErrInvalidCredentials)
	})

	s.Run("error: token signing fails", func() {
		s.reads.EXPECT().UserByEmail(gomock.Any(), "player@example.com").Return(stored, nil)
		s.hasher.EXPECT().Compare(gomock.Any(), gomock.Any()).Return(nil)
		s.tokens.EXPECT().GenerateToken(gomock.Any()).Return("", assertErr)

		_, err := s.uc.Login(ctx, commands.LoginInput{Email: "player@example.com", Password: "password123"})

		s.Require().Error(err)
		s.True(errs.Is(err, commands.ErrTokenGeneration))
	})

	s.Run("error: user lookup fails", func() {
		s.reads.EXPECT().UserByEmail(gomock.Any(), "player@example.com").
			Return(nil, infra.WrapRepoErr("lookup", errs.New("conn reset")))

		_, err := s.uc.Login(ctx, commands.LoginInput{Email: "player@example.com", Password: "password123"})

		s.Require().Error(err)
		s.True(errs.Is(err, commands.ErrAuthenticationFailed))
		s.False(errs.Is(err, auth.ErrInvalidCredentials))
	})
}
