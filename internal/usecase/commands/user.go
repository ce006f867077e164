package commands

import (
	"context"
	"log/slog"

	"gaming-zone-booking/internal/domain/user"
	"gaming-zone-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserCommands interface {
	ChangeRole(ctx context.Context, actor user.Actor, userID uuid.UUID, role string) (*user.User, error)
	UpdateProfile(ctx context.Context, actor user.Actor, p ProfilePatch) (*user.User, error)
}

// ProfilePatch leaves a field unchanged when it is nil.
type ProfilePatch struct {
	Name  *string
	Phone *string
}

type userUseCaseImpl struct {
	uow    shared.UnitOfWork
	logger *slog.Logger
}

func NewUserUseCase(uow shared.UnitOfWork, logger *slog.Logger) UserCommands {
	return &userUseCaseImpl{uow: uow, logger: logger}
}

func (uc *userUseCaseImpl) ChangeRole(ctx context.Context, actor user.Actor, userID uuid.UUID, role string) (*user.User, error) {
	if !actor.IsAdmin() {
		return nil, user.ErrForbidden
	}
	r, err := user.NewRole(role)
	if err != nil {
		return nil, err
	}

	var target *user.User
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Reads().UserByID(ctx, userID)
		if err != nil {
			return notFoundAs(err, user.ErrUserNotFound)
		}
		if err := u.ChangeRole(actor, r); err != nil {
			return err
		}
		target = u
		return notFoundAs(tx.Users().UpdateRole(ctx, tx.DB(), u), user.ErrUserNotFound)
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("user role changed", "user_id", userID, "role", r, "actor_id", actor.UserID)
	return target, nil
}

// UpdateProfile edits the caller's own name and phone. Existing bookings keep
// the name captured when they were made.
func (uc *userUseCaseImpl) UpdateProfile(ctx context.Context, actor user.Actor, p ProfilePatch) (*user.User, error) {
	var updated *user.User
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Reads().UserByID(ctx, actor.UserID)
		if err != nil {
			return notFoundAs(err, user.ErrUserNotFound)
		}
		if err := u.UpdateProfile(coalesce(p.Name, u.Name()), coalesce(p.Phone, u.Phone())); err != nil {
			return err
		}
		updated, err = tx.Users().UpdateProfile(ctx, tx.DB(), u)
		return notFoundAs(err, user.ErrUserNotFound)
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("profile updated", "user_id", actor.UserID)
	return updated, nil
}
