package user

import (
	"errors"

	"github.com/google/uuid"
)

var ErrForbidden = errors.New("operation not permitted for this role")

// Actor is the authenticated caller passed explicitly into every command.
type Actor struct {
	UserID uuid.UUID
	Name   string
	Email  string
	Role   Role
}

func (a Actor) IsAdmin() bool {
	return a.Role.IsAdmin()
}

func (a Actor) Owns(userID uuid.UUID) bool {
	return a.UserID == userID
}
