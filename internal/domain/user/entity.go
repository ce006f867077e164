package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrSelfRoleChange = errors.New("admins cannot change their own role")
)

type User struct {
	id           uuid.UUID
	email        Email
	name         string
	phone        string
	passwordHash string
	role         Role
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser registers a regular account; admins are promoted afterwards.
func NewUser(email Email, name, phone, passwordHash string) (*User, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	p, err := NewPhone(phone)
	if err != nil {
		return nil, err
	}
	return &User{
		id:           uuid.New(),
		email:        email,
		name:         n,
		phone:        p,
		passwordHash: passwordHash,
		role:         RoleUser,
	}, nil
}

func Reconstruct(id uuid.UUID, email Email, name, phone, passwordHash string, role Role, createdAt, updatedAt time.Time) *User {
	return &User{
		id:           id,
		email:        email,
		name:         name,
		phone:        phone,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// ChangeRole applies an admin's role decision to this account.
func (u *User) ChangeRole(actor Actor, role Role) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	if actor.UserID == u.id {
		return ErrSelfRoleChange
	}
	if !role.IsValid() {
		return ErrInvalidRole
	}
	u.role = role
	return nil
}

// UpdateProfile replaces the editable contact details. Email and role are not
// changed here.
func (u *User) UpdateProfile(name, phone string) error {
	n, err := NewName(name)
	if err != nil {
		return err
	}
	p, err := NewPhone(phone)
	if err != nil {
		return err
	}
	u.name = n
	u.phone = p
	return nil
}

func (u *User) Actor() Actor {
	return Actor{UserID: u.id, Name: u.name, Email: u.email.Value(), Role: u.role}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Email() Email         { return u.email }
func (u *User) Name() string         { return u.name }
func (u *User) Phone() string        { return u.phone }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
