package auth

import (
	"errors"

	"gaming-zone-booking/internal/domain/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
)

type Credentials struct {
	email    user.Email
	password user.Password
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}

	password, err := user.NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		email:    email,
		password: password,
	}, nil
}

func (c Credentials) Email() user.Email {
	return c.email
}

func (c Credentials) Password() user.Password {
	return c.password
}

type Registration struct {
	Credentials
	name  string
	phone string
}

func NewRegistration(emailStr, passwordStr, name, phone string) (Registration, error) {
	creds, err := NewCredentials(emailStr, passwordStr)
	if err != nil {
		return Registration{}, err
	}
	n, err := user.NewName(name)
	if err != nil {
		return Registration{}, err
	}
	p, err := user.NewPhone(phone)
	if err != nil {
		return Registration{}, err
	}
	return Registration{Credentials: creds, name: n, phone: p}, nil
}

func (r Registration) Name() string  { return r.name }
func (r Registration) Phone() string { return r.phone }
