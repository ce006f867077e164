//go:build unit || e2e

package builder

import (
	"time"

	"gaming-zone-booking/internal/domain/user"
	sqlc "gaming-zone-booking/internal/infra/sqlc/generated"
	"gaming-zone-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	ID           uuid.UUID
	Email        string
	Name         string
	Phone        string
	PasswordHash string
	Role         string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Email:        "test@example.com",
		Name:         "Test Player",
		Phone:        "+91 98765 43210",
		PasswordHash: "hashed_password",
		Role:         "user",
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// BuildDomain goes through the registration path, so the ID is fresh.
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	created, err := user.NewUser(email, u.Name, u.Phone, u.PasswordHash)
	if err != nil {
		return nil, err
	}
	if u.Role == string(user.RoleUser) {
		return created, nil
	}
	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}
	return user.Reconstruct(created.ID(), created.Email(), created.Name(), created.Phone(), u.PasswordHash, role, created.CreatedAt(), created.UpdatedAt()), nil
}

// BuildStored is a persisted user keeping the builder's ID.
func (u *UserBuilder) BuildStored() *user.User {
	email, _ := user.NewEmail(u.Email)
	now := time.Now()
	return user.Reconstruct(u.ID, email, u.Name, u.Phone, u.PasswordHash, user.Role(u.Role), now, now)
}

func (u *UserBuilder) BuildActor() user.Actor {
	return user.Actor{UserID: u.ID, Name: u.Name, Email: u.Email, Role: user.Role(u.Role)}
}

func (u *UserBuilder) BuildInfra() sqlc.Users {
	now := time.Now()
	return sqlc.Users{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		Phone:        u.Phone,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		CreatedAt:    pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:    pgtype.Timestamptz{Time: now, Valid: true},
	}
}

func (u *UserBuilder) BuildView() *queries.UserView {
	return &queries.UserView{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Phone: u.Phone,
		Role:  u.Role,
	}
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}

func (u *UserBuilder) WithPhone(phone string) *UserBuilder {
	u.Phone = phone
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	u.Role = string(user.RoleAdmin)
	return u
}
