package converter

import (
	"gaming-zone-booking/internal/domain/user"
	sqlc "gaming-zone-booking/internal/infra/sqlc/generated"
	"gaming-zone-booking/internal/pkg/pgconv"
)

func UserToCreateParams(u *user.User) sqlc.CreateUserParams {
	return sqlc.CreateUserParams{
		Email:        u.Email().Value(),
		Name:         u.Name(),
		Phone:        u.Phone(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
	}
}

func UserFromRow(row sqlc.Users) (*user.User, error) {
	email, err := user.NewEmail(row.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(row.Role)
	if err != nil {
		return nil, err
	}
	return user.Reconstruct(
		row.ID,
		email,
		row.Name,
		row.Phone,
		row.PasswordHash,
		role,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
