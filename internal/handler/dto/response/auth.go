package response

import (
	"time"

	"gaming-zone-booking/internal/domain/user"
	"gaming-zone-booking/internal/usecase/commands"
	"gaming-zone-booking/internal/usecase/queries"
)

func FromUser(u *user.User) *queries.UserView {
	return &queries.UserView{
		ID:        u.ID(),
		Email:     u.Email().Value(),
		Name:      u.Name(),
		Phone:     u.Phone(),
		Role:      u.Role().String(),
		CreatedAt: u.CreatedAt(),
	}
}

type LoginResponse struct {
	AccessToken string            `json:"accessToken"`
	ExpiresAt   time.Time         `json:"expiresAt"`
	User        *queries.UserView `json:"user"`
}

func FromLoginResult(r *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		AccessToken: r.AccessToken,
		ExpiresAt:   r.ExpiresAt,
		User:        FromUser(r.User),
	}
}
