package request

import (
	"gaming-zone-booking/internal/usecase/commands"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required,max=100"`
	Phone    string `json:"phone" binding:"required,max=20"`
}

func (r *RegisterRequest) ToInput() commands.RegisterInput {
	return commands.RegisterInput{
		Email:    r.Email,
		Password: r.Password,
		Name:     r.Name,
		Phone:    r.Phone,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r *LoginRequest) ToInput() commands.LoginInput {
	return commands.LoginInput{Email: r.Email, Password: r.Password}
}

// UpdateProfileRequest edits the caller's own account; absent fields keep
// their value and an empty phone clears it.
type UpdateProfileRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=1,max=100"`
	Phone *string `json:"phone" binding:"omitempty,max=20"`
}

func (r *UpdateProfileRequest) ToPatch() commands.ProfilePatch {
	return commands.ProfilePatch{Name: r.Name, Phone: r.Phone}
}

type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=user admin"`
}
