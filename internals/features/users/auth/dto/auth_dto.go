// file: internals/features/users/auth/dto/auth_dto.go
package dto

import (
	"github.com/google/uuid"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginResponse struct {
	Token                  string     `json:"token"`
	UserID                 uuid.UUID  `json:"user_id"`
	Name                   string     `json:"name"`
	Role                   string     `json:"role"`
	CashierID              *uuid.UUID `json:"cashier_id,omitempty"`
	PasswordChangeRequired bool       `json:"password_change_required"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}
