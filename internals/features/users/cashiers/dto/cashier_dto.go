// file: internals/features/users/cashiers/dto/cashier_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "feeportal_backend/internals/features/users/cashiers/model"
)

type CashierCreateDTO struct {
	Name                  string  `json:"name" validate:"required,min=1,max=80"`
	Email                 string  `json:"email" validate:"required,email"`
	Phone                 *string `json:"phone" validate:"omitempty,max=20"`
	Password              string  `json:"password" validate:"required,min=8"`
	HasDiscountPermission bool    `json:"has_discount_permission"`
	HasExpensesPermission bool    `json:"has_expenses_permission"`
}

type CashierPermissionsUpdateDTO struct {
	HasDiscountPermission *bool `json:"has_discount_permission"`
	HasExpensesPermission *bool `json:"has_expenses_permission"`
}

type CashierResponse struct {
	CashierID              uuid.UUID `json:"cashier_id"`
	UserID                 uuid.UUID `json:"user_id"`
	Name                   string    `json:"name"`
	Email                  string    `json:"email"`
	HasDiscountPermission  bool      `json:"has_discount_permission"`
	HasExpensesPermission  bool      `json:"has_expenses_permission"`
	PasswordChangeRequired bool      `json:"password_change_required"`
	CreatedAt              time.Time `json:"created_at"`
}

func ToCashierResponse(m model.CashierModel, email string) CashierResponse {
	return CashierResponse{
		CashierID:              m.CashierID,
		UserID:                 m.CashierUserID,
		Name:                   m.CashierName,
		Email:                  email,
		HasDiscountPermission:  m.CashierHasDiscountPermission,
		HasExpensesPermission:  m.CashierHasExpensesPermission,
		PasswordChangeRequired: m.CashierPasswordChangeRequired,
		CreatedAt:              m.CashierCreatedAt,
	}
}
