// file: internals/features/finance/expenses/dto/expense_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "feeportal_backend/internals/features/finance/expenses/model"
)

type ExpenseCreateDTO struct {
	Title    string  `json:"title" validate:"required,min=1,max=120"`
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Category string  `json:"category" validate:"required,min=1,max=60"`
	SpentAt  string  `json:"spent_at" validate:"required"` // YYYY-MM-DD
	Notes    *string `json:"notes"`
}

type ExpenseResponse struct {
	ExpenseID uuid.UUID  `json:"expense_id"`
	Title     string     `json:"title"`
	Amount    float64    `json:"amount"`
	Category  string     `json:"category"`
	SpentAt   time.Time  `json:"spent_at"`
	Notes     *string    `json:"notes,omitempty"`
	CashierID *uuid.UUID `json:"cashier_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// MonthlySummaryRow is one category bucket inside a calendar month.
type MonthlySummaryRow struct {
	Month    string  `json:"month"` // YYYY-MM
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

func (in ExpenseCreateDTO) ToModel(spentAt time.Time, cashierID *uuid.UUID) model.ExpenseModel {
	return model.ExpenseModel{
		ExpenseTitle:     in.Title,
		ExpenseAmount:    in.Amount,
		ExpenseCategory:  in.Category,
		ExpenseSpentAt:   spentAt,
		ExpenseNotes:     in.Notes,
		ExpenseCashierID: cashierID,
	}
}

func ToExpenseResponse(m model.ExpenseModel) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID: m.ExpenseID,
		Title:     m.ExpenseTitle,
		Amount:    m.ExpenseAmount,
		Category:  m.ExpenseCategory,
		SpentAt:   m.ExpenseSpentAt,
		Notes:     m.ExpenseNotes,
		CashierID: m.ExpenseCashierID,
		CreatedAt: m.ExpenseCreatedAt,
	}
}

func ToExpenseResponses(ms []model.ExpenseModel) []ExpenseResponse {
	out := make([]ExpenseResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToExpenseResponse(m))
	}
	return out
}
