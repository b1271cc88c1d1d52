// file: internals/features/finance/expenses/model/expense_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExpenseModel struct {
	ExpenseID uuid.UUID `gorm:"column:expense_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"expense_id"`

	ExpenseTitle    string  `gorm:"column:expense_title;type:varchar(120);not null" json:"expense_title"`
	ExpenseAmount   float64 `gorm:"column:expense_amount;type:numeric(12,2);not null;check:expense_amount>0" json:"expense_amount"`
	ExpenseCategory string  `gorm:"column:expense_category;type:varchar(60);not null;index" json:"expense_category"`

	ExpenseSpentAt time.Time `gorm:"column:expense_spent_at;type:date;not null;index" json:"expense_spent_at"`
	ExpenseNotes   *string   `gorm:"column:expense_notes;type:text" json:"expense_notes,omitempty"`

	// FK → cashiers (nil when an admin enters the expense)
	ExpenseCashierID *uuid.UUID `gorm:"column:expense_cashier_id;type:uuid;index" json:"expense_cashier_id,omitempty"`

	ExpenseCreatedAt time.Time      `gorm:"column:expense_created_at;not null;default:now();autoCreateTime" json:"expense_created_at"`
	ExpenseUpdatedAt time.Time      `gorm:"column:expense_updated_at;not null;default:now();autoUpdateTime" json:"expense_updated_at"`
	ExpenseDeletedAt gorm.DeletedAt `gorm:"column:expense_deleted_at;index" json:"-"`
}

func (ExpenseModel) TableName() string { return "expenses" }
