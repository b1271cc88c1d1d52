// file: internals/features/users/cashiers/model/cashier_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CashierModel is the counter-staff profile tied to one auth user. Its
// permission flags decide whether the concession editor and expense entry
// are reachable for that cashier.
type CashierModel struct {
	CashierID uuid.UUID `gorm:"column:cashier_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"cashier_id"`

	// FK → users
	CashierUserID uuid.UUID `gorm:"column:cashier_user_id;type:uuid;not null;uniqueIndex" json:"cashier_user_id"`

	CashierName string `gorm:"column:cashier_name;type:varchar(80);not null" json:"cashier_name"`

	CashierHasDiscountPermission  bool `gorm:"column:cashier_has_discount_permission;not null;default:false" json:"cashier_has_discount_permission"`
	CashierHasExpensesPermission  bool `gorm:"column:cashier_has_expenses_permission;not null;default:false" json:"cashier_has_expenses_permission"`
	CashierPasswordChangeRequired bool `gorm:"column:cashier_password_change_required;not null;default:true" json:"cashier_password_change_required"`

	CashierCreatedAt time.Time      `gorm:"column:cashier_created_at;not null;default:now();autoCreateTime" json:"cashier_created_at"`
	CashierUpdatedAt time.Time      `gorm:"column:cashier_updated_at;not null;default:now();autoUpdateTime" json:"cashier_updated_at"`
	CashierDeletedAt gorm.DeletedAt `gorm:"column:cashier_deleted_at;index" json:"-"`
}

func (CashierModel) TableName() string { return "cashiers" }
