// file: internals/features/finance/payments/model/payment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// =========================================================
// ENUM — payment method
// =========================================================

type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "cash"
	PaymentMethodUPI  PaymentMethod = "upi"
)

// =========================================================
// MODEL — immutable once created (no update/delete path)
// =========================================================

type PaymentModel struct {
	PaymentID uuid.UUID `gorm:"column:payment_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"payment_id"`

	// FK → students (one enrollment row)
	PaymentStudentID uuid.UUID `gorm:"column:payment_student_id;type:uuid;not null;index" json:"payment_student_id"`

	PaymentAmount float64 `gorm:"column:payment_amount;type:numeric(12,2);not null;check:payment_amount>0" json:"payment_amount"`

	// Display label "<Year Label> - <Fee Item Name>". Year attribution in
	// the ledger aggregator matches on the "<year> - " prefix.
	PaymentFeeType string `gorm:"column:payment_fee_type;type:text;not null" json:"payment_fee_type"`

	// Explicit linkage to the fee item the label encodes; the label stays
	// the displayed field.
	PaymentYearLabel *string `gorm:"column:payment_year_label;type:varchar(20);index" json:"payment_year_label,omitempty"`
	PaymentFeeItemID *string `gorm:"column:payment_fee_item_id;type:varchar(60);index" json:"payment_fee_item_id,omitempty"`

	PaymentMethod    PaymentMethod `gorm:"column:payment_method;type:varchar(10);not null" json:"payment_method"`
	PaymentNotes     *string       `gorm:"column:payment_notes;type:text" json:"payment_notes,omitempty"`
	PaymentUTRNumber *string       `gorm:"column:payment_utr_number;type:varchar(40)" json:"payment_utr_number,omitempty"`

	// FK → cashiers (nil when an admin records the payment)
	PaymentCashierID *uuid.UUID `gorm:"column:payment_cashier_id;type:uuid;index" json:"payment_cashier_id,omitempty"`

	PaymentCreatedAt time.Time `gorm:"column:payment_created_at;not null;default:now();autoCreateTime;index:ix_payments_created_at" json:"payment_created_at"`
}

func (PaymentModel) TableName() string { return "payments" }
