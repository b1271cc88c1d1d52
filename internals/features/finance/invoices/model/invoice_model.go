// file: internals/features/finance/invoices/model/invoice_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// =========================================================
// ENUM — invoice status
// =========================================================

type InvoiceStatus string

const (
	InvoiceStatusUnpaid InvoiceStatus = "unpaid"
	InvoiceStatusPaid   InvoiceStatus = "paid"
)

// =========================================================
// MODEL
// =========================================================

// InvoiceModel rows are created in bulk by the batch generator; status and
// paid_amount are mutated only by the payment recorder.
type InvoiceModel struct {
	InvoiceID uuid.UUID `gorm:"column:invoice_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"invoice_id"`

	// FK → students (one enrollment row)
	InvoiceStudentID uuid.UUID `gorm:"column:invoice_student_id;type:uuid;not null;index" json:"invoice_student_id"`

	InvoiceDueDate time.Time     `gorm:"column:invoice_due_date;type:date;not null" json:"invoice_due_date"`
	InvoiceStatus  InvoiceStatus `gorm:"column:invoice_status;type:varchar(10);not null;default:'unpaid';index:ix_invoices_status" json:"invoice_status"`

	InvoiceTotalAmount         float64 `gorm:"column:invoice_total_amount;type:numeric(12,2);not null;check:invoice_total_amount>=0" json:"invoice_total_amount"`
	InvoicePaidAmount          float64 `gorm:"column:invoice_paid_amount;type:numeric(12,2);not null;default:0" json:"invoice_paid_amount"`
	InvoicePenaltyAmountPerDay float64 `gorm:"column:invoice_penalty_amount_per_day;type:numeric(12,2);not null;default:0" json:"invoice_penalty_amount_per_day"`

	// All invoices of one generation call share a batch id.
	InvoiceBatchID          uuid.UUID `gorm:"column:invoice_batch_id;type:uuid;not null;index:ix_invoices_batch" json:"invoice_batch_id"`
	InvoiceBatchDescription string    `gorm:"column:invoice_batch_description;type:text;not null" json:"invoice_batch_description"`

	InvoiceCreatedAt time.Time      `gorm:"column:invoice_created_at;not null;default:now()" json:"invoice_created_at"`
	InvoiceUpdatedAt time.Time      `gorm:"column:invoice_updated_at;not null;default:now()" json:"invoice_updated_at"`
	InvoiceDeletedAt gorm.DeletedAt `gorm:"column:invoice_deleted_at;index" json:"-"`
}

func (InvoiceModel) TableName() string { return "invoices" }

func (m *InvoiceModel) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.InvoiceCreatedAt.IsZero() {
		m.InvoiceCreatedAt = now
	}
	m.InvoiceUpdatedAt = now
	return nil
}

func (m *InvoiceModel) BeforeUpdate(tx *gorm.DB) (err error) {
	m.InvoiceUpdatedAt = time.Now()
	return nil
}
