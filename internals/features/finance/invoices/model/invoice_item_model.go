// file: internals/features/finance/invoices/model/invoice_item_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// InvoiceItemModel mirrors the fee name/amount of the structure the invoice
// was generated from.
type InvoiceItemModel struct {
	InvoiceItemID uuid.UUID `gorm:"column:invoice_item_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"invoice_item_id"`

	// FK → invoices
	InvoiceItemInvoiceID uuid.UUID `gorm:"column:invoice_item_invoice_id;type:uuid;not null;index" json:"invoice_item_invoice_id"`

	InvoiceItemDescription string  `gorm:"column:invoice_item_description;type:text;not null" json:"invoice_item_description"`
	InvoiceItemAmount      float64 `gorm:"column:invoice_item_amount;type:numeric(12,2);not null" json:"invoice_item_amount"`

	InvoiceItemCreatedAt time.Time `gorm:"column:invoice_item_created_at;not null;default:now();autoCreateTime" json:"invoice_item_created_at"`
}

func (InvoiceItemModel) TableName() string { return "invoice_items" }
