// file: internals/features/finance/invoices/dto/invoice_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "feeportal_backend/internals/features/finance/invoices/model"
	service "feeportal_backend/internals/features/finance/invoices/service"
)

////////////////////////////////////////////////////////////////////////////////
// GENERATE — DTO
////////////////////////////////////////////////////////////////////////////////

type GenerateInvoicesRequest struct {
	FeeStructureID uuid.UUID  `json:"fee_structure_id" validate:"required"`
	DueDate        string     `json:"due_date" validate:"required"` // YYYY-MM-DD
	Class          string     `json:"class" validate:"required"`
	Section        string     `json:"section" validate:"required"`
	StudentTypeID  *uuid.UUID `json:"student_type_id,omitempty"`
	AcademicYearID *uuid.UUID `json:"academic_year_id,omitempty"`
	PenaltyPerDay  float64    `json:"penalty_per_day" validate:"gte=0"`
}

type GenerateInvoicesResponse struct {
	BatchID uuid.UUID `json:"batch_id"`
	Count   int       `json:"count"`
}

type GenerateCSVResponse struct {
	Created int                `json:"created"`
	Skipped int                `json:"skipped"`
	Reasons []service.RowIssue `json:"reasons"`
}

////////////////////////////////////////////////////////////////////////////////
// INVOICE — DTO
////////////////////////////////////////////////////////////////////////////////

type InvoiceItemResponse struct {
	InvoiceItemID          uuid.UUID `json:"invoice_item_id"`
	InvoiceItemInvoiceID   uuid.UUID `json:"invoice_item_invoice_id"`
	InvoiceItemDescription string    `json:"invoice_item_description"`
	InvoiceItemAmount      float64   `json:"invoice_item_amount"`
}

type InvoiceResponse struct {
	InvoiceID                  uuid.UUID             `json:"invoice_id"`
	InvoiceStudentID           uuid.UUID             `json:"invoice_student_id"`
	InvoiceDueDate             time.Time             `json:"invoice_due_date"`
	InvoiceStatus              string                `json:"invoice_status"`
	InvoiceTotalAmount         float64               `json:"invoice_total_amount"`
	InvoicePaidAmount          float64               `json:"invoice_paid_amount"`
	InvoicePenaltyAmountPerDay float64               `json:"invoice_penalty_amount_per_day"`
	InvoiceBatchID             uuid.UUID             `json:"invoice_batch_id"`
	InvoiceBatchDescription    string                `json:"invoice_batch_description"`
	InvoiceCreatedAt           time.Time             `json:"invoice_created_at"`
	InvoiceItems               []InvoiceItemResponse `json:"invoice_items,omitempty"`
}

type BatchSummaryResponse struct {
	BatchID          uuid.UUID `json:"batch_id"`
	BatchDescription string    `json:"batch_description"`
	InvoiceCount     int64     `json:"invoice_count"`
	TotalAmount      float64   `json:"total_amount"`
	PaidAmount       float64   `json:"paid_amount"`
	CreatedAt        time.Time `json:"created_at"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS
////////////////////////////////////////////////////////////////////////////////

func ToInvoiceItemResponse(m model.InvoiceItemModel) InvoiceItemResponse {
	return InvoiceItemResponse{
		InvoiceItemID:          m.InvoiceItemID,
		InvoiceItemInvoiceID:   m.InvoiceItemInvoiceID,
		InvoiceItemDescription: m.InvoiceItemDescription,
		InvoiceItemAmount:      m.InvoiceItemAmount,
	}
}

func ToInvoiceResponse(m model.InvoiceModel, items []model.InvoiceItemModel) InvoiceResponse {
	resp := InvoiceResponse{
		InvoiceID:                  m.InvoiceID,
		InvoiceStudentID:           m.InvoiceStudentID,
		InvoiceDueDate:             m.InvoiceDueDate,
		InvoiceStatus:              string(m.InvoiceStatus),
		InvoiceTotalAmount:         m.InvoiceTotalAmount,
		InvoicePaidAmount:          m.InvoicePaidAmount,
		InvoicePenaltyAmountPerDay: m.InvoicePenaltyAmountPerDay,
		InvoiceBatchID:             m.InvoiceBatchID,
		InvoiceBatchDescription:    m.InvoiceBatchDescription,
		InvoiceCreatedAt:           m.InvoiceCreatedAt,
	}
	for _, it := range items {
		resp.InvoiceItems = append(resp.InvoiceItems, ToInvoiceItemResponse(it))
	}
	return resp
}
