// file: internals/features/finance/payments/dto/payment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "feeportal_backend/internals/features/finance/payments/model"
	service "feeportal_backend/internals/features/finance/payments/service"
)

////////////////////////////////////////////////////////////////////////////////
// PAYMENTS — DTO
////////////////////////////////////////////////////////////////////////////////

type PaymentCreateDTO struct {
	PaymentStudentID uuid.UUID `json:"payment_student_id" validate:"required"`
	PaymentAmount    float64   `json:"payment_amount" validate:"required,gt=0"`
	PaymentFeeType   string    `json:"payment_fee_type" validate:"required"`
	PaymentMethod    string    `json:"payment_method" validate:"required,oneof=cash upi"`
	PaymentNotes     *string   `json:"payment_notes,omitempty"`
	PaymentUTRNumber *string   `json:"payment_utr_number,omitempty"`

	// Explicit fee-item keys (optional; the label stays the display field)
	PaymentYearLabel *string `json:"payment_year_label,omitempty"`
	PaymentFeeItemID *string `json:"payment_fee_item_id,omitempty"`

	// Present on the invoice-settlement path
	PaymentInvoiceID *uuid.UUID `json:"payment_invoice_id,omitempty"`
}

func (d PaymentCreateDTO) ToInput(cashierID *uuid.UUID) service.RecordPaymentInput {
	return service.RecordPaymentInput{
		StudentID: d.PaymentStudentID,
		FeeType:   d.PaymentFeeType,
		Amount:    d.PaymentAmount,
		Method:    d.PaymentMethod,
		Notes:     d.PaymentNotes,
		UTRNumber: d.PaymentUTRNumber,
		YearLabel: d.PaymentYearLabel,
		FeeItemID: d.PaymentFeeItemID,
		InvoiceID: d.PaymentInvoiceID,
		CashierID: cashierID,
	}
}

type PaymentResponse struct {
	PaymentID        uuid.UUID  `json:"payment_id"`
	PaymentStudentID uuid.UUID  `json:"payment_student_id"`
	PaymentAmount    float64    `json:"payment_amount"`
	PaymentFeeType   string     `json:"payment_fee_type"`
	PaymentYearLabel *string    `json:"payment_year_label,omitempty"`
	PaymentFeeItemID *string    `json:"payment_fee_item_id,omitempty"`
	PaymentMethod    string     `json:"payment_method"`
	PaymentNotes     *string    `json:"payment_notes,omitempty"`
	PaymentUTRNumber *string    `json:"payment_utr_number,omitempty"`
	PaymentCashierID *uuid.UUID `json:"payment_cashier_id,omitempty"`
	PaymentCreatedAt time.Time  `json:"payment_created_at"`
}

func ToPaymentResponse(m model.PaymentModel) PaymentResponse {
	return PaymentResponse{
		PaymentID:        m.PaymentID,
		PaymentStudentID: m.PaymentStudentID,
		PaymentAmount:    m.PaymentAmount,
		PaymentFeeType:   m.PaymentFeeType,
		PaymentYearLabel: m.PaymentYearLabel,
		PaymentFeeItemID: m.PaymentFeeItemID,
		PaymentMethod:    string(m.PaymentMethod),
		PaymentNotes:     m.PaymentNotes,
		PaymentUTRNumber: m.PaymentUTRNumber,
		PaymentCashierID: m.PaymentCashierID,
		PaymentCreatedAt: m.PaymentCreatedAt,
	}
}

func ToPaymentResponses(list []model.PaymentModel) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToPaymentResponse(v))
	}
	return out
}
