// file: internals/features/finance/payments/service/payment_service.go
package service

import (
	"strings"

	"github.com/google/uuid"

	invoiceModel "feeportal_backend/internals/features/finance/invoices/model"
	model "feeportal_backend/internals/features/finance/payments/model"
	helper "feeportal_backend/internals/helpers"
)

type RecordPaymentInput struct {
	StudentID uuid.UUID
	FeeType   string
	Amount    float64
	Method    string
	Notes     *string
	UTRNumber *string
	YearLabel *string
	FeeItemID *string
	InvoiceID *uuid.UUID
	CashierID *uuid.UUID
}

// ValidateRecordPayment applies every precondition before any write:
// positive amount, known method, UTR required for UPI, non-empty fee type.
func ValidateRecordPayment(in RecordPaymentInput) error {
	if in.StudentID == uuid.Nil {
		return helper.NewValidation("student_id is required")
	}
	if strings.TrimSpace(in.FeeType) == "" {
		return helper.NewValidation("fee_type is required")
	}
	if in.Amount <= 0 {
		return helper.NewValidation("amount must be greater than zero")
	}
	switch model.PaymentMethod(in.Method) {
	case model.PaymentMethodCash:
		// no UTR requirement
	case model.PaymentMethodUPI:
		if in.UTRNumber == nil || strings.TrimSpace(*in.UTRNumber) == "" {
			return helper.NewValidation("utr_number is required for upi payments")
		}
	default:
		return helper.NewValidation(`payment_method must be "cash" or "upi"`)
	}
	return nil
}

// NewPaymentModel builds the immutable payment row from validated input.
func NewPaymentModel(in RecordPaymentInput) model.PaymentModel {
	return model.PaymentModel{
		PaymentStudentID: in.StudentID,
		PaymentAmount:    in.Amount,
		PaymentFeeType:   strings.TrimSpace(in.FeeType),
		PaymentYearLabel: in.YearLabel,
		PaymentFeeItemID: in.FeeItemID,
		PaymentMethod:    model.PaymentMethod(in.Method),
		PaymentNotes:     in.Notes,
		PaymentUTRNumber: in.UTRNumber,
		PaymentCashierID: in.CashierID,
	}
}

// ApplySettlement folds a payment into an invoice: paid_amount grows by the
// payment and the invoice flips to paid once paid_amount covers the total.
func ApplySettlement(inv *invoiceModel.InvoiceModel, amount float64) {
	inv.InvoicePaidAmount += amount
	if inv.InvoicePaidAmount >= inv.InvoiceTotalAmount {
		inv.InvoiceStatus = invoiceModel.InvoiceStatusPaid
	} else {
		inv.InvoiceStatus = invoiceModel.InvoiceStatusUnpaid
	}
}
