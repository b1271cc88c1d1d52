// file: internals/features/finance/payments/service/payment_service_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	invoiceModel "feeportal_backend/internals/features/finance/invoices/model"
	helper "feeportal_backend/internals/helpers"
)

func validInput() RecordPaymentInput {
	return RecordPaymentInput{
		StudentID: uuid.New(),
		FeeType:   "2024-2025 - Tuition Fee",
		Amount:    500,
		Method:    "cash",
	}
}

func TestValidateRecordPayment(t *testing.T) {
	t.Run("accepts minimal cash payment", func(t *testing.T) {
		assert.NoError(t, ValidateRecordPayment(validInput()))
	})

	t.Run("accepts smallest positive amount", func(t *testing.T) {
		in := validInput()
		in.Amount = 0.01
		assert.NoError(t, ValidateRecordPayment(in))
	})

	t.Run("rejects zero amount", func(t *testing.T) {
		in := validInput()
		in.Amount = 0
		err := ValidateRecordPayment(in)
		require.Error(t, err)
		assert.True(t, helper.IsKind(err, helper.ErrKindValidation))
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		in := validInput()
		in.Amount = -5
		assert.Error(t, ValidateRecordPayment(in))
	})

	t.Run("rejects missing student", func(t *testing.T) {
		in := validInput()
		in.StudentID = uuid.Nil
		assert.Error(t, ValidateRecordPayment(in))
	})

	t.Run("rejects blank fee type", func(t *testing.T) {
		in := validInput()
		in.FeeType = "   "
		assert.Error(t, ValidateRecordPayment(in))
	})

	t.Run("rejects unknown method", func(t *testing.T) {
		in := validInput()
		in.Method = "cheque"
		assert.Error(t, ValidateRecordPayment(in))
	})

	t.Run("upi requires utr", func(t *testing.T) {
		in := validInput()
		in.Method = "upi"
		assert.Error(t, ValidateRecordPayment(in))

		blank := "  "
		in.UTRNumber = &blank
		assert.Error(t, ValidateRecordPayment(in))

		utr := "UTR123456"
		in.UTRNumber = &utr
		assert.NoError(t, ValidateRecordPayment(in))
	})
}

func TestNewPaymentModelTrimsFeeType(t *testing.T) {
	in := validInput()
	in.FeeType = "  2024-2025 - Bus Fee  "
	m := NewPaymentModel(in)
	assert.Equal(t, "2024-2025 - Bus Fee", m.PaymentFeeType)
	assert.Equal(t, in.StudentID, m.PaymentStudentID)
}

func TestApplySettlement(t *testing.T) {
	t.Run("partial payment keeps invoice unpaid", func(t *testing.T) {
		inv := invoiceModel.InvoiceModel{InvoiceTotalAmount: 1000, InvoiceStatus: invoiceModel.InvoiceStatusUnpaid}
		ApplySettlement(&inv, 400)
		assert.Equal(t, 400.0, inv.InvoicePaidAmount)
		assert.Equal(t, invoiceModel.InvoiceStatusUnpaid, inv.InvoiceStatus)
	})

	t.Run("exact payment settles", func(t *testing.T) {
		inv := invoiceModel.InvoiceModel{InvoiceTotalAmount: 1000}
		ApplySettlement(&inv, 1000)
		assert.Equal(t, invoiceModel.InvoiceStatusPaid, inv.InvoiceStatus)
	})

	t.Run("two partials accumulate", func(t *testing.T) {
		inv := invoiceModel.InvoiceModel{InvoiceTotalAmount: 1000}
		ApplySettlement(&inv, 600)
		require.Equal(t, invoiceModel.InvoiceStatusUnpaid, inv.InvoiceStatus)
		ApplySettlement(&inv, 400)
		assert.Equal(t, 1000.0, inv.InvoicePaidAmount)
		assert.Equal(t, invoiceModel.InvoiceStatusPaid, inv.InvoiceStatus)
	})
}
