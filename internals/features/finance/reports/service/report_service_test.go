// file: internals/features/finance/reports/service/report_service_test.go
package service

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	expenseModel "feeportal_backend/internals/features/finance/expenses/model"
	paymentModel "feeportal_backend/internals/features/finance/payments/model"
)

func TestWritePaymentsCSV(t *testing.T) {
	utr := "UTR9988"
	p := paymentModel.PaymentModel{
		PaymentFeeType:   "2024-2025 - Tuition Fee",
		PaymentAmount:    1500,
		PaymentMethod:    paymentModel.PaymentMethodUPI,
		PaymentUTRNumber: &utr,
		PaymentCreatedAt: time.Date(2025, 4, 10, 11, 0, 0, 0, time.UTC),
	}
	rows := []PaymentReportRow{FlattenPayment(p, "R-001", "Asha", "Nidhi")}

	var buf bytes.Buffer
	require.NoError(t, WritePaymentsCSV(&buf, rows))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "roll_number", records[0][1])
	assert.Equal(t, "R-001", records[1][1])
	assert.Equal(t, "1500.00", records[1][4])
	assert.Equal(t, "upi", records[1][5])
	assert.Equal(t, "UTR9988", records[1][6])
	assert.Equal(t, "Nidhi", records[1][7])
	assert.Equal(t, "2025-04-10", records[1][8])
}

func TestWriteExpensesCSV(t *testing.T) {
	rows := []expenseModel.ExpenseModel{
		{
			ExpenseTitle:    "Chalk boxes",
			ExpenseCategory: "Stationery",
			ExpenseAmount:   320.5,
			ExpenseSpentAt:  time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteExpensesCSV(&buf, rows))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Chalk boxes", records[1][1])
	assert.Equal(t, "320.50", records[1][3])
	assert.Equal(t, "2025-03-02", records[1][4])
}

func TestWritePaymentsPDFProducesDocument(t *testing.T) {
	from := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	err := WritePaymentsPDF(&buf, "Fee Collection Report", from, to, nil)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestWriteExpensesPDFProducesDocument(t *testing.T) {
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	err := WriteExpensesPDF(&buf, "Expense Report", from, to, []expenseModel.ExpenseModel{
		{ExpenseTitle: "Diesel", ExpenseCategory: "Transport", ExpenseAmount: 900, ExpenseSpentAt: from},
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}
