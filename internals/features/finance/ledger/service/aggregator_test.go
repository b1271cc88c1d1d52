// file: internals/features/finance/ledger/service/aggregator_test.go
package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	invoiceModel "feeportal_backend/internals/features/finance/invoices/model"
	paymentModel "feeportal_backend/internals/features/finance/payments/model"
	studentModel "feeportal_backend/internals/features/students/model"
)

func record(roll, name string, createdAt time.Time, fd studentModel.FeeDetails) studentModel.StudentModel {
	return studentModel.StudentModel{
		StudentRollNumber: roll,
		StudentName:       name,
		StudentCreatedAt:  createdAt,
		StudentFeeDetails: datatypes.NewJSONType(fd),
	}
}

func payment(feeType string, amount float64) paymentModel.PaymentModel {
	return paymentModel.PaymentModel{
		PaymentFeeType: feeType,
		PaymentAmount:  amount,
	}
}

func keyedPayment(year, itemID string, amount float64) paymentModel.PaymentModel {
	return paymentModel.PaymentModel{
		PaymentFeeType:   year + " - keyed",
		PaymentYearLabel: &year,
		PaymentFeeItemID: &itemID,
		PaymentAmount:    amount,
	}
}

func TestAggregateEmptyRecords(t *testing.T) {
	got := Aggregate(nil, nil, nil)

	assert.Empty(t, got.RollNumber)
	assert.NotNil(t, got.MergedFeeDetails)
	assert.Empty(t, got.MergedFeeDetails)
	assert.Empty(t, got.Years)
	assert.Zero(t, got.Overall.Balance)
}

func TestAggregateSingleYear(t *testing.T) {
	t0 := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	fd := studentModel.FeeDetails{
		"2024-2025": {
			{ID: "tuition", Name: "Tuition Fee", Amount: 2000, Concession: 300},
		},
	}
	payments := []paymentModel.PaymentModel{
		payment("2024-2025 - Tuition Fee", 500),
	}

	got := Aggregate([]studentModel.StudentModel{record("R-1", "Asha", t0, fd)}, payments, nil)

	require.Len(t, got.Years, 1)
	ys := got.Years[0]
	assert.Equal(t, "2024-2025", ys.Year)
	assert.Equal(t, 2000.0, ys.TotalDue)
	assert.Equal(t, 300.0, ys.TotalConcession)
	assert.Equal(t, 500.0, ys.TotalPaid)
	assert.Equal(t, 1200.0, ys.Balance)

	require.Len(t, ys.Items, 1)
	assert.Equal(t, 500.0, ys.Items[0].Paid)
	assert.Equal(t, 1200.0, ys.Items[0].Pending)
	assert.Equal(t, 1200.0, got.Overall.Balance)
}

func TestAggregateLaterRecordWinsPerYear(t *testing.T) {
	t0 := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	t1 := t0.AddDate(1, 0, 0)

	old := studentModel.FeeDetails{
		"2023-2024": {{ID: "tuition", Name: "Tuition Fee", Amount: 1000}},
		"2024-2025": {{ID: "tuition", Name: "Tuition Fee", Amount: 1500}},
	}
	renewed := studentModel.FeeDetails{
		"2024-2025": {{ID: "tuition", Name: "Tuition Fee", Amount: 1800}},
	}

	// Input order is descending on purpose; the aggregator must re-sort.
	got := Aggregate([]studentModel.StudentModel{
		record("R-1", "Asha", t1, renewed),
		record("R-1", "Asha", t0, old),
	}, nil, nil)

	require.Len(t, got.Years, 2)
	assert.Equal(t, "2023-2024", got.Years[0].Year)
	assert.Equal(t, 1000.0, got.Years[0].TotalDue)
	// the newer snapshot overwrote the 2024-2025 key wholesale
	assert.Equal(t, 1800.0, got.Years[1].TotalDue)
	assert.Equal(t, "R-1", got.RollNumber)
}

func TestAggregateOverpaymentClampsToZero(t *testing.T) {
	t0 := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	fd := studentModel.FeeDetails{
		"2024-2025": {{ID: "bus", Name: "Bus Fee", Amount: 400}},
	}
	payments := []paymentModel.PaymentModel{
		payment("2024-2025 - Bus Fee", 600),
	}

	got := Aggregate([]studentModel.StudentModel{record("R-2", "Ravi", t0, fd)}, payments, nil)

	require.Len(t, got.Years, 1)
	assert.Equal(t, 0.0, got.Years[0].Balance)
	assert.Equal(t, 0.0, got.Years[0].Items[0].Pending)
	// the ledger still shows everything that was collected
	assert.Equal(t, 600.0, got.Overall.TotalPaid)
}

func TestAggregateExplicitKeysBeatLabels(t *testing.T) {
	t0 := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	fd := studentModel.FeeDetails{
		"2024-2025": {
			{ID: "tuition", Name: "Tuition Fee", Amount: 1000},
			{ID: "bus", Name: "Bus Fee", Amount: 500},
		},
	}
	payments := []paymentModel.PaymentModel{
		keyedPayment("2024-2025", "bus", 500),
	}

	got := Aggregate([]studentModel.StudentModel{record("R-3", "Meena", t0, fd)}, payments, nil)

	require.Len(t, got.Years, 1)
	items := got.Years[0].Items
	require.Len(t, items, 2)
	assert.Equal(t, 0.0, items[0].Paid)    // tuition untouched
	assert.Equal(t, 500.0, items[1].Paid)  // bus settled via keys
	assert.Equal(t, 0.0, items[1].Pending) // despite the odd display label
}

func TestAggregatePendingClampsNotNegative(t *testing.T) {
	t0 := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	fd := studentModel.FeeDetails{
		"2024-2025": {{ID: "tuition", Name: "Tuition Fee", Amount: 1000, Concession: 200}},
	}
	payments := []paymentModel.PaymentModel{
		payment("2024-2025 - Tuition Fee", 900),
	}

	got := Aggregate([]studentModel.StudentModel{record("R-6", "Arun", t0, fd)}, payments, nil)

	require.Len(t, got.Years, 1)
	// payable 800, paid 900: pending clamps to 0, never -100
	assert.Equal(t, 0.0, got.Years[0].Items[0].Pending)
	assert.Equal(t, 0.0, got.Years[0].Balance)
}

func TestAggregateBalanceAddsUnpaidInvoices(t *testing.T) {
	t0 := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	fd := studentModel.FeeDetails{
		"2024-2025": {{ID: "tuition", Name: "Tuition Fee", Amount: 1000, Concession: 0}},
	}
	payments := []paymentModel.PaymentModel{
		payment("2024-2025 - Tuition Fee", 300),
	}
	invoices := []invoiceModel.InvoiceModel{{InvoiceTotalAmount: 500}}

	got := Aggregate([]studentModel.StudentModel{record("R-7", "Sana", t0, fd)}, payments, invoices)

	// 1000 due - 300 paid = 700, plus the 500 unpaid invoice
	assert.Equal(t, 1200.0, got.Overall.Balance)
}

func TestAggregateUnpaidInvoicesAddToBalance(t *testing.T) {
	t0 := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	fd := studentModel.FeeDetails{
		"2024-2025": {{ID: "tuition", Name: "Tuition Fee", Amount: 1000}},
	}
	invoices := []invoiceModel.InvoiceModel{
		{InvoiceTotalAmount: 250},
		{InvoiceTotalAmount: 150},
	}

	got := Aggregate([]studentModel.StudentModel{record("R-4", "Kiran", t0, fd)}, nil, invoices)

	assert.Equal(t, 400.0, got.Overall.OutstandingInvoiceTotal)
	assert.Equal(t, 1400.0, got.Overall.Balance)
}

func TestAggregateIsPureAndRepeatable(t *testing.T) {
	t0 := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	fd := studentModel.FeeDetails{
		"2024-2025": {{ID: "tuition", Name: "Tuition Fee", Amount: 1000, Concession: 100}},
	}
	records := []studentModel.StudentModel{record("R-5", "Divya", t0, fd)}
	payments := []paymentModel.PaymentModel{payment("2024-2025 - Tuition Fee", 200)}

	first := Aggregate(records, payments, nil)
	second := Aggregate(records, payments, nil)

	assert.Equal(t, first, second)
	// input slice order must be preserved
	assert.Equal(t, "R-5", records[0].StudentRollNumber)
}
