// file: internals/features/finance/invoices/service/generate_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	feeModel "feeportal_backend/internals/features/finance/feestructures/model"
	model "feeportal_backend/internals/features/finance/invoices/model"
	studentModel "feeportal_backend/internals/features/students/model"
	helper "feeportal_backend/internals/helpers"
)

func TestBuildBatchDescription(t *testing.T) {
	assert.Equal(t,
		"Tuition Fee for class 10-A (Hosteller)",
		BuildBatchDescription("Tuition Fee", "10", "A", "Hosteller"))

	assert.Equal(t,
		"Bus Fee for class 8-B (all student types)",
		BuildBatchDescription("Bus Fee", "8", "B", ""))

	assert.Equal(t,
		"Bus Fee for class 8-B (all student types)",
		BuildBatchDescription("Bus Fee", "8", "B", "   "))
}

func TestBuildBatchEmptyStudentsIsNoMatch(t *testing.T) {
	fee := feeModel.FeeStructureModel{FeeStructureFeeName: "Tuition Fee", FeeStructureAmount: 2000}

	batchID, invoices, items, err := BuildBatch(nil, "d", fee, time.Now(), 0)

	assert.Error(t, err)
	assert.True(t, helper.IsKind(err, helper.ErrKindNoMatch))
	assert.Equal(t, uuid.Nil, batchID)
	assert.Empty(t, invoices)
	assert.Empty(t, items)
}

func TestBuildBatchOneInvoicePerStudentSharedBatchID(t *testing.T) {
	studentIDs := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	due := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	fee := feeModel.FeeStructureModel{FeeStructureFeeName: "Annual Fee", FeeStructureAmount: 5000}

	batchID, invoices, items, err := BuildBatch(studentIDs, "Annual Fee for class 9-C (all student types)", fee, due, 25)

	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, batchID)
	assert.Len(t, invoices, 3)
	assert.Len(t, items, 3)

	for i, inv := range invoices {
		assert.Equal(t, batchID, inv.InvoiceBatchID)
		assert.Equal(t, studentIDs[i], inv.InvoiceStudentID)
		assert.Equal(t, model.InvoiceStatusUnpaid, inv.InvoiceStatus)
		assert.Equal(t, 5000.0, inv.InvoiceTotalAmount)
		assert.Equal(t, 25.0, inv.InvoicePenaltyAmountPerDay)
		assert.Equal(t, due, inv.InvoiceDueDate)
		assert.Equal(t, inv.InvoiceID, items[i].InvoiceItemInvoiceID)
		assert.Equal(t, 5000.0, items[i].InvoiceItemAmount)
	}

	// every invoice id is distinct even though the batch id is shared
	seen := make(map[uuid.UUID]bool, len(invoices))
	for _, inv := range invoices {
		assert.False(t, seen[inv.InvoiceID])
		seen[inv.InvoiceID] = true
	}
}

func TestGenerateForRowSkipsOnMissingLookups(t *testing.T) {
	row := CSVRow{
		Line:       4,
		RollNumber: "R-0042",
		FeeName:    "Library Fee",
		DueDate:    time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC),
	}
	student := studentModel.StudentModel{
		StudentID:      uuid.New(),
		StudentClass:   "7",
		StudentSection: "B",
	}
	fee := feeModel.FeeStructureModel{FeeStructureFeeName: "Library Fee", FeeStructureAmount: 150}

	t.Run("unknown fee name is skipped with a reason", func(t *testing.T) {
		_, _, reason := GenerateForRow(row, &student, nil)
		assert.Equal(t, `fee structure "Library Fee" not found`, reason)
	})

	t.Run("unknown roll number is skipped with a reason", func(t *testing.T) {
		_, _, reason := GenerateForRow(row, nil, &fee)
		assert.Equal(t, `student "R-0042" not found`, reason)
	})

	t.Run("resolved row yields one invoice plus its item", func(t *testing.T) {
		inv, item, reason := GenerateForRow(row, &student, &fee)
		assert.Empty(t, reason)
		assert.Equal(t, student.StudentID, inv.InvoiceStudentID)
		assert.NotEqual(t, uuid.Nil, inv.InvoiceBatchID)
		assert.Equal(t, 150.0, inv.InvoiceTotalAmount)
		assert.Equal(t, row.DueDate, inv.InvoiceDueDate)
		assert.Equal(t, inv.InvoiceID, item.InvoiceItemInvoiceID)
	})
}

func TestNewInvoiceForStudent(t *testing.T) {
	studentID := uuid.New()
	batchID := uuid.New()
	due := time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC)
	fee := feeModel.FeeStructureModel{
		FeeStructureFeeName: "Exam Fee",
		FeeStructureAmount:  750,
	}

	inv, item := NewInvoiceForStudent(studentID, batchID, "Exam Fee for class 10-A (all student types)", fee, due, 12)

	assert.NotEqual(t, uuid.Nil, inv.InvoiceID)
	assert.Equal(t, studentID, inv.InvoiceStudentID)
	assert.Equal(t, batchID, inv.InvoiceBatchID)
	assert.Equal(t, model.InvoiceStatusUnpaid, inv.InvoiceStatus)
	assert.Equal(t, 750.0, inv.InvoiceTotalAmount)
	assert.Equal(t, 0.0, inv.InvoicePaidAmount)
	assert.Equal(t, 12.0, inv.InvoicePenaltyAmountPerDay)
	assert.Equal(t, due, inv.InvoiceDueDate)

	// the line item is pinned to the fresh invoice id
	assert.Equal(t, inv.InvoiceID, item.InvoiceItemInvoiceID)
	assert.Equal(t, "Exam Fee", item.InvoiceItemDescription)
	assert.Equal(t, 750.0, item.InvoiceItemAmount)
}

func TestNewInvoiceForStudentCopiesAmountByValue(t *testing.T) {
	fee := feeModel.FeeStructureModel{FeeStructureFeeName: "Lab Fee", FeeStructureAmount: 300}
	inv, _ := NewInvoiceForStudent(uuid.New(), uuid.New(), "d", fee, time.Now(), 0)

	// re-pricing the template must not touch the issued invoice
	fee.FeeStructureAmount = 999
	assert.Equal(t, 300.0, inv.InvoiceTotalAmount)
}
