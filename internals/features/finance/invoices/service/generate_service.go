// file: internals/features/finance/invoices/service/generate_service.go
package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	feeModel "feeportal_backend/internals/features/finance/feestructures/model"
	model "feeportal_backend/internals/features/finance/invoices/model"
	studentModel "feeportal_backend/internals/features/students/model"
	helper "feeportal_backend/internals/helpers"
)

// BuildBatchDescription builds the human-readable label shared by every
// invoice of one batch.
func BuildBatchDescription(feeName, class, section, studentTypeLabel string) string {
	if strings.TrimSpace(studentTypeLabel) == "" {
		studentTypeLabel = "all student types"
	}
	return fmt.Sprintf("%s for class %s-%s (%s)", feeName, class, section, studentTypeLabel)
}

// BuildBatch fans one fee structure out across the matched students: one
// invoice plus one line item per student, all sharing a fresh batch id.
// An empty student set is a no-match, never an empty batch.
func BuildBatch(
	studentIDs []uuid.UUID,
	batchDescription string,
	fee feeModel.FeeStructureModel,
	dueDate time.Time,
	penaltyPerDay float64,
) (uuid.UUID, []model.InvoiceModel, []model.InvoiceItemModel, error) {
	if len(studentIDs) == 0 {
		return uuid.Nil, nil, nil, helper.NewNoMatch("no students match the given filters")
	}
	batchID := uuid.New()
	invoices := make([]model.InvoiceModel, 0, len(studentIDs))
	items := make([]model.InvoiceItemModel, 0, len(studentIDs))
	for _, sid := range studentIDs {
		inv, item := NewInvoiceForStudent(sid, batchID, batchDescription, fee, dueDate, penaltyPerDay)
		invoices = append(invoices, inv)
		items = append(items, item)
	}
	return batchID, invoices, items, nil
}

// GenerateForRow runs one bulk-upload row once its lookups are resolved.
// A nil student or fee means the lookup found nothing; the row reports a
// skip reason instead of failing the whole upload.
func GenerateForRow(
	row CSVRow,
	student *studentModel.StudentModel,
	fee *feeModel.FeeStructureModel,
) (model.InvoiceModel, model.InvoiceItemModel, string) {
	if student == nil {
		return model.InvoiceModel{}, model.InvoiceItemModel{}, fmt.Sprintf("student %q not found", row.RollNumber)
	}
	if fee == nil {
		return model.InvoiceModel{}, model.InvoiceItemModel{}, fmt.Sprintf("fee structure %q not found", row.FeeName)
	}
	desc := BuildBatchDescription(fee.FeeStructureFeeName, student.StudentClass, student.StudentSection, "")
	inv, item := NewInvoiceForStudent(student.StudentID, uuid.New(), desc, *fee, row.DueDate, row.PenaltyPerDay)
	return inv, item, ""
}

// NewInvoiceForStudent copies the fee structure by value into one invoice
// plus its single line item.
func NewInvoiceForStudent(
	studentID, batchID uuid.UUID,
	batchDescription string,
	fee feeModel.FeeStructureModel,
	dueDate time.Time,
	penaltyPerDay float64,
) (model.InvoiceModel, model.InvoiceItemModel) {
	inv := model.InvoiceModel{
		InvoiceID:                  uuid.New(),
		InvoiceStudentID:           studentID,
		InvoiceDueDate:             dueDate,
		InvoiceStatus:              model.InvoiceStatusUnpaid,
		InvoiceTotalAmount:         fee.FeeStructureAmount,
		InvoicePaidAmount:          0,
		InvoicePenaltyAmountPerDay: penaltyPerDay,
		InvoiceBatchID:             batchID,
		InvoiceBatchDescription:    batchDescription,
	}
	item := model.InvoiceItemModel{
		InvoiceItemInvoiceID:   inv.InvoiceID,
		InvoiceItemDescription: fee.FeeStructureFeeName,
		InvoiceItemAmount:      fee.FeeStructureAmount,
	}
	return inv, item
}
