// file: internals/features/finance/ledger/controller/ledger_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	invoiceModel "feeportal_backend/internals/features/finance/invoices/model"
	ledger "feeportal_backend/internals/features/finance/ledger/service"
	paymentModel "feeportal_backend/internals/features/finance/payments/model"
	studentModel "feeportal_backend/internals/features/students/model"
	helper "feeportal_backend/internals/helpers"
)

type LedgerHandler struct {
	DB *gorm.DB
}

func NewLedgerHandler(db *gorm.DB) *LedgerHandler {
	return &LedgerHandler{DB: db}
}

// GET /ledger/students/:roll_number?academic_year_id=
//
// Fetches every enrollment row for the roll number (ascending by creation
// time), the full payment ledger for those rows and their unpaid invoices,
// then folds them through the pure aggregator.
func (h *LedgerHandler) SearchStudent(c *fiber.Ctx) error {
	rollNumber := strings.TrimSpace(c.Params("roll_number"))
	if rollNumber == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "roll_number is required")
	}

	q := h.DB.Where("student_roll_number = ? AND student_deleted_at IS NULL", rollNumber)
	if v := strings.TrimSpace(c.Query("academic_year_id")); v != "" {
		yearID, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid academic_year_id")
		}
		q = q.Where("student_academic_year_id = ?", yearID)
	}

	var records []studentModel.StudentModel
	if err := q.Order("student_created_at ASC").Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if len(records) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "student not found")
	}

	ids := make([]uuid.UUID, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.StudentID)
	}

	var payments []paymentModel.PaymentModel
	if err := h.DB.
		Where("payment_student_id IN ?", ids).
		Order("payment_created_at ASC").
		Find(&payments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var invoices []invoiceModel.InvoiceModel
	if err := h.DB.
		Where("invoice_student_id IN ? AND invoice_status = ? AND invoice_deleted_at IS NULL",
			ids, invoiceModel.InvoiceStatusUnpaid).
		Find(&invoices).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	report := ledger.Aggregate(records, payments, invoices)
	return helper.JsonOK(c, "ledger", report)
}
