// file: internals/features/finance/payments/controller/payment_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	invoiceModel "feeportal_backend/internals/features/finance/invoices/model"
	dto "feeportal_backend/internals/features/finance/payments/dto"
	model "feeportal_backend/internals/features/finance/payments/model"
	service "feeportal_backend/internals/features/finance/payments/service"
	studentModel "feeportal_backend/internals/features/students/model"
	helper "feeportal_backend/internals/helpers"
)

/* =======================================================
   BOOTSTRAP
======================================================= */

type PaymentHandler struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewPaymentHandler(db *gorm.DB) *PaymentHandler {
	return &PaymentHandler{DB: db, Validator: validator.New()}
}

/* =======================================================
   RECORD PAYMENT (optionally settling an invoice)
   POST /api/u/payments
======================================================= */

func (h *PaymentHandler) RecordPayment(c *fiber.Ctx) error {
	var in dto.PaymentCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}

	cashierID := helper.GetCashierIDFromContext(c)
	input := in.ToInput(cashierID)
	if err := service.ValidateRecordPayment(input); err != nil {
		return helper.JsonAppError(c, err)
	}

	// Reject before any write when the student is gone.
	var student studentModel.StudentModel
	if err := h.DB.First(&student, "student_id = ? AND student_deleted_at IS NULL", input.StudentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	m := service.NewPaymentModel(input)

	// Payment insert and invoice update share one transaction so a failure
	// between the two steps can no longer leave the invoice stale.
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		if input.InvoiceID == nil {
			return nil
		}

		var inv invoiceModel.InvoiceModel
		if err := tx.First(&inv,
			"invoice_id = ? AND invoice_deleted_at IS NULL", *input.InvoiceID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.NewNotFound("invoice not found")
			}
			return err
		}
		if inv.InvoiceStudentID != input.StudentID {
			return helper.NewValidation("invoice does not belong to this student")
		}

		service.ApplySettlement(&inv, input.Amount)
		return tx.Save(&inv).Error
	})
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	// Best-effort audit append; a failed log never surfaces to the caller.
	logRow := model.ActivityLogModel{
		ActivityLogCashierID: cashierID,
		ActivityLogStudentID: &input.StudentID,
		ActivityLogAction:    "record_payment",
		ActivityLogDetails:   fmt.Sprintf("%s %.2f for %q", m.PaymentMethod, m.PaymentAmount, m.PaymentFeeType),
	}
	if err := h.DB.Create(&logRow).Error; err != nil {
		log.Printf("[WARN] activity log append failed: %v", err)
	}

	return helper.JsonCreated(c, "payment recorded", dto.ToPaymentResponse(m))
}

/* =======================================================
   LIST (filters: student_id, method, from/to)
   GET /api/u/payments
======================================================= */

func (h *PaymentHandler) ListPayments(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&model.PaymentModel{})
	if v := strings.TrimSpace(c.Query("student_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid student_id")
		}
		q = q.Where("payment_student_id = ?", id)
	}
	if v := strings.TrimSpace(c.Query("method")); v != "" {
		q = q.Where("payment_method = ?", v)
	}
	if v := strings.TrimSpace(c.Query("from")); v != "" {
		q = q.Where("payment_created_at >= ?", v)
	}
	if v := strings.TrimSpace(c.Query("to")); v != "" {
		q = q.Where("payment_created_at < ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.PaymentModel
	if err := q.Order("payment_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "payments", dto.ToPaymentResponses(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* =======================================================
   DETAIL
   GET /api/u/payments/:id
======================================================= */

func (h *PaymentHandler) GetPayment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m model.PaymentModel
	if err := h.DB.First(&m, "payment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "payment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "payment", dto.ToPaymentResponse(m))
}
