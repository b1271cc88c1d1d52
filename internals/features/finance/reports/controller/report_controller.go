// file: internals/features/finance/reports/controller/report_controller.go
package controller

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	expenseModel "feeportal_backend/internals/features/finance/expenses/model"
	paymentModel "feeportal_backend/internals/features/finance/payments/model"
	service "feeportal_backend/internals/features/finance/reports/service"
	studentModel "feeportal_backend/internals/features/students/model"
	cashierModel "feeportal_backend/internals/features/users/cashiers/model"
	helper "feeportal_backend/internals/helpers"
)

type ReportHandler struct {
	DB *gorm.DB
}

func NewReportHandler(db *gorm.DB) *ReportHandler {
	return &ReportHandler{DB: db}
}

// parseRange reads ?from=&to= (YYYY-MM-DD). Defaults to the current
// month when both are absent. The `to` bound is inclusive.
func parseRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := now

	if s := c.Query("from"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return from, to, fmt.Errorf("from must be YYYY-MM-DD")
		}
		from = t
	}
	if s := c.Query("to"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return from, to, fmt.Errorf("to must be YYYY-MM-DD")
		}
		to = t
	}
	if to.Before(from) {
		return from, to, fmt.Errorf("to must not precede from")
	}
	return from, to, nil
}

func (h *ReportHandler) paymentRows(from, to time.Time) ([]service.PaymentReportRow, error) {
	var payments []paymentModel.PaymentModel
	endExclusive := to.AddDate(0, 0, 1)
	if err := h.DB.
		Where("payment_created_at >= ? AND payment_created_at < ?", from, endExclusive).
		Order("payment_created_at ASC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	if len(payments) == 0 {
		return []service.PaymentReportRow{}, nil
	}

	studentIDs := make([]uuid.UUID, 0, len(payments))
	cashierIDs := make([]uuid.UUID, 0)
	for _, p := range payments {
		studentIDs = append(studentIDs, p.PaymentStudentID)
		if p.PaymentCashierID != nil {
			cashierIDs = append(cashierIDs, *p.PaymentCashierID)
		}
	}

	var students []studentModel.StudentModel
	if err := h.DB.Unscoped().Where("student_id IN ?", studentIDs).Find(&students).Error; err != nil {
		return nil, err
	}
	studentByID := make(map[uuid.UUID]studentModel.StudentModel, len(students))
	for _, s := range students {
		studentByID[s.StudentID] = s
	}

	cashierByID := make(map[uuid.UUID]cashierModel.CashierModel)
	if len(cashierIDs) > 0 {
		var cashiers []cashierModel.CashierModel
		if err := h.DB.Unscoped().Where("cashier_id IN ?", cashierIDs).Find(&cashiers).Error; err != nil {
			return nil, err
		}
		for _, cs := range cashiers {
			cashierByID[cs.CashierID] = cs
		}
	}

	rows := make([]service.PaymentReportRow, 0, len(payments))
	for _, p := range payments {
		roll, name := "", ""
		if s, ok := studentByID[p.PaymentStudentID]; ok {
			roll, name = s.StudentRollNumber, s.StudentName
		}
		cashierName := "admin"
		if p.PaymentCashierID != nil {
			if cs, ok := cashierByID[*p.PaymentCashierID]; ok {
				cashierName = cs.CashierName
			} else {
				cashierName = ""
			}
		}
		rows = append(rows, service.FlattenPayment(p, roll, name, cashierName))
	}
	return rows, nil
}

func (h *ReportHandler) expenseRows(from, to time.Time) ([]expenseModel.ExpenseModel, error) {
	var rows []expenseModel.ExpenseModel
	err := h.DB.
		Where("expense_deleted_at IS NULL AND expense_spent_at >= ? AND expense_spent_at <= ?", from, to).
		Order("expense_spent_at ASC").
		Find(&rows).Error
	return rows, err
}

/* =======================================================
   PAYMENT EXPORTS
======================================================= */

// GET /api/a/reports/payments.csv
func (h *ReportHandler) PaymentsCSV(c *fiber.Ctx) error {
	from, to, err := parseRange(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	rows, err := h.paymentRows(from, to)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var buf bytes.Buffer
	if err := service.WritePaymentsCSV(&buf, rows); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="payments.csv"`)
	return c.Send(buf.Bytes())
}

// GET /api/a/reports/payments.pdf
func (h *ReportHandler) PaymentsPDF(c *fiber.Ctx) error {
	from, to, err := parseRange(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	rows, err := h.paymentRows(from, to)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var buf bytes.Buffer
	if err := service.WritePaymentsPDF(&buf, "Fee Collection Report", from, to, rows); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="payments.pdf"`)
	return c.Send(buf.Bytes())
}

/* =======================================================
   EXPENSE EXPORTS
======================================================= */

// GET /api/a/reports/expenses.csv
func (h *ReportHandler) ExpensesCSV(c *fiber.Ctx) error {
	from, to, err := parseRange(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	rows, err := h.expenseRows(from, to)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var buf bytes.Buffer
	if err := service.WriteExpensesCSV(&buf, rows); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="expenses.csv"`)
	return c.Send(buf.Bytes())
}

// GET /api/a/reports/expenses.pdf
func (h *ReportHandler) ExpensesPDF(c *fiber.Ctx) error {
	from, to, err := parseRange(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	rows, err := h.expenseRows(from, to)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var buf bytes.Buffer
	if err := service.WriteExpensesPDF(&buf, "Expense Report", from, to, rows); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="expenses.pdf"`)
	return c.Send(buf.Bytes())
}
