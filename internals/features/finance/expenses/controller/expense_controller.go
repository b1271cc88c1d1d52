// file: internals/features/finance/expenses/controller/expense_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "feeportal_backend/internals/features/finance/expenses/dto"
	model "feeportal_backend/internals/features/finance/expenses/model"
	helper "feeportal_backend/internals/helpers"
)

type ExpenseHandler struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewExpenseHandler(db *gorm.DB) *ExpenseHandler {
	return &ExpenseHandler{DB: db, Validator: validator.New()}
}

// POST /api/u/expenses
//
// Attribution: cashier-entered expenses carry the cashier id from the
// token; admin-entered ones carry nil.
func (h *ExpenseHandler) CreateExpense(c *fiber.Ctx) error {
	var in dto.ExpenseCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validator.Struct(in); err != nil {
		return helper.JsonValidatorError(c, err)
	}
	spentAt, err := time.Parse("2006-01-02", in.SpentAt)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "spent_at must be YYYY-MM-DD")
	}

	m := in.ToModel(spentAt, helper.GetCashierIDFromContext(c))
	if err := h.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "expense recorded", dto.ToExpenseResponse(m))
}

// GET /api/u/expenses?category=&from=&to=
func (h *ExpenseHandler) ListExpenses(c *fiber.Ctx) error {
	q := h.DB.Model(&model.ExpenseModel{}).Where("expense_deleted_at IS NULL")
	if cat := strings.TrimSpace(c.Query("category")); cat != "" {
		q = q.Where("expense_category = ?", cat)
	}
	if from := strings.TrimSpace(c.Query("from")); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "from must be YYYY-MM-DD")
		}
		q = q.Where("expense_spent_at >= ?", t)
	}
	if to := strings.TrimSpace(c.Query("to")); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "to must be YYYY-MM-DD")
		}
		q = q.Where("expense_spent_at <= ?", t)
	}

	paging := helper.ResolvePaging(c, 25, 100)
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	var rows []model.ExpenseModel
	if err := q.Order("expense_spent_at DESC, expense_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "expenses",
		dto.ToExpenseResponses(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/u/expenses/summary?months=6
func (h *ExpenseHandler) MonthlySummary(c *fiber.Ctx) error {
	months := c.QueryInt("months", 6)
	if months < 1 || months > 36 {
		months = 6
	}
	since := time.Now().AddDate(0, -months, 0)

	var rows []dto.MonthlySummaryRow
	err := h.DB.Model(&model.ExpenseModel{}).
		Select(`to_char(expense_spent_at, 'YYYY-MM') AS month,
			expense_category AS category,
			SUM(expense_amount) AS total`).
		Where("expense_deleted_at IS NULL AND expense_spent_at >= ?", since).
		Group("month, category").
		Order("month DESC, category ASC").
		Scan(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "expense summary", rows)
}

// DELETE /api/u/expenses/:id (soft)
func (h *ExpenseHandler) DeleteExpense(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	res := h.DB.Where("expense_id = ?", id).Delete(&model.ExpenseModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "expense not found")
	}
	return helper.JsonDeleted(c, "expense deleted", fiber.Map{"expense_id": id})
}
