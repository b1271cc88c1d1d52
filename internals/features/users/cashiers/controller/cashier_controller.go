// file: internals/features/users/cashiers/controller/cashier_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "feeportal_backend/internals/features/users/cashiers/dto"
	model "feeportal_backend/internals/features/users/cashiers/model"
	userModel "feeportal_backend/internals/features/users/user/model"
	helper "feeportal_backend/internals/helpers"
)

type CashierHandler struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCashierHandler(db *gorm.DB) *CashierHandler {
	return &CashierHandler{DB: db, Validator: validator.New()}
}

// POST /api/a/cashiers
//
// Creates the auth user and the cashier profile in one transaction; a
// half-provisioned cashier cannot log in, so neither row may exist alone.
func (h *CashierHandler) CreateCashier(c *fiber.Ctx) error {
	var in dto.CashierCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validator.Struct(in); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	var count int64
	if err := h.DB.Model(&userModel.UserModel{}).
		Where("user_email = ? AND user_deleted_at IS NULL", in.Email).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "email already in use")
	}

	user := userModel.UserModel{
		UserName:  in.Name,
		UserEmail: in.Email,
		UserPhone: in.Phone,
		UserRole:  userModel.UserRoleCashier,
	}
	if err := user.SetPassword(in.Password); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "could not hash password")
	}

	var cashier model.CashierModel
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		cashier = model.CashierModel{
			CashierUserID:                 user.UserID,
			CashierName:                   in.Name,
			CashierHasDiscountPermission:  in.HasDiscountPermission,
			CashierHasExpensesPermission:  in.HasExpensesPermission,
			CashierPasswordChangeRequired: true,
		}
		return tx.Create(&cashier).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "cashier created", dto.ToCashierResponse(cashier, user.UserEmail))
}

// GET /api/a/cashiers
func (h *CashierHandler) ListCashiers(c *fiber.Ctx) error {
	var cashiers []model.CashierModel
	if err := h.DB.
		Where("cashier_deleted_at IS NULL").
		Order("cashier_name ASC").
		Find(&cashiers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	userIDs := make([]uuid.UUID, 0, len(cashiers))
	for _, cs := range cashiers {
		userIDs = append(userIDs, cs.CashierUserID)
	}
	emailByUser := make(map[uuid.UUID]string, len(userIDs))
	if len(userIDs) > 0 {
		var users []userModel.UserModel
		if err := h.DB.Unscoped().Where("user_id IN ?", userIDs).Find(&users).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		for _, u := range users {
			emailByUser[u.UserID] = u.UserEmail
		}
	}

	out := make([]dto.CashierResponse, 0, len(cashiers))
	for _, cs := range cashiers {
		out = append(out, dto.ToCashierResponse(cs, emailByUser[cs.CashierUserID]))
	}
	return helper.JsonOK(c, "cashiers", out)
}

// PATCH /api/a/cashiers/:id/permissions
func (h *CashierHandler) UpdateCashierPermissions(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var in dto.CashierPermissionsUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if in.HasDiscountPermission == nil && in.HasExpensesPermission == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "no permission flags given")
	}

	var cashier model.CashierModel
	if err := h.DB.First(&cashier,
		"cashier_id = ? AND cashier_deleted_at IS NULL", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "cashier not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	updates := map[string]any{}
	if in.HasDiscountPermission != nil {
		cashier.CashierHasDiscountPermission = *in.HasDiscountPermission
		updates["cashier_has_discount_permission"] = *in.HasDiscountPermission
	}
	if in.HasExpensesPermission != nil {
		cashier.CashierHasExpensesPermission = *in.HasExpensesPermission
		updates["cashier_has_expenses_permission"] = *in.HasExpensesPermission
	}
	if err := h.DB.Model(&model.CashierModel{}).
		Where("cashier_id = ?", id).
		Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var email string
	var user userModel.UserModel
	if err := h.DB.First(&user, "user_id = ?", cashier.CashierUserID).Error; err == nil {
		email = user.UserEmail
	}
	return helper.JsonUpdated(c, "cashier permissions updated", dto.ToCashierResponse(cashier, email))
}

// DELETE /api/a/cashiers/:id
//
// Soft-deletes the profile and its auth user together; payments keep
// their cashier_id for history.
func (h *CashierHandler) DeleteCashier(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var cashier model.CashierModel
	if err := h.DB.First(&cashier,
		"cashier_id = ? AND cashier_deleted_at IS NULL", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "cashier not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cashier_id = ?", id).Delete(&model.CashierModel{}).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", cashier.CashierUserID).Delete(&userModel.UserModel{}).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "cashier deleted", fiber.Map{"cashier_id": id})
}
