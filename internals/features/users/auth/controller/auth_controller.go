// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"feeportal_backend/internals/configs"
	dto "feeportal_backend/internals/features/users/auth/dto"
	cashierModel "feeportal_backend/internals/features/users/cashiers/model"
	userModel "feeportal_backend/internals/features/users/user/model"
	helper "feeportal_backend/internals/helpers"
)

const tokenTTL = 12 * time.Hour

type AuthHandler struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAuthHandler(db *gorm.DB) *AuthHandler {
	return &AuthHandler{DB: db, Validator: validator.New()}
}

// POST /api/login
//
// Cashier tokens carry their cashier_id claim so downstream handlers can
// attribute payments and expenses without another lookup.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validator.Struct(in); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	var user userModel.UserModel
	if err := h.DB.First(&user,
		"user_email = ? AND user_deleted_at IS NULL", in.Email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "invalid credentials")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !user.CheckPassword(in.Password) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	var cashier *cashierModel.CashierModel
	if user.UserRole == userModel.UserRoleCashier {
		var cs cashierModel.CashierModel
		if err := h.DB.First(&cs,
			"cashier_user_id = ? AND cashier_deleted_at IS NULL", user.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusForbidden, "cashier profile not found")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		cashier = &cs
	}

	claims := jwt.MapClaims{
		"user_id": user.UserID.String(),
		"role":    user.UserRole,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(tokenTTL).Unix(),
	}
	if cashier != nil {
		claims["cashier_id"] = cashier.CashierID.String()
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "could not sign token")
	}

	resp := dto.LoginResponse{
		Token:  signed,
		UserID: user.UserID,
		Name:   user.UserName,
		Role:   user.UserRole,
	}
	if cashier != nil {
		resp.CashierID = &cashier.CashierID
		resp.PasswordChangeRequired = cashier.CashierPasswordChangeRequired
	}
	return helper.JsonOK(c, "login successful", resp)
}

// POST /api/u/change-password
//
// Clears cashier_password_change_required so the first-login gate only
// fires once.
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromContext(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var in dto.ChangePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validator.Struct(in); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	var user userModel.UserModel
	if err := h.DB.First(&user,
		"user_id = ? AND user_deleted_at IS NULL", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "user not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !user.CheckPassword(in.OldPassword) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "old password is incorrect")
	}
	if err := user.SetPassword(in.NewPassword); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "could not hash password")
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&userModel.UserModel{}).
			Where("user_id = ?", user.UserID).
			Update("user_password_hash", user.UserPasswordHash).Error; err != nil {
			return err
		}
		if user.UserRole == userModel.UserRoleCashier {
			if err := tx.Model(&cashierModel.CashierModel{}).
				Where("cashier_user_id = ?", user.UserID).
				Update("cashier_password_change_required", false).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "password changed", fiber.Map{"user_id": user.UserID})
}
