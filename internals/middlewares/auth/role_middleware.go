package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"feeportal_backend/internals/constants"
	cashierModel "feeportal_backend/internals/features/users/cashiers/model"
	helper "feeportal_backend/internals/helpers"
)

// OnlyRoles gates a route group to the given roles.
func OnlyRoles(customMessage string, roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := helper.GetRoleFromContext(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized: missing role information",
			})
		}
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}
		if customMessage == "" {
			customMessage = "Forbidden: you are not authorized to access this resource"
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": customMessage,
		})
	}
}

// RequireDiscountPermission allows admins through and cashiers only when
// their profile carries has_discount_permission. The concession operation
// itself trusts its caller; this guard is the route boundary.
func RequireDiscountPermission(db *gorm.DB) fiber.Handler {
	return requireCashierFlag(db, "cashier_has_discount_permission", "concession editing requires discount permission")
}

// RequireExpensesPermission gates expense entry for cashiers.
func RequireExpensesPermission(db *gorm.DB) fiber.Handler {
	return requireCashierFlag(db, "cashier_has_expenses_permission", "expense entry requires expenses permission")
}

func requireCashierFlag(db *gorm.DB, column, deniedMsg string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := helper.GetRoleFromContext(c)
		if role == constants.RoleAdmin {
			return c.Next()
		}
		if role != constants.RoleCashier {
			return helper.JsonError(c, fiber.StatusForbidden, deniedMsg)
		}
		cashierID := helper.GetCashierIDFromContext(c)
		if cashierID == nil {
			return helper.JsonError(c, fiber.StatusForbidden, "missing cashier profile in token")
		}
		var m cashierModel.CashierModel
		if err := db.First(&m, "cashier_id = ? AND "+column+" = true", *cashierID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusForbidden, deniedMsg)
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		return c.Next()
	}
}
