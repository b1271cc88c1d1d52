// file: internals/features/users/cashiers/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "feeportal_backend/internals/features/users/cashiers/controller"
)

func CashierAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := controller.NewCashierHandler(db)

	cashiers := admin.Group("/cashiers")
	cashiers.Post("/", h.CreateCashier)
	cashiers.Get("/", h.ListCashiers)
	cashiers.Patch("/:id/permissions", h.UpdateCashierPermissions)
	cashiers.Delete("/:id", h.DeleteCashier)
}
