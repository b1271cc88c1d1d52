// file: internals/route/details/user_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	CashierRoute "feeportal_backend/internals/features/users/cashiers/route"
)

func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	CashierRoute.CashierAdminRoutes(r, db)
}
