// file: internals/features/finance/concessions/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "feeportal_backend/internals/features/finance/concessions/controller"
	authmw "feeportal_backend/internals/middlewares/auth"
)

// ConcessionUserRoutes is admin-or-permitted-cashier only; the flag check
// runs per request so revocations take effect immediately.
func ConcessionUserRoutes(user fiber.Router, db *gorm.DB) {
	h := controller.NewConcessionHandler(db)

	concessions := user.Group("/concessions", authmw.RequireDiscountPermission(db))
	concessions.Put("/", h.UpdateConcession)
}
