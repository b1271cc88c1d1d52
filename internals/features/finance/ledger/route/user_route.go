// file: internals/features/finance/ledger/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "feeportal_backend/internals/features/finance/ledger/controller"
)

// LedgerUserRoutes mounts the roll-number search used by the payment desk.
func LedgerUserRoutes(user fiber.Router, db *gorm.DB) {
	h := controller.NewLedgerHandler(db)

	ledger := user.Group("/ledger")
	ledger.Get("/students/:roll_number", h.SearchStudent)
}
