// file: internals/features/finance/payments/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "feeportal_backend/internals/features/finance/payments/controller"
)

func PaymentUserRoutes(user fiber.Router, db *gorm.DB) {
	h := controller.NewPaymentHandler(db)

	payments := user.Group("/payments")
	payments.Post("/", h.RecordPayment)
	payments.Get("/", h.ListPayments)
	payments.Get("/:id", h.GetPayment)
}
