// file: internals/features/finance/invoices/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "feeportal_backend/internals/features/finance/invoices/controller"
)

// InvoiceAdminRoutes mounts batch generation and batch views (admin only).
func InvoiceAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := controller.NewInvoiceHandler(db)

	inv := admin.Group("/invoices")
	inv.Post("/generate", h.GenerateInvoices)
	inv.Post("/generate-csv", h.GenerateInvoicesFromCSV)
	inv.Get("/batches", h.ListBatches)
	inv.Get("/batches/:batch_id", h.GetBatchDetail)
}

// InvoiceUserRoutes mounts the read paths the payment desk needs.
func InvoiceUserRoutes(user fiber.Router, db *gorm.DB) {
	h := controller.NewInvoiceHandler(db)

	inv := user.Group("/invoices")
	inv.Get("/students/:student_id", h.ListStudentUnpaidInvoices)
}
