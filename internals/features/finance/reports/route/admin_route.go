// file: internals/features/finance/reports/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "feeportal_backend/internals/features/finance/reports/controller"
)

func ReportAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := controller.NewReportHandler(db)

	reports := admin.Group("/reports")
	reports.Get("/payments.csv", h.PaymentsCSV)
	reports.Get("/payments.pdf", h.PaymentsPDF)
	reports.Get("/expenses.csv", h.ExpensesCSV)
	reports.Get("/expenses.pdf", h.ExpensesPDF)
}
