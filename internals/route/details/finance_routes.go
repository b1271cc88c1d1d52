// file: internals/route/details/finance_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ConcessionRoute "feeportal_backend/internals/features/finance/concessions/route"
	ExpenseRoute "feeportal_backend/internals/features/finance/expenses/route"
	FeeStructureRoute "feeportal_backend/internals/features/finance/feestructures/route"
	InvoiceRoute "feeportal_backend/internals/features/finance/invoices/route"
	LedgerRoute "feeportal_backend/internals/features/finance/ledger/route"
	PaymentRoute "feeportal_backend/internals/features/finance/payments/route"
	ReportRoute "feeportal_backend/internals/features/finance/reports/route"
)

func FinanceAdminRoutes(r fiber.Router, db *gorm.DB) {
	FeeStructureRoute.FeeStructureAdminRoutes(r, db)
	InvoiceRoute.InvoiceAdminRoutes(r, db)
	ReportRoute.ReportAdminRoutes(r, db)
}

func FinanceUserRoutes(r fiber.Router, db *gorm.DB) {
	LedgerRoute.LedgerUserRoutes(r, db)
	PaymentRoute.PaymentUserRoutes(r, db)
	InvoiceRoute.InvoiceUserRoutes(r, db)
	ConcessionRoute.ConcessionUserRoutes(r, db)
	ExpenseRoute.ExpenseUserRoutes(r, db)
}
