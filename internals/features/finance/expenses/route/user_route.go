// file: internals/features/finance/expenses/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "feeportal_backend/internals/features/finance/expenses/controller"
	authmw "feeportal_backend/internals/middlewares/auth"
)

// ExpenseUserRoutes is reachable by admins always, and by cashiers that
// hold the expenses permission flag.
func ExpenseUserRoutes(user fiber.Router, db *gorm.DB) {
	h := controller.NewExpenseHandler(db)

	exp := user.Group("/expenses", authmw.RequireExpensesPermission(db))
	exp.Post("/", h.CreateExpense)
	exp.Get("/", h.ListExpenses)
	exp.Get("/summary", h.MonthlySummary)
	exp.Delete("/:id", h.DeleteExpense)
}
