// file: internals/features/finance/feestructures/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "feeportal_backend/internals/features/finance/feestructures/controller"
)

func FeeStructureAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := controller.NewFeeStructureHandler(db)

	fees := admin.Group("/fee-structures")
	fees.Post("/", h.CreateFeeStructure)
	fees.Get("/", h.ListFeeStructures)
	fees.Get("/:id", h.GetFeeStructure)
	fees.Put("/:id", h.UpdateFeeStructure)
	fees.Delete("/:id", h.DeleteFeeStructure)
}
