package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	yearapi "feeportal_backend/internals/features/academics/academic_years/controller"
)

func AcademicYearAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := yearapi.NewAcademicYearHandler(db)

	grp := admin.Group("/academic-years")
	{
		grp.Post("/", h.CreateAcademicYear)
		grp.Get("/", h.ListAcademicYears)
		grp.Patch("/:id", h.UpdateAcademicYear)
		grp.Delete("/:id", h.DeleteAcademicYear)
	}
}
