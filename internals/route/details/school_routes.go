// file: internals/route/details/school_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	AcademicYearRoute "feeportal_backend/internals/features/academics/academic_years/route"
	StudentRoute "feeportal_backend/internals/features/students/route"
)

func SchoolAdminRoutes(r fiber.Router, db *gorm.DB) {
	AcademicYearRoute.AcademicYearAdminRoutes(r, db)
	StudentRoute.StudentAdminRoutes(r, db)
}
