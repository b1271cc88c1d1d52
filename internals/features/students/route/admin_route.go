package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentapi "feeportal_backend/internals/features/students/controller"
)

// StudentAdminRoutes mounts enrollment CRUD under the admin group.
func StudentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := studentapi.NewStudentHandler(db)

	grp := admin.Group("/students")
	{
		grp.Post("/", h.CreateStudent)
		grp.Get("/", h.ListStudents)
		grp.Get("/:id", h.GetStudent)
		grp.Patch("/:id", h.UpdateStudent)
		grp.Delete("/:id", h.DeleteStudent)
	}

	types := admin.Group("/student-types")
	{
		types.Get("/", h.ListStudentTypes)
		types.Post("/", h.CreateStudentType)
	}
}
