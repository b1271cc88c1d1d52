// file: internals/route/details/auth_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	AuthController "feeportal_backend/internals/features/users/auth/controller"
	"feeportal_backend/internals/middlewares"
)

// AuthRoutes mounts the public login endpoint with its own tighter
// rate limit.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	h := AuthController.NewAuthHandler(db)
	app.Post("/api/login", middlewares.LoginRateLimiter(), h.Login)
}

// AuthUserRoutes mounts the endpoints any signed-in user gets.
func AuthUserRoutes(user fiber.Router, db *gorm.DB) {
	h := AuthController.NewAuthHandler(db)
	user.Post("/change-password", h.ChangePassword)
}
