// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"feeportal_backend/internals/configs"
	"feeportal_backend/internals/constants"
	authMiddleware "feeportal_backend/internals/middlewares/auth"
	routeDetails "feeportal_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== PRIVATE (STAFF) =====================
	// /api/u → any signed-in staff member; per-feature permission
	// middleware narrows what a cashier can reach.
	log.Println("[INFO] Setting up STAFF group...")
	user := app.Group("/api/u",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
		authMiddleware.OnlyRoles(
			constants.RoleErrorStaff("the fee portal"),
			constants.AllRoles...,
		),
	)
	routeDetails.AuthUserRoutes(user, db)
	routeDetails.FinanceUserRoutes(user, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
		authMiddleware.OnlyRoles(
			constants.RoleErrorAdmin("administration"),
			constants.AdminOnly...,
		),
	)
	routeDetails.SchoolAdminRoutes(admin, db)
	routeDetails.FinanceAdminRoutes(admin, db)
	routeDetails.UserAdminRoutes(admin, db)
}
