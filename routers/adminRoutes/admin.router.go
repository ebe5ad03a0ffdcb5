package adminRoutes

import (
	controllers "lms/controllers/admin"
	"lms/middleware"
	"lms/models"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up admin-only routes
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin")

	adminGroup.Post("/backup/run", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), controllers.RunBackup)
}
