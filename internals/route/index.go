// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	routeDetails "globalenglish_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a")
	routeDetails.SchoolAdminRoutes(admin, db)

	// ===================== OPERATOR =====================
	log.Println("[INFO] Setting up OPERATOR group...")
	operator := app.Group("/api/u")
	routeDetails.SchoolOperatorRoutes(operator, db)
}
