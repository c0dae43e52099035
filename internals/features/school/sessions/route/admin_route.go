// file: internals/features/school/sessions/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"globalenglish_backend/internals/features/school/sessions/controller"
)

func SessionAdminRoutes(r fiber.Router, db *gorm.DB) {
	sessions := controller.NewSessionController(db, nil)

	g := r.Group("/sessions")
	g.Get("/", sessions.List)
	g.Post("/generate", sessions.Generate)
	g.Get("/:id", sessions.Detail)
	g.Post("/:id/taught", sessions.MarkTaught)
	g.Post("/:id/not-taught", sessions.MarkNotTaught)
	g.Post("/:id/makeup", sessions.ScheduleMakeup)
}
