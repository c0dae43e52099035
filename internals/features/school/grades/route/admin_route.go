// file: internals/features/school/grades/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"globalenglish_backend/internals/features/school/grades/controller"
)

func GradesAdminRoutes(r fiber.Router, db *gorm.DB) {
	components := controller.NewGradeComponentController(db, nil)
	entries := controller.NewGradeEntryController(db, nil)

	g := r.Group("/grade-components")
	g.Get("/", components.List)
	g.Post("/", components.Create)
	g.Put("/activate-set", components.ActivateSet)
	g.Patch("/:id", components.Update)
	g.Delete("/:id", components.Delete)

	e := r.Group("/grade-entries")
	e.Get("/", entries.List)
	e.Put("/", entries.Upsert)

	r.Get("/final-grade", entries.FinalGrade)
}
