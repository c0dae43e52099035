// file: internals/features/school/academics/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"globalenglish_backend/internals/features/school/academics/controller"
)

func AcademicsAdminRoutes(r fiber.Router, db *gorm.DB) {
	periods := controller.NewAcademicPeriodController(db, nil)
	weeks := controller.NewProgramWeekController(db, nil)

	p := r.Group("/academic-periods")
	p.Get("/", periods.List)
	p.Get("/:id", periods.Detail)
	p.Post("/", periods.Create)
	p.Patch("/:id", periods.Update)
	p.Delete("/:id", periods.Delete)

	p.Get("/:id/weeks", weeks.ListByPeriod)
	p.Put("/:id/weeks", weeks.ReplaceSet)
}
