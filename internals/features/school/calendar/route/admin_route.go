// file: internals/features/school/calendar/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"globalenglish_backend/internals/features/school/calendar/controller"
)

func CalendarAdminRoutes(r fiber.Router, db *gorm.DB) {
	holidays := controller.NewHolidayController(db, nil)
	reasons := controller.NewAbsenceReasonController(db, nil)

	h := r.Group("/holidays")
	h.Get("/", holidays.List)
	h.Post("/", holidays.Create)
	h.Patch("/:id", holidays.Update)
	h.Delete("/:id", holidays.Delete)

	a := r.Group("/absence-reasons")
	a.Get("/", reasons.List)
	a.Post("/", reasons.Create)
	a.Patch("/:id", reasons.Update)
	a.Delete("/:id", reasons.Delete)
}
