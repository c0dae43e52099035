// file: internals/features/school/classrooms/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"globalenglish_backend/internals/features/school/classrooms/controller"
)

func ClassroomAdminRoutes(r fiber.Router, db *gorm.DB) {
	classrooms := controller.NewClassroomController(db, nil)
	slots := controller.NewWeeklySlotController(db, nil)

	g := r.Group("/classrooms")
	g.Get("/", classrooms.List)
	g.Get("/:id", classrooms.Detail)
	g.Post("/", classrooms.Create)
	g.Patch("/:id", classrooms.Update)
	g.Delete("/:id", classrooms.Delete)

	g.Get("/:id/slots", slots.ListByClassroom)
	g.Post("/:id/slots", slots.Create)
	g.Delete("/:id/slots/:slotId", slots.Delete)
}
