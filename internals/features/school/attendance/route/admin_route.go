// file: internals/features/school/attendance/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"globalenglish_backend/internals/features/school/attendance/controller"
)

func AttendanceAdminRoutes(r fiber.Router, db *gorm.DB) {
	attendance := controller.NewAttendanceController(db, nil)

	g := r.Group("/sessions")
	g.Get("/:id/attendance", attendance.ListBySession)
	g.Put("/:id/attendance", attendance.Record)
}
