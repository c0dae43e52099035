// file: internals/features/school/reports/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"globalenglish_backend/internals/features/school/reports/controller"
)

func ReportAdminRoutes(r fiber.Router, db *gorm.DB) {
	reports := controller.NewReportController(db, nil)

	g := r.Group("/reports")
	g.Get("/sessions", reports.SessionSummary)
	g.Get("/attendance", reports.StudentAttendance)
	g.Get("/weekly", reports.WeeklyRollup)
}
