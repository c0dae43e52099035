// file: internals/route/details/school_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	academicsRoute "globalenglish_backend/internals/features/school/academics/route"
	attendanceRoute "globalenglish_backend/internals/features/school/attendance/route"
	calendarRoute "globalenglish_backend/internals/features/school/calendar/route"
	classroomsRoute "globalenglish_backend/internals/features/school/classrooms/route"
	gradesRoute "globalenglish_backend/internals/features/school/grades/route"
	reportsRoute "globalenglish_backend/internals/features/school/reports/route"
	sessionsRoute "globalenglish_backend/internals/features/school/sessions/route"
)

// SchoolAdminRoutes mounts the catalog and configuration surface.
func SchoolAdminRoutes(r fiber.Router, db *gorm.DB) {
	calendarRoute.CalendarAdminRoutes(r, db)
	academicsRoute.AcademicsAdminRoutes(r, db)
	classroomsRoute.ClassroomAdminRoutes(r, db)
	gradesRoute.GradesAdminRoutes(r, db)
}

// SchoolOperatorRoutes mounts the day-to-day teaching surface.
func SchoolOperatorRoutes(r fiber.Router, db *gorm.DB) {
	sessionsRoute.SessionAdminRoutes(r, db)
	attendanceRoute.AttendanceAdminRoutes(r, db)
	gradesRoute.GradesAdminRoutes(r, db)
	reportsRoute.ReportAdminRoutes(r, db)
}
