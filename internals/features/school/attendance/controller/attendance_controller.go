// file: internals/features/school/attendance/controller/attendance_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"globalenglish_backend/internals/features/school/attendance/dto"
	"globalenglish_backend/internals/features/school/attendance/service"
	helper "globalenglish_backend/internals/helpers"
)

type AttendanceController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Recorder  *service.Recorder
}

func NewAttendanceController(db *gorm.DB, v *validator.Validate) *AttendanceController {
	if v == nil {
		v = validator.New()
	}
	return &AttendanceController{DB: db, Validator: v, Recorder: &service.Recorder{DB: db}}
}

// GET /sessions/:id/attendance
func (ctl *AttendanceController) ListBySession(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid session id")
	}
	rows, err := ctl.Recorder.ListBySession(c.UserContext(), sessionID)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonOK(c, "", rows)
}

// PUT /sessions/:id/attendance replaces the session's attendance set.
// An empty statuses list is valid and records the whole roster as absent.
func (ctl *AttendanceController) Record(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid session id")
	}
	var p dto.RecordAttendanceDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonDomainError(c, err)
	}

	rows, err := ctl.Recorder.Record(c.UserContext(), sessionID, p.ToInputs())
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonUpdated(c, "attendance recorded", rows)
}
