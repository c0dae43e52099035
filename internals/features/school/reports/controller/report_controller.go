// file: internals/features/school/reports/controller/report_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"globalenglish_backend/internals/features/school/reports/dto"
	"globalenglish_backend/internals/features/school/reports/service"
	helper "globalenglish_backend/internals/helpers"
)

type ReportController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Reporter  *service.Reporter
}

func NewReportController(db *gorm.DB, v *validator.Validate) *ReportController {
	if v == nil {
		v = validator.New()
	}
	return &ReportController{DB: db, Validator: v, Reporter: &service.Reporter{DB: db}}
}

func (ctl *ReportController) parseFilter(c *fiber.Ctx) (dto.ReportFilterDTO, error) {
	var f dto.ReportFilterDTO
	if err := c.QueryParser(&f); err != nil {
		return f, fiber.NewError(fiber.StatusBadRequest, "invalid report filter")
	}
	if err := ctl.Validator.Struct(f); err != nil {
		return f, fiber.NewError(fiber.StatusBadRequest, "invalid report filter")
	}
	if f.WeekFrom > 0 && f.WeekTo > 0 && f.WeekTo < f.WeekFrom {
		return f, fiber.NewError(fiber.StatusBadRequest, "week_to must be >= week_from")
	}
	return f, nil
}

// GET /reports/sessions
func (ctl *ReportController) SessionSummary(c *fiber.Ctx) error {
	f, err := ctl.parseFilter(c)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	rows, err := ctl.Reporter.SessionSummary(c.UserContext(), f)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonOK(c, "", rows)
}

// GET /reports/attendance
func (ctl *ReportController) StudentAttendance(c *fiber.Ctx) error {
	f, err := ctl.parseFilter(c)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	rows, err := ctl.Reporter.StudentAttendance(c.UserContext(), f)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonOK(c, "", rows)
}

// GET /reports/weekly
func (ctl *ReportController) WeeklyRollup(c *fiber.Ctx) error {
	f, err := ctl.parseFilter(c)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	rows, err := ctl.Reporter.WeeklyRollup(c.UserContext(), f)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonOK(c, "", rows)
}
