// file: internals/features/school/academics/controller/program_week_controller.go
package controller

import (
	"errors"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"globalenglish_backend/internals/features/school/academics/dto"
	"globalenglish_backend/internals/features/school/academics/model"
	"globalenglish_backend/internals/features/school/academics/service"
	helper "globalenglish_backend/internals/helpers"
)

type ProgramWeekController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewProgramWeekController(db *gorm.DB, v *validator.Validate) *ProgramWeekController {
	if v == nil {
		v = validator.New()
	}
	return &ProgramWeekController{DB: db, Validator: v}
}

// GET /academic-periods/:id/weeks
func (ctl *ProgramWeekController) ListByPeriod(c *fiber.Ctx) error {
	periodID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid period id")
	}
	weeks, err := service.LoadWeeks(c.UserContext(), ctl.DB, periodID)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonOK(c, "", weeks)
}

// PUT /academic-periods/:id/weeks replaces the period's week set. Week
// ranges must be disjoint, numbered without gaps from 1, and stay inside
// the period's date range.
func (ctl *ProgramWeekController) ReplaceSet(c *fiber.Ctx) error {
	periodID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid period id")
	}

	var period model.AcademicPeriodModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&period, "academic_period_id = ?", periodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "academic period not found")
		}
		return helper.JsonDomainError(c, err)
	}

	var p dto.ProgramWeekBulkDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonDomainError(c, err)
	}

	weeks := make([]model.ProgramWeekModel, 0, len(p.Weeks))
	for i := range p.Weeks {
		w, err := p.Weeks[i].ToModel(periodID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid date")
		}
		weeks = append(weeks, w)
	}
	if msg := validateWeekSet(period, weeks); msg != "" {
		return helper.JsonError(c, fiber.StatusBadRequest, msg)
	}

	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("program_week_period_id = ?", periodID).
			Delete(&model.ProgramWeekModel{}).Error; err != nil {
			return err
		}
		return tx.Create(&weeks).Error
	})
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonUpdated(c, "program weeks replaced", weeks)
}

func validateWeekSet(period model.AcademicPeriodModel, weeks []model.ProgramWeekModel) string {
	sort.Slice(weeks, func(i, j int) bool {
		return weeks[i].ProgramWeekNumber < weeks[j].ProgramWeekNumber
	})
	for i := range weeks {
		w := &weeks[i]
		if w.ProgramWeekNumber != i+1 {
			return "week numbers must run 1..n without gaps"
		}
		if w.ProgramWeekEndDate.Before(w.ProgramWeekStartDate) {
			return "week end date must not precede its start date"
		}
		if w.ProgramWeekStartDate.Before(period.AcademicPeriodStartDate) ||
			w.ProgramWeekEndDate.After(period.AcademicPeriodEndDate) {
			return "week range must stay inside the period's date range"
		}
		if i > 0 && !weeks[i-1].ProgramWeekEndDate.Before(w.ProgramWeekStartDate) {
			return "week ranges must not overlap"
		}
	}
	return ""
}
