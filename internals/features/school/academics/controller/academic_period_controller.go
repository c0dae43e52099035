// file: internals/features/school/academics/controller/academic_period_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"globalenglish_backend/internals/features/school/academics/dto"
	"globalenglish_backend/internals/features/school/academics/model"
	helper "globalenglish_backend/internals/helpers"
)

type AcademicPeriodController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAcademicPeriodController(db *gorm.DB, v *validator.Validate) *AcademicPeriodController {
	if v == nil {
		v = validator.New()
	}
	return &AcademicPeriodController{DB: db, Validator: v}
}

// hasOverlap reports whether another period of the same year intersects
// [start, end]. excludeID skips the row being updated.
func (ctl *AcademicPeriodController) hasOverlap(c *fiber.Ctx, year int, start, end time.Time, excludeID *uuid.UUID) (bool, error) {
	q := ctl.DB.WithContext(c.UserContext()).
		Model(&model.AcademicPeriodModel{}).
		Where("academic_period_year = ?", year).
		Where("academic_period_start_date <= ? AND academic_period_end_date >= ?", end, start)
	if excludeID != nil {
		q = q.Where("academic_period_id <> ?", *excludeID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// GET /academic-periods?year=
func (ctl *AcademicPeriodController) List(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.UserContext()).Model(&model.AcademicPeriodModel{})
	if year := c.QueryInt("year"); year > 0 {
		q = q.Where("academic_period_year = ?", year)
	}

	var rows []model.AcademicPeriodModel
	if err := q.Order("academic_period_start_date").Find(&rows).Error; err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonOK(c, "", rows)
}

// GET /academic-periods/:id
func (ctl *AcademicPeriodController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var ent model.AcademicPeriodModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&ent, "academic_period_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "academic period not found")
		}
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonOK(c, "", ent)
}

// POST /academic-periods
func (ctl *AcademicPeriodController) Create(c *fiber.Ctx) error {
	var p dto.AcademicPeriodCreateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonDomainError(c, err)
	}
	p.Normalize()

	ent, err := p.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid date")
	}
	if ent.AcademicPeriodEndDate.Before(ent.AcademicPeriodStartDate) {
		return helper.JsonError(c, fiber.StatusBadRequest, "end date must not precede start date")
	}

	overlap, err := ctl.hasOverlap(c, ent.AcademicPeriodYear, ent.AcademicPeriodStartDate, ent.AcademicPeriodEndDate, nil)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	if overlap {
		return helper.JsonError(c, fiber.StatusConflict, "period overlaps an existing period of the same year")
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(&ent).Error; err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonCreated(c, "academic period created", ent)
}

// PATCH /academic-periods/:id
func (ctl *AcademicPeriodController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var ent model.AcademicPeriodModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&ent, "academic_period_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "academic period not found")
		}
		return helper.JsonDomainError(c, err)
	}

	var p dto.AcademicPeriodUpdateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonDomainError(c, err)
	}
	if err := p.ApplyUpdates(&ent); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid date")
	}
	if ent.AcademicPeriodEndDate.Before(ent.AcademicPeriodStartDate) {
		return helper.JsonError(c, fiber.StatusBadRequest, "end date must not precede start date")
	}

	overlap, err := ctl.hasOverlap(c, ent.AcademicPeriodYear, ent.AcademicPeriodStartDate, ent.AcademicPeriodEndDate, &ent.AcademicPeriodID)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	if overlap {
		return helper.JsonError(c, fiber.StatusConflict, "period overlaps an existing period of the same year")
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(&ent).Error; err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonUpdated(c, "academic period updated", ent)
}

// DELETE /academic-periods/:id (soft)
func (ctl *AcademicPeriodController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	res := ctl.DB.WithContext(c.UserContext()).
		Delete(&model.AcademicPeriodModel{}, "academic_period_id = ?", id)
	if res.Error != nil {
		return helper.JsonDomainError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "academic period not found")
	}
	return helper.JsonDeleted(c, "academic period deleted", fiber.Map{"academic_period_id": id})
}
