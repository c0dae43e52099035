// file: internals/features/school/calendar/controller/holiday_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"globalenglish_backend/internals/features/school/calendar/dto"
	"globalenglish_backend/internals/features/school/calendar/model"
	helper "globalenglish_backend/internals/helpers"
)

type HolidayController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewHolidayController(db *gorm.DB, v *validator.Validate) *HolidayController {
	if v == nil {
		v = validator.New()
	}
	return &HolidayController{DB: db, Validator: v}
}

func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint") ||
		strings.Contains(s, "sqlstate 23505")
}

// GET /holidays?from=&to=
func (ctl *HolidayController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.HolidayModel{})
	if from := strings.TrimSpace(c.Query("from")); from != "" {
		d, err := helper.ParseDate(from)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid 'from' date")
		}
		q = q.Where("holiday_date >= ?", d)
	}
	if to := strings.TrimSpace(c.Query("to")); to != "" {
		d, err := helper.ParseDate(to)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid 'to' date")
		}
		q = q.Where("holiday_date <= ?", d)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonDomainError(c, err)
	}

	var rows []model.HolidayModel
	if err := q.Order("holiday_date").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonList(c, "", rows, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// POST /holidays
func (ctl *HolidayController) Create(c *fiber.Ctx) error {
	var p dto.HolidayCreateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonDomainError(c, err)
	}
	p.Normalize()

	ent := p.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&ent).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "a holiday already exists on that date")
		}
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonCreated(c, "holiday created", ent)
}

// PATCH /holidays/:id
func (ctl *HolidayController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var ent model.HolidayModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&ent, "holiday_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "holiday not found")
		}
		return helper.JsonDomainError(c, err)
	}

	var p dto.HolidayUpdateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonDomainError(c, err)
	}
	p.ApplyUpdates(&ent)

	if err := ctl.DB.WithContext(c.UserContext()).Save(&ent).Error; err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonUpdated(c, "holiday updated", ent)
}

// DELETE /holidays/:id
func (ctl *HolidayController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	res := ctl.DB.WithContext(c.UserContext()).
		Delete(&model.HolidayModel{}, "holiday_id = ?", id)
	if res.Error != nil {
		return helper.JsonDomainError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "holiday not found")
	}
	return helper.JsonDeleted(c, "holiday deleted", fiber.Map{"holiday_id": id})
}
