// file: internals/features/school/calendar/controller/absence_reason_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"globalenglish_backend/internals/features/school/calendar/dto"
	"globalenglish_backend/internals/features/school/calendar/model"
	helper "globalenglish_backend/internals/helpers"
)

type AbsenceReasonController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAbsenceReasonController(db *gorm.DB, v *validator.Validate) *AbsenceReasonController {
	if v == nil {
		v = validator.New()
	}
	return &AbsenceReasonController{DB: db, Validator: v}
}

// GET /absence-reasons?active=
func (ctl *AbsenceReasonController) List(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.UserContext()).Model(&model.AbsenceReasonModel{})
	if active := c.Query("active"); active != "" {
		q = q.Where("absence_reason_is_active = ?", active == "true" || active == "1")
	}

	var rows []model.AbsenceReasonModel
	if err := q.Order("absence_reason_name").Find(&rows).Error; err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonOK(c, "", rows)
}

// POST /absence-reasons
func (ctl *AbsenceReasonController) Create(c *fiber.Ctx) error {
	var p dto.AbsenceReasonCreateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonDomainError(c, err)
	}

	ent := p.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&ent).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "an absence reason with that name already exists")
		}
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonCreated(c, "absence reason created", ent)
}

// PATCH /absence-reasons/:id
func (ctl *AbsenceReasonController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var ent model.AbsenceReasonModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&ent, "absence_reason_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "absence reason not found")
		}
		return helper.JsonDomainError(c, err)
	}

	var p dto.AbsenceReasonUpdateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonDomainError(c, err)
	}
	p.ApplyUpdates(&ent)

	if err := ctl.DB.WithContext(c.UserContext()).Save(&ent).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "an absence reason with that name already exists")
		}
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonUpdated(c, "absence reason updated", ent)
}

// DELETE /absence-reasons/:id (soft). Blocked while any session or
// attendance record still references the reason.
func (ctl *AbsenceReasonController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	db := ctl.DB.WithContext(c.UserContext())

	var refs int64
	if err := db.Table("sessions").
		Where("session_reason_id = ? AND session_deleted_at IS NULL", id).
		Count(&refs).Error; err != nil {
		return helper.JsonDomainError(c, err)
	}
	if refs == 0 {
		if err := db.Table("attendance_records").
			Where("attendance_record_reason_id = ?", id).
			Count(&refs).Error; err != nil {
			return helper.JsonDomainError(c, err)
		}
	}
	if refs > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "absence reason is referenced and cannot be deleted")
	}

	res := db.Delete(&model.AbsenceReasonModel{}, "absence_reason_id = ?", id)
	if res.Error != nil {
		return helper.JsonDomainError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "absence reason not found")
	}
	return helper.JsonDeleted(c, "absence reason deleted", fiber.Map{"absence_reason_id": id})
}
