// file: internals/features/school/classrooms/controller/weekly_slot_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"globalenglish_backend/internals/features/school/classrooms/dto"
	"globalenglish_backend/internals/features/school/classrooms/model"
	helper "globalenglish_backend/internals/helpers"
)

type WeeklySlotController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewWeeklySlotController(db *gorm.DB, v *validator.Validate) *WeeklySlotController {
	if v == nil {
		v = validator.New()
	}
	return &WeeklySlotController{DB: db, Validator: v}
}

// GET /classrooms/:id/slots
func (ctl *WeeklySlotController) ListByClassroom(c *fiber.Ctx) error {
	classroomID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid classroom id")
	}
	var rows []model.WeeklySlotModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("weekly_slot_classroom_id = ?", classroomID).
		Order("weekly_slot_day_of_week, weekly_slot_start_time").
		Find(&rows).Error; err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonOK(c, "", rows)
}

// POST /classrooms/:id/slots
func (ctl *WeeklySlotController) Create(c *fiber.Ctx) error {
	classroomID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid classroom id")
	}

	var cls model.ClassroomModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&cls, "classroom_id = ?", classroomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "classroom not found")
		}
		return helper.JsonDomainError(c, err)
	}

	var p dto.WeeklySlotCreateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonDomainError(c, err)
	}
	if p.WeeklySlotEndTime <= p.WeeklySlotStartTime {
		return helper.JsonError(c, fiber.StatusBadRequest, "slot end time must be after its start time")
	}

	ent := p.ToModel(classroomID)
	if err := ctl.DB.WithContext(c.UserContext()).Create(&ent).Error; err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonCreated(c, "weekly slot created", ent)
}

// DELETE /classrooms/:id/slots/:slotId (soft). Sessions already generated
// from the slot are untouched; they carry their own slot snapshot.
func (ctl *WeeklySlotController) Delete(c *fiber.Ctx) error {
	classroomID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid classroom id")
	}
	slotID, err := uuid.Parse(c.Params("slotId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid slot id")
	}
	res := ctl.DB.WithContext(c.UserContext()).
		Where("weekly_slot_classroom_id = ?", classroomID).
		Delete(&model.WeeklySlotModel{}, "weekly_slot_id = ?", slotID)
	if res.Error != nil {
		return helper.JsonDomainError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "weekly slot not found")
	}
	return helper.JsonDeleted(c, "weekly slot deleted", fiber.Map{"weekly_slot_id": slotID})
}
