// file: internals/features/school/grades/controller/grade_component_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"globalenglish_backend/internals/features/school/grades/dto"
	"globalenglish_backend/internals/features/school/grades/model"
	"globalenglish_backend/internals/features/school/grades/service"
	helper "globalenglish_backend/internals/helpers"
)

type GradeComponentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewGradeComponentController(db *gorm.DB, v *validator.Validate) *GradeComponentController {
	if v == nil {
		v = validator.New()
	}
	return &GradeComponentController{DB: db, Validator: v}
}

// GET /grade-components?program=&active=
func (ctl *GradeComponentController) List(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.UserContext()).Model(&model.GradeComponentModel{})
	if v := strings.ToUpper(strings.TrimSpace(c.Query("program"))); v != "" {
		q = q.Where("grade_component_program_type = ?", v)
	}
	if v := c.Query("active"); v != "" {
		q = q.Where("grade_component_is_active = ?", v == "true" || v == "1")
	}

	var rows []model.GradeComponentModel
	if err := q.Order("grade_component_program_type, grade_component_name").
		Find(&rows).Error; err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonOK(c, "", rows)
}

// POST /grade-components (created inactive)
func (ctl *GradeComponentController) Create(c *fiber.Ctx) error {
	var p dto.GradeComponentCreateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonDomainError(c, err)
	}
	p.Normalize()

	ent := p.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&ent).Error; err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonCreated(c, "grade component created", ent)
}

// PATCH /grade-components/:id. Editing an active component must leave the
// active set still summing to 100.
func (ctl *GradeComponentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var ent model.GradeComponentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&ent, "grade_component_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "grade component not found")
		}
		return helper.JsonDomainError(c, err)
	}

	var p dto.GradeComponentUpdateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonDomainError(c, err)
	}
	p.ApplyUpdates(&ent)

	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&ent).Error; err != nil {
			return err
		}
		if ent.GradeComponentIsActive {
			var active []model.GradeComponentModel
			if err := tx.
				Where("grade_component_program_type = ? AND grade_component_is_active = TRUE",
					ent.GradeComponentProgramType).
				Find(&active).Error; err != nil {
				return err
			}
			return service.ValidateWeights(active)
		}
		return nil
	})
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonUpdated(c, "grade component updated", ent)
}

// PUT /grade-components/activate-set makes the listed components the
// program's active set, deactivating the rest. Refused unless the new set
// sums to 100.
func (ctl *GradeComponentController) ActivateSet(c *fiber.Ctx) error {
	var p dto.ActivateSetDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonDomainError(c, err)
	}
	program := strings.ToUpper(strings.TrimSpace(p.GradeComponentProgramType))

	var activated []model.GradeComponentModel
	err := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var next []model.GradeComponentModel
		if err := tx.
			Where("grade_component_id IN ? AND grade_component_program_type = ?",
				p.GradeComponentIDs, program).
			Find(&next).Error; err != nil {
			return err
		}
		if len(next) != len(p.GradeComponentIDs) {
			return fiber.NewError(fiber.StatusBadRequest,
				"one or more components are unknown or belong to another program")
		}
		if err := service.ValidateWeights(next); err != nil {
			return err
		}

		if err := tx.Model(&model.GradeComponentModel{}).
			Where("grade_component_program_type = ?", program).
			Update("grade_component_is_active", false).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.GradeComponentModel{}).
			Where("grade_component_id IN ?", p.GradeComponentIDs).
			Update("grade_component_is_active", true).Error; err != nil {
			return err
		}
		activated = next
		return nil
	})
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonUpdated(c, "active component set replaced", activated)
}

// DELETE /grade-components/:id (soft). Active components must be swapped
// out via activate-set first.
func (ctl *GradeComponentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var ent model.GradeComponentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&ent, "grade_component_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "grade component not found")
		}
		return helper.JsonDomainError(c, err)
	}
	if ent.GradeComponentIsActive {
		return helper.JsonError(c, fiber.StatusConflict, "an active grade component cannot be deleted")
	}

	if err := ctl.DB.WithContext(c.UserContext()).Delete(&ent).Error; err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonDeleted(c, "grade component deleted", fiber.Map{"grade_component_id": id})
}
