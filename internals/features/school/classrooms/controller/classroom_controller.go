// file: internals/features/school/classrooms/controller/classroom_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"globalenglish_backend/internals/features/school/classrooms/dto"
	"globalenglish_backend/internals/features/school/classrooms/model"
	helper "globalenglish_backend/internals/helpers"
)

type ClassroomController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewClassroomController(db *gorm.DB, v *validator.Validate) *ClassroomController {
	if v == nil {
		v = validator.New()
	}
	return &ClassroomController{DB: db, Validator: v}
}

// GET /classrooms?institution=&site=&program=&active=
func (ctl *ClassroomController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.ClassroomModel{})
	if v := strings.TrimSpace(c.Query("institution")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid institution filter")
		}
		q = q.Where("classroom_institution_id = ?", id)
	}
	if v := strings.TrimSpace(c.Query("site")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid site filter")
		}
		q = q.Where("classroom_site_id = ?", id)
	}
	if v := strings.ToUpper(strings.TrimSpace(c.Query("program"))); v != "" {
		q = q.Where("classroom_program_type = ?", v)
	}
	if v := c.Query("active"); v != "" {
		q = q.Where("classroom_is_active = ?", v == "true" || v == "1")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonDomainError(c, err)
	}

	var rows []model.ClassroomModel
	if err := q.Order("classroom_name").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonList(c, "", rows, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /classrooms/:id
func (ctl *ClassroomController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var ent model.ClassroomModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&ent, "classroom_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "classroom not found")
		}
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonOK(c, "", ent)
}

// POST /classrooms
func (ctl *ClassroomController) Create(c *fiber.Ctx) error {
	var p dto.ClassroomCreateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonDomainError(c, err)
	}
	p.Normalize()

	ent := p.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&ent).Error; err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonCreated(c, "classroom created", ent)
}

// PATCH /classrooms/:id
func (ctl *ClassroomController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var ent model.ClassroomModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&ent, "classroom_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "classroom not found")
		}
		return helper.JsonDomainError(c, err)
	}

	var p dto.ClassroomUpdateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonDomainError(c, err)
	}
	p.ApplyUpdates(&ent)

	if err := ctl.DB.WithContext(c.UserContext()).Save(&ent).Error; err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonUpdated(c, "classroom updated", ent)
}

// DELETE /classrooms/:id (soft only; generated sessions keep their rows)
func (ctl *ClassroomController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	res := ctl.DB.WithContext(c.UserContext()).
		Delete(&model.ClassroomModel{}, "classroom_id = ?", id)
	if res.Error != nil {
		return helper.JsonDomainError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "classroom not found")
	}
	return helper.JsonDeleted(c, "classroom deleted", fiber.Map{"classroom_id": id})
}
