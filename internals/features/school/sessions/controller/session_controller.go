// file: internals/features/school/sessions/controller/session_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"globalenglish_backend/internals/features/school/reference"
	"globalenglish_backend/internals/features/school/sessions/dto"
	"globalenglish_backend/internals/features/school/sessions/model"
	"globalenglish_backend/internals/features/school/sessions/service"
	helper "globalenglish_backend/internals/helpers"
)

type SessionController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Generator *service.Generator
	States    *service.StateMachine
}

func NewSessionController(db *gorm.DB, v *validator.Validate) *SessionController {
	if v == nil {
		v = validator.New()
	}
	return &SessionController{
		DB:        db,
		Validator: v,
		Generator: &service.Generator{DB: db},
		States:    service.NewStateMachine(db, reference.NewSQLProvider(db)),
	}
}

// GET /sessions?classroom=&period=&status=&week=&from=&to=
func (ctl *SessionController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.SessionModel{})
	if v := strings.TrimSpace(c.Query("classroom")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid classroom filter")
		}
		q = q.Where("session_classroom_id = ?", id)
	}
	if v := strings.TrimSpace(c.Query("period")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid period filter")
		}
		q = q.Where("session_period_id = ?", id)
	}
	if v := strings.ToUpper(strings.TrimSpace(c.Query("status"))); v != "" {
		q = q.Where("session_status = ?", v)
	}
	if v := c.QueryInt("week"); v > 0 {
		q = q.Where("session_week_number = ?", v)
	}
	if v := strings.TrimSpace(c.Query("from")); v != "" {
		d, err := helper.ParseDate(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid 'from' date")
		}
		q = q.Where("session_date >= ?", d)
	}
	if v := strings.TrimSpace(c.Query("to")); v != "" {
		d, err := helper.ParseDate(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid 'to' date")
		}
		q = q.Where("session_date <= ?", d)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonDomainError(c, err)
	}

	var rows []model.SessionModel
	if err := q.Order("session_date, session_created_at").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonList(c, "", rows, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /sessions/:id
func (ctl *SessionController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var ent model.SessionModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&ent, "session_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "session not found")
		}
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonOK(c, "", ent)
}

// POST /sessions/generate
func (ctl *SessionController) Generate(c *fiber.Ctx) error {
	var p dto.GenerateSessionsDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonDomainError(c, err)
	}

	result, err := ctl.Generator.GenerateSessions(c.UserContext(), p.SessionClassroomID, p.SessionPeriodID, nil)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonOK(c, "sessions generated", fiber.Map{
		"created":              result.Created,
		"session_ids":          result.SessionIDs,
		"session_classroom_id": p.SessionClassroomID,
		"session_period_id":    p.SessionPeriodID,
	})
}

// POST /sessions/:id/taught
func (ctl *SessionController) MarkTaught(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var p dto.MarkTaughtDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonDomainError(c, err)
	}

	sess, err := ctl.States.MarkTaught(c.UserContext(), id, p.SessionHoursTaught)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonUpdated(c, "session marked taught", sess)
}

// POST /sessions/:id/not-taught
func (ctl *SessionController) MarkNotTaught(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var p dto.MarkNotTaughtDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonDomainError(c, err)
	}

	sess, err := ctl.States.MarkNotTaught(c.UserContext(), id, p.SessionReasonID)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonUpdated(c, "session marked not taught", sess)
}

// POST /sessions/:id/makeup
func (ctl *SessionController) ScheduleMakeup(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var p dto.ScheduleMakeupDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonDomainError(c, err)
	}
	date, err := helper.ParseDate(p.SessionMakeupDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid makeup date")
	}

	makeup, err := ctl.States.ScheduleMakeup(c.UserContext(), id, date, p.Replace)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonCreated(c, "makeup session scheduled", makeup)
}
