// file: internals/features/school/grades/controller/grade_entry_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"globalenglish_backend/internals/features/school/grades/dto"
	"globalenglish_backend/internals/features/school/grades/model"
	"globalenglish_backend/internals/features/school/grades/service"
	"globalenglish_backend/internals/features/school/reference"
	helper "globalenglish_backend/internals/helpers"
)

type GradeEntryController struct {
	DB         *gorm.DB
	Validator  *validator.Validate
	Aggregator *service.Aggregator
}

func NewGradeEntryController(db *gorm.DB, v *validator.Validate) *GradeEntryController {
	if v == nil {
		v = validator.New()
	}
	return &GradeEntryController{
		DB:         db,
		Validator:  v,
		Aggregator: service.NewAggregator(db, reference.NewSQLProvider(db)),
	}
}

// GET /grade-entries?student=&subject=&period=
func (ctl *GradeEntryController) List(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.UserContext()).Model(&model.GradeEntryModel{})
	for param, column := range map[string]string{
		"student": "grade_entry_student_id",
		"subject": "grade_entry_subject_id",
		"period":  "grade_entry_period_id",
	} {
		if v := strings.TrimSpace(c.Query(param)); v != "" {
			id, err := uuid.Parse(v)
			if err != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "invalid "+param+" filter")
			}
			q = q.Where(column+" = ?", id)
		}
	}

	var rows []model.GradeEntryModel
	if err := q.Order("grade_entry_created_at").Find(&rows).Error; err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonOK(c, "", rows)
}

// PUT /grade-entries upserts on the (student, subject, period, component)
// key. The referenced component must exist; scores for inactive components
// are kept and simply ignored by the aggregator.
func (ctl *GradeEntryController) Upsert(c *fiber.Ctx) error {
	var p dto.GradeEntryUpsertDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonDomainError(c, err)
	}

	var comp model.GradeComponentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&comp, "grade_component_id = ?", p.GradeEntryComponentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusBadRequest, "grade component not found")
		}
		return helper.JsonDomainError(c, err)
	}

	ent := p.ToModel()
	err := ctl.DB.WithContext(c.UserContext()).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "grade_entry_student_id"},
				{Name: "grade_entry_subject_id"},
				{Name: "grade_entry_period_id"},
				{Name: "grade_entry_component_id"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"grade_entry_score", "grade_entry_updated_at"}),
		}).
		Create(&ent).Error
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonUpdated(c, "grade entry saved", ent)
}

// GET /final-grade?student=&subject=&period=
func (ctl *GradeEntryController) FinalGrade(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(strings.TrimSpace(c.Query("student")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid student")
	}
	subjectID, err := uuid.Parse(strings.TrimSpace(c.Query("subject")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid subject")
	}
	periodID, err := uuid.Parse(strings.TrimSpace(c.Query("period")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid period")
	}

	res, err := ctl.Aggregator.FinalGrade(c.UserContext(), studentID, subjectID, periodID)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonOK(c, "", res)
}
