// file: internals/features/school/grades/dto/grades_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	"globalenglish_backend/internals/features/school/grades/model"
)

/* =========================================================
   GRADE COMPONENT
========================================================= */

type GradeComponentCreateDTO struct {
	GradeComponentProgramType string `json:"grade_component_program_type" validate:"required,oneof=INSIDECLASSROOM OUTSIDECLASSROOM"`
	GradeComponentName        string `json:"grade_component_name" validate:"required,min=2,max=80"`
	GradeComponentWeight      int    `json:"grade_component_weight" validate:"required,min=1,max=100"`
}

func (p *GradeComponentCreateDTO) Normalize() {
	p.GradeComponentName = strings.TrimSpace(p.GradeComponentName)
	p.GradeComponentProgramType = strings.ToUpper(strings.TrimSpace(p.GradeComponentProgramType))
}

// New components start inactive so sets can be assembled piecewise and
// swapped in atomically once they sum to 100.
func (p *GradeComponentCreateDTO) ToModel() model.GradeComponentModel {
	return model.GradeComponentModel{
		GradeComponentProgramType: p.GradeComponentProgramType,
		GradeComponentName:        p.GradeComponentName,
		GradeComponentWeight:      p.GradeComponentWeight,
		GradeComponentIsActive:    false,
	}
}

type GradeComponentUpdateDTO struct {
	GradeComponentName   *string `json:"grade_component_name" validate:"omitempty,min=2,max=80"`
	GradeComponentWeight *int    `json:"grade_component_weight" validate:"omitempty,min=1,max=100"`
}

func (p *GradeComponentUpdateDTO) ApplyUpdates(ent *model.GradeComponentModel) {
	if p.GradeComponentName != nil {
		ent.GradeComponentName = strings.TrimSpace(*p.GradeComponentName)
	}
	if p.GradeComponentWeight != nil {
		ent.GradeComponentWeight = *p.GradeComponentWeight
	}
}

// ActivateSetDTO swaps a program's whole active component set in one call.
type ActivateSetDTO struct {
	GradeComponentProgramType string      `json:"grade_component_program_type" validate:"required,oneof=INSIDECLASSROOM OUTSIDECLASSROOM"`
	GradeComponentIDs         []uuid.UUID `json:"grade_component_ids" validate:"required,min=1"`
}

/* =========================================================
   GRADE ENTRY
========================================================= */

type GradeEntryUpsertDTO struct {
	GradeEntryStudentID   uuid.UUID `json:"grade_entry_student_id" validate:"required"`
	GradeEntrySubjectID   uuid.UUID `json:"grade_entry_subject_id" validate:"required"`
	GradeEntryPeriodID    uuid.UUID `json:"grade_entry_period_id" validate:"required"`
	GradeEntryComponentID uuid.UUID `json:"grade_entry_component_id" validate:"required"`
	GradeEntryScore       float64   `json:"grade_entry_score" validate:"min=0,max=10"`
}

func (p *GradeEntryUpsertDTO) ToModel() model.GradeEntryModel {
	return model.GradeEntryModel{
		GradeEntryStudentID:   p.GradeEntryStudentID,
		GradeEntrySubjectID:   p.GradeEntrySubjectID,
		GradeEntryPeriodID:    p.GradeEntryPeriodID,
		GradeEntryComponentID: p.GradeEntryComponentID,
		GradeEntryScore:       p.GradeEntryScore,
	}
}
