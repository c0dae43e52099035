// file: internals/features/school/classrooms/dto/classroom_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	"globalenglish_backend/internals/features/school/classrooms/model"
)

/* =========================================================
   CLASSROOM
========================================================= */

type ClassroomCreateDTO struct {
	ClassroomInstitutionID uuid.UUID `json:"classroom_institution_id" validate:"required"`
	ClassroomSiteID        uuid.UUID `json:"classroom_site_id" validate:"required"`
	ClassroomName          string    `json:"classroom_name" validate:"required,min=2,max=120"`
	ClassroomGradeLevel    int       `json:"classroom_grade_level" validate:"required,min=1,max=12"`
	ClassroomProgramType   string    `json:"classroom_program_type" validate:"required,oneof=INSIDECLASSROOM OUTSIDECLASSROOM"`
	ClassroomCapacity      *int      `json:"classroom_capacity" validate:"omitempty,min=1,max=500"`
}

func (p *ClassroomCreateDTO) Normalize() {
	p.ClassroomName = strings.TrimSpace(p.ClassroomName)
	p.ClassroomProgramType = strings.ToUpper(strings.TrimSpace(p.ClassroomProgramType))
}

func (p *ClassroomCreateDTO) ToModel() model.ClassroomModel {
	return model.ClassroomModel{
		ClassroomInstitutionID: p.ClassroomInstitutionID,
		ClassroomSiteID:        p.ClassroomSiteID,
		ClassroomName:          p.ClassroomName,
		ClassroomGradeLevel:    p.ClassroomGradeLevel,
		ClassroomProgramType:   p.ClassroomProgramType,
		ClassroomCapacity:      p.ClassroomCapacity,
		ClassroomIsActive:      true,
	}
}

type ClassroomUpdateDTO struct {
	ClassroomName       *string `json:"classroom_name" validate:"omitempty,min=2,max=120"`
	ClassroomGradeLevel *int    `json:"classroom_grade_level" validate:"omitempty,min=1,max=12"`
	ClassroomCapacity   *int    `json:"classroom_capacity" validate:"omitempty,min=1,max=500"`
	ClassroomIsActive   *bool   `json:"classroom_is_active"`
}

func (p *ClassroomUpdateDTO) ApplyUpdates(ent *model.ClassroomModel) {
	if p.ClassroomName != nil {
		ent.ClassroomName = strings.TrimSpace(*p.ClassroomName)
	}
	if p.ClassroomGradeLevel != nil {
		ent.ClassroomGradeLevel = *p.ClassroomGradeLevel
	}
	if p.ClassroomCapacity != nil {
		ent.ClassroomCapacity = p.ClassroomCapacity
	}
	if p.ClassroomIsActive != nil {
		ent.ClassroomIsActive = *p.ClassroomIsActive
	}
}

/* =========================================================
   WEEKLY SLOT
========================================================= */

type WeeklySlotCreateDTO struct {
	WeeklySlotDayOfWeek int    `json:"weekly_slot_day_of_week" validate:"required,min=1,max=7"`
	WeeklySlotStartTime string `json:"weekly_slot_start_time" validate:"required,datetime=15:04"`
	WeeklySlotEndTime   string `json:"weekly_slot_end_time" validate:"required,datetime=15:04"`
}

func (p *WeeklySlotCreateDTO) ToModel(classroomID uuid.UUID) model.WeeklySlotModel {
	return model.WeeklySlotModel{
		WeeklySlotClassroomID: classroomID,
		WeeklySlotDayOfWeek:   p.WeeklySlotDayOfWeek,
		WeeklySlotStartTime:   p.WeeklySlotStartTime,
		WeeklySlotEndTime:     p.WeeklySlotEndTime,
	}
}
