// file: internals/features/school/academics/model/program_week_model.go
package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProgramWeekModel is an ordinal reporting bucket inside a period. Every
// session date must fall inside exactly one week's range.
type ProgramWeekModel struct {
	ProgramWeekID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:program_week_id" json:"program_week_id"`

	ProgramWeekPeriodID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_program_week_period_number;column:program_week_period_id" json:"program_week_period_id"`
	ProgramWeekNumber    int       `gorm:"not null;uniqueIndex:uq_program_week_period_number;column:program_week_number" json:"program_week_number"`
	ProgramWeekStartDate time.Time `gorm:"type:date;not null;column:program_week_start_date" json:"program_week_start_date"`
	ProgramWeekEndDate   time.Time `gorm:"type:date;not null;column:program_week_end_date" json:"program_week_end_date"`

	ProgramWeekCreatedAt time.Time  `gorm:"type:timestamptz;not null;autoCreateTime;column:program_week_created_at" json:"program_week_created_at"`
	ProgramWeekUpdatedAt *time.Time `gorm:"type:timestamptz;autoUpdateTime;column:program_week_updated_at" json:"program_week_updated_at,omitempty"`
}

func (ProgramWeekModel) TableName() string { return "program_weeks" }

func (m *ProgramWeekModel) BeforeSave(tx *gorm.DB) error {
	if m.ProgramWeekNumber < 1 {
		return errors.New("program_week_number must be >= 1")
	}
	if m.ProgramWeekEndDate.Before(m.ProgramWeekStartDate) {
		return errors.New("program_week_end_date must be >= program_week_start_date")
	}
	return nil
}
