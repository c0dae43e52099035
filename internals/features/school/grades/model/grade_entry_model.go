// file: internals/features/school/grades/model/grade_entry_model.go
package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GradeEntryModel is one recorded score. The composite key guarantees at
// most one score per (student, subject, period, component).
type GradeEntryModel struct {
	GradeEntryID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:grade_entry_id" json:"grade_entry_id"`

	GradeEntryStudentID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_grade_entry_key;index;column:grade_entry_student_id" json:"grade_entry_student_id"`
	GradeEntrySubjectID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_grade_entry_key;column:grade_entry_subject_id" json:"grade_entry_subject_id"`
	GradeEntryPeriodID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_grade_entry_key;column:grade_entry_period_id" json:"grade_entry_period_id"`
	GradeEntryComponentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_grade_entry_key;column:grade_entry_component_id" json:"grade_entry_component_id"`

	GradeEntryScore float64 `gorm:"not null;column:grade_entry_score" json:"grade_entry_score"`

	GradeEntryCreatedAt time.Time  `gorm:"type:timestamptz;not null;autoCreateTime;column:grade_entry_created_at" json:"grade_entry_created_at"`
	GradeEntryUpdatedAt *time.Time `gorm:"type:timestamptz;autoUpdateTime;column:grade_entry_updated_at" json:"grade_entry_updated_at,omitempty"`
}

func (GradeEntryModel) TableName() string { return "grade_entries" }

func (m *GradeEntryModel) BeforeSave(tx *gorm.DB) error {
	if m.GradeEntryScore < 0 || m.GradeEntryScore > 10 {
		return errors.New("grade_entry_score must be 0..10")
	}
	return nil
}
