// file: internals/features/school/academics/model/academic_period_model.go
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AcademicPeriodModel bounds one generation run of a classroom's sessions.
// Periods of the same year must not overlap; the controller enforces it.
type AcademicPeriodModel struct {
	AcademicPeriodID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:academic_period_id" json:"academic_period_id"`

	AcademicPeriodLabel     string    `gorm:"type:varchar(80);not null;column:academic_period_label" json:"academic_period_label"`
	AcademicPeriodYear      int       `gorm:"not null;column:academic_period_year" json:"academic_period_year"`
	AcademicPeriodStartDate time.Time `gorm:"type:date;not null;column:academic_period_start_date" json:"academic_period_start_date"`
	AcademicPeriodEndDate   time.Time `gorm:"type:date;not null;column:academic_period_end_date" json:"academic_period_end_date"`

	AcademicPeriodCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:academic_period_created_at" json:"academic_period_created_at"`
	AcademicPeriodUpdatedAt *time.Time     `gorm:"type:timestamptz;autoUpdateTime;column:academic_period_updated_at" json:"academic_period_updated_at,omitempty"`
	AcademicPeriodDeletedAt gorm.DeletedAt `gorm:"column:academic_period_deleted_at;index" json:"academic_period_deleted_at,omitempty"`
}

func (AcademicPeriodModel) TableName() string { return "academic_periods" }

func (m *AcademicPeriodModel) BeforeSave(tx *gorm.DB) error {
	if m.AcademicPeriodEndDate.Before(m.AcademicPeriodStartDate) {
		return errors.New("academic_period_end_date must be >= academic_period_start_date")
	}
	m.AcademicPeriodLabel = strings.TrimSpace(m.AcademicPeriodLabel)
	return nil
}
