// file: internals/features/school/classrooms/model/classroom_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassroomModel struct {
	ClassroomID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:classroom_id" json:"classroom_id"`

	ClassroomInstitutionID uuid.UUID `gorm:"type:uuid;not null;index;column:classroom_institution_id" json:"classroom_institution_id"`
	ClassroomSiteID        uuid.UUID `gorm:"type:uuid;not null;index;column:classroom_site_id" json:"classroom_site_id"`

	ClassroomName        string `gorm:"type:varchar(120);not null;column:classroom_name" json:"classroom_name"`
	ClassroomGradeLevel  int    `gorm:"not null;column:classroom_grade_level" json:"classroom_grade_level"`
	ClassroomProgramType string `gorm:"type:varchar(32);not null;index;column:classroom_program_type" json:"classroom_program_type"`
	ClassroomCapacity    *int   `gorm:"column:classroom_capacity" json:"classroom_capacity,omitempty"`
	ClassroomIsActive    bool   `gorm:"not null;default:true;column:classroom_is_active" json:"classroom_is_active"`

	ClassroomCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:classroom_created_at" json:"classroom_created_at"`
	ClassroomUpdatedAt *time.Time     `gorm:"type:timestamptz;autoUpdateTime;column:classroom_updated_at" json:"classroom_updated_at,omitempty"`
	ClassroomDeletedAt gorm.DeletedAt `gorm:"column:classroom_deleted_at;index" json:"classroom_deleted_at,omitempty"`
}

func (ClassroomModel) TableName() string { return "classrooms" }

func (m *ClassroomModel) BeforeSave(tx *gorm.DB) error {
	m.ClassroomName = strings.TrimSpace(m.ClassroomName)
	m.ClassroomProgramType = strings.ToUpper(strings.TrimSpace(m.ClassroomProgramType))
	return nil
}
