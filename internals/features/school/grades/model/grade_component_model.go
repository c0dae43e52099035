// file: internals/features/school/grades/model/grade_component_model.go
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GradeComponentModel is one weighted piece of a program's final grade.
// Active components of a program must sum to 100; the aggregator refuses
// to compute against any other total.
type GradeComponentModel struct {
	GradeComponentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:grade_component_id" json:"grade_component_id"`

	GradeComponentProgramType string `gorm:"type:varchar(32);not null;index;column:grade_component_program_type" json:"grade_component_program_type"`
	GradeComponentName        string `gorm:"type:varchar(80);not null;column:grade_component_name" json:"grade_component_name"`
	GradeComponentWeight      int    `gorm:"not null;column:grade_component_weight" json:"grade_component_weight"`
	GradeComponentIsActive    bool   `gorm:"not null;default:false;index;column:grade_component_is_active" json:"grade_component_is_active"`

	GradeComponentCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:grade_component_created_at" json:"grade_component_created_at"`
	GradeComponentUpdatedAt *time.Time     `gorm:"type:timestamptz;autoUpdateTime;column:grade_component_updated_at" json:"grade_component_updated_at,omitempty"`
	GradeComponentDeletedAt gorm.DeletedAt `gorm:"column:grade_component_deleted_at;index" json:"grade_component_deleted_at,omitempty"`
}

func (GradeComponentModel) TableName() string { return "grade_components" }

func (m *GradeComponentModel) BeforeSave(tx *gorm.DB) error {
	m.GradeComponentName = strings.TrimSpace(m.GradeComponentName)
	m.GradeComponentProgramType = strings.ToUpper(strings.TrimSpace(m.GradeComponentProgramType))
	if m.GradeComponentWeight < 1 || m.GradeComponentWeight > 100 {
		return errors.New("grade_component_weight must be 1..100")
	}
	return nil
}
