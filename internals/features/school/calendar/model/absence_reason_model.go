// file: internals/features/school/calendar/model/absence_reason_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AbsenceReasonModel is a catalog entry explaining a not-taught session or a
// student's absence. Referential only: rows are soft-deleted and a reason in
// use is never removed.
type AbsenceReasonModel struct {
	AbsenceReasonID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:absence_reason_id" json:"absence_reason_id"`

	AbsenceReasonName        string  `gorm:"type:varchar(80);not null;uniqueIndex;column:absence_reason_name" json:"absence_reason_name"`
	AbsenceReasonDescription *string `gorm:"type:text;column:absence_reason_description" json:"absence_reason_description,omitempty"`
	AbsenceReasonIsActive    bool    `gorm:"not null;default:true;column:absence_reason_is_active" json:"absence_reason_is_active"`

	AbsenceReasonCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:absence_reason_created_at" json:"absence_reason_created_at"`
	AbsenceReasonUpdatedAt *time.Time     `gorm:"type:timestamptz;autoUpdateTime;column:absence_reason_updated_at" json:"absence_reason_updated_at,omitempty"`
	AbsenceReasonDeletedAt gorm.DeletedAt `gorm:"column:absence_reason_deleted_at;index" json:"absence_reason_deleted_at,omitempty"`
}

func (AbsenceReasonModel) TableName() string { return "absence_reasons" }

func (m *AbsenceReasonModel) BeforeSave(tx *gorm.DB) error {
	m.AbsenceReasonName = strings.ToUpper(strings.TrimSpace(m.AbsenceReasonName))
	if m.AbsenceReasonDescription != nil {
		d := strings.TrimSpace(*m.AbsenceReasonDescription)
		if d == "" {
			m.AbsenceReasonDescription = nil
		} else {
			m.AbsenceReasonDescription = &d
		}
	}
	return nil
}
