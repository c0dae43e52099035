// file: internals/features/school/calendar/model/holiday_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HolidayModel is a single non-school calendar date. One row per date.
type HolidayModel struct {
	HolidayID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:holiday_id" json:"holiday_id"`

	HolidayDate        time.Time `gorm:"type:date;not null;uniqueIndex;column:holiday_date" json:"holiday_date"`
	HolidayDescription string    `gorm:"type:text;not null;column:holiday_description" json:"holiday_description"`

	HolidayCreatedAt time.Time  `gorm:"type:timestamptz;not null;autoCreateTime;column:holiday_created_at" json:"holiday_created_at"`
	HolidayUpdatedAt *time.Time `gorm:"type:timestamptz;autoUpdateTime;column:holiday_updated_at" json:"holiday_updated_at,omitempty"`
}

func (HolidayModel) TableName() string { return "holidays" }

func (m *HolidayModel) BeforeSave(tx *gorm.DB) error {
	m.HolidayDescription = strings.TrimSpace(m.HolidayDescription)
	m.HolidayDate = time.Date(
		m.HolidayDate.Year(), m.HolidayDate.Month(), m.HolidayDate.Day(),
		0, 0, 0, 0, time.UTC,
	)
	return nil
}
