// file: internals/features/school/classrooms/model/weekly_slot_model.go
package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WeeklySlotModel is a recurring meeting time. Slot rows are immutable once
// referenced by generated sessions; edits go through delete plus recreate,
// and sessions keep their own snapshot of the slot they were built from.
type WeeklySlotModel struct {
	WeeklySlotID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:weekly_slot_id" json:"weekly_slot_id"`

	WeeklySlotClassroomID uuid.UUID `gorm:"type:uuid;not null;index;column:weekly_slot_classroom_id" json:"weekly_slot_classroom_id"`

	// ISO weekday, 1 = Monday .. 7 = Sunday
	WeeklySlotDayOfWeek int    `gorm:"not null;column:weekly_slot_day_of_week" json:"weekly_slot_day_of_week"`
	WeeklySlotStartTime string `gorm:"type:varchar(5);not null;column:weekly_slot_start_time" json:"weekly_slot_start_time"`
	WeeklySlotEndTime   string `gorm:"type:varchar(5);not null;column:weekly_slot_end_time" json:"weekly_slot_end_time"`

	WeeklySlotCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:weekly_slot_created_at" json:"weekly_slot_created_at"`
	WeeklySlotDeletedAt gorm.DeletedAt `gorm:"column:weekly_slot_deleted_at;index" json:"weekly_slot_deleted_at,omitempty"`
}

func (WeeklySlotModel) TableName() string { return "weekly_slots" }

func (m *WeeklySlotModel) BeforeSave(tx *gorm.DB) error {
	if m.WeeklySlotDayOfWeek < 1 || m.WeeklySlotDayOfWeek > 7 {
		return errors.New("weekly_slot_day_of_week must be 1..7")
	}
	if !validClock(m.WeeklySlotStartTime) || !validClock(m.WeeklySlotEndTime) {
		return errors.New("slot times must use HH:MM")
	}
	if m.WeeklySlotEndTime <= m.WeeklySlotStartTime {
		return errors.New("weekly_slot_end_time must be after weekly_slot_start_time")
	}
	return nil
}

// validClock accepts zero-padded 24h HH:MM. Lexical comparison of such
// strings matches chronological order.
func validClock(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	_, err := time.Parse("15:04", s)
	return err == nil
}
