// file: internals/features/school/sessions/model/session_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	SessionStatusScheduled = "SCHEDULED"
	SessionStatusTaught    = "TAUGHT"
	SessionStatusNotTaught = "NOT_TAUGHT"
)

// SessionModel is one expected class meeting. Rows are generated from the
// classroom's weekly slots and then driven through the
// SCHEDULED -> TAUGHT / NOT_TAUGHT state machine.
//
// SessionSlotSnapshot freezes the slot's day and times at generation so
// later slot edits never rewrite history. SessionRosterSnapshot freezes
// the enrolled students at the moment the session is marked taught.
type SessionModel struct {
	SessionID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:session_id" json:"session_id"`

	SessionClassroomID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_session_classroom_date_slot;column:session_classroom_id" json:"session_classroom_id"`
	SessionPeriodID    uuid.UUID `gorm:"type:uuid;not null;index;column:session_period_id" json:"session_period_id"`

	SessionDate       time.Time  `gorm:"type:date;not null;uniqueIndex:uq_session_classroom_date_slot;column:session_date" json:"session_date"`
	SessionSlotID     *uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_session_classroom_date_slot;column:session_slot_id" json:"session_slot_id,omitempty"`
	SessionWeekNumber int        `gorm:"not null;index;column:session_week_number" json:"session_week_number"`

	SessionStatus string `gorm:"type:varchar(16);not null;default:'SCHEDULED';index;column:session_status" json:"session_status"`

	// set when TAUGHT
	SessionHoursTaught    *float64       `gorm:"column:session_hours_taught" json:"session_hours_taught,omitempty"`
	SessionRosterSnapshot datatypes.JSON `gorm:"type:jsonb;column:session_roster_snapshot" json:"session_roster_snapshot,omitempty"`

	// set when NOT_TAUGHT
	SessionReasonID *uuid.UUID `gorm:"type:uuid;column:session_reason_id" json:"session_reason_id,omitempty"`

	// one-way link from a missed session to the replacement scheduled for it
	SessionMakeupSessionID *uuid.UUID `gorm:"type:uuid;column:session_makeup_session_id" json:"session_makeup_session_id,omitempty"`
	SessionIsMakeup        bool       `gorm:"not null;default:false;column:session_is_makeup" json:"session_is_makeup"`

	SessionSlotSnapshot datatypes.JSONMap `gorm:"type:jsonb;column:session_slot_snapshot" json:"session_slot_snapshot,omitempty"`

	SessionCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:session_created_at" json:"session_created_at"`
	SessionUpdatedAt *time.Time     `gorm:"type:timestamptz;autoUpdateTime;column:session_updated_at" json:"session_updated_at,omitempty"`
	SessionDeletedAt gorm.DeletedAt `gorm:"column:session_deleted_at;index" json:"session_deleted_at,omitempty"`
}

func (SessionModel) TableName() string { return "sessions" }

func (m *SessionModel) IsTerminal() bool {
	return m.SessionStatus == SessionStatusTaught || m.SessionStatus == SessionStatusNotTaught
}
