// file: internals/features/school/attendance/model/attendance_record_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	AttendanceStatusPresent   = "PRESENT"
	AttendanceStatusAbsent    = "ABSENT"
	AttendanceStatusJustified = "JUSTIFIED"
)

// AttendanceRecordModel exists only for sessions that were actually taught.
// One row per (session, student); resubmission replaces the whole set.
type AttendanceRecordModel struct {
	AttendanceRecordID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_record_id" json:"attendance_record_id"`

	AttendanceRecordSessionID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_session_student;column:attendance_record_session_id" json:"attendance_record_session_id"`
	AttendanceRecordStudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_session_student;index;column:attendance_record_student_id" json:"attendance_record_student_id"`

	AttendanceRecordStatus   string     `gorm:"type:varchar(16);not null;column:attendance_record_status" json:"attendance_record_status"`
	AttendanceRecordReasonID *uuid.UUID `gorm:"type:uuid;column:attendance_record_reason_id" json:"attendance_record_reason_id,omitempty"`

	AttendanceRecordCreatedAt time.Time  `gorm:"type:timestamptz;not null;autoCreateTime;column:attendance_record_created_at" json:"attendance_record_created_at"`
	AttendanceRecordUpdatedAt *time.Time `gorm:"type:timestamptz;autoUpdateTime;column:attendance_record_updated_at" json:"attendance_record_updated_at,omitempty"`
}

func (AttendanceRecordModel) TableName() string { return "attendance_records" }

func IsValidAttendanceStatus(s string) bool {
	switch s {
	case AttendanceStatusPresent, AttendanceStatusAbsent, AttendanceStatusJustified:
		return true
	}
	return false
}
