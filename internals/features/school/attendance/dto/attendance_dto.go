// file: internals/features/school/attendance/dto/attendance_dto.go
package dto

import (
	"github.com/google/uuid"

	"globalenglish_backend/internals/features/school/attendance/service"
)

type AttendanceStatusDTO struct {
	AttendanceRecordStudentID uuid.UUID  `json:"attendance_record_student_id" validate:"required"`
	AttendanceRecordStatus    string     `json:"attendance_record_status" validate:"required,oneof=PRESENT ABSENT JUSTIFIED"`
	AttendanceRecordReasonID  *uuid.UUID `json:"attendance_record_reason_id"`
}

type RecordAttendanceDTO struct {
	Statuses []AttendanceStatusDTO `json:"statuses" validate:"dive"`
}

func (p *RecordAttendanceDTO) ToInputs() []service.StatusInput {
	out := make([]service.StatusInput, 0, len(p.Statuses))
	for _, s := range p.Statuses {
		out = append(out, service.StatusInput{
			StudentID: s.AttendanceRecordStudentID,
			Status:    s.AttendanceRecordStatus,
			ReasonID:  s.AttendanceRecordReasonID,
		})
	}
	return out
}
