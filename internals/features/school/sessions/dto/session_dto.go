// file: internals/features/school/sessions/dto/session_dto.go
package dto

import (
	"github.com/google/uuid"
)

type GenerateSessionsDTO struct {
	SessionClassroomID uuid.UUID `json:"session_classroom_id" validate:"required"`
	SessionPeriodID    uuid.UUID `json:"session_period_id" validate:"required"`
}

type MarkTaughtDTO struct {
	SessionHoursTaught float64 `json:"session_hours_taught" validate:"required,gt=0,lte=24"`
}

type MarkNotTaughtDTO struct {
	SessionReasonID uuid.UUID `json:"session_reason_id" validate:"required"`
}

type ScheduleMakeupDTO struct {
	SessionMakeupDate string `json:"session_makeup_date" validate:"required,datetime=2006-01-02"`
	Replace           bool   `json:"replace"`
}
