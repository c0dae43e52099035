// file: internals/features/school/reports/dto/report_filter_dto.go
package dto

import (
	"github.com/google/uuid"
)

// ReportFilterDTO is parsed straight from the query string. Zero values
// mean "no filter".
type ReportFilterDTO struct {
	InstitutionID uuid.UUID `query:"institution"`
	SiteID        uuid.UUID `query:"site"`
	ClassroomID   uuid.UUID `query:"classroom"`
	ProgramType   string    `query:"program"`
	StudentID     uuid.UUID `query:"student"`
	PeriodID      uuid.UUID `query:"period"`
	WeekFrom      int       `query:"week_from" validate:"omitempty,min=1"`
	WeekTo        int       `query:"week_to" validate:"omitempty,min=1"`
}
