// file: internals/features/school/academics/service/week_resolver.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"globalenglish_backend/internals/features/school/academics/model"
	"globalenglish_backend/internals/helpers/derr"
)

// ResolveWeekNumber maps a date onto the period's reporting weeks. Ranges are
// inclusive on both ends; a date no week covers is an error, never week 0.
func ResolveWeekNumber(weeks []model.ProgramWeekModel, date time.Time) (int, error) {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	for i := range weeks {
		w := &weeks[i]
		if d.Before(w.ProgramWeekStartDate) || d.After(w.ProgramWeekEndDate) {
			continue
		}
		return w.ProgramWeekNumber, nil
	}
	return 0, derr.Newf(derr.KindUnmappedWeek, "date %s is not covered by any program week", d.Format("2006-01-02"))
}

// LoadWeeks fetches a period's weeks ordered by week number.
func LoadWeeks(ctx context.Context, db *gorm.DB, periodID uuid.UUID) ([]model.ProgramWeekModel, error) {
	var weeks []model.ProgramWeekModel
	if err := db.WithContext(ctx).
		Where("program_week_period_id = ?", periodID).
		Order("program_week_number").
		Find(&weeks).Error; err != nil {
		return nil, derr.Storage(err)
	}
	return weeks, nil
}
