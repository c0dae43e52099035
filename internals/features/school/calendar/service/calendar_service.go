// file: internals/features/school/calendar/service/calendar_service.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"globalenglish_backend/internals/constants"
	"globalenglish_backend/internals/features/school/calendar/model"
	"globalenglish_backend/internals/helpers/derr"
)

type DayKind string

const (
	DaySchoolDay DayKind = "SCHOOL_DAY"
	DayHoliday   DayKind = "HOLIDAY"
)

// Operational range. Dates outside it are input errors, never clamped.
const (
	minYear = 2000
	maxYear = 2100
)

// Resolver classifies dates against a holiday catalog loaded for one
// operation. It is never cached across requests.
type Resolver struct {
	byDate map[string]uuid.UUID
}

func NewResolver(holidays []model.HolidayModel) *Resolver {
	byDate := make(map[string]uuid.UUID, len(holidays))
	for _, h := range holidays {
		byDate[dayKey(h.HolidayDate)] = h.HolidayID
	}
	return &Resolver{byDate: byDate}
}

func dayKey(t time.Time) string { return t.Format("2006-01-02") }

func (r *Resolver) IsHoliday(d time.Time) bool {
	_, ok := r.byDate[dayKey(d)]
	return ok
}

func (r *Resolver) Classify(d time.Time) (DayKind, error) {
	if d.Year() < minYear || d.Year() > maxYear {
		return "", derr.Newf(derr.KindValidation,
			"date %s is outside the operational range %d-%d", dayKey(d), minYear, maxYear)
	}
	if r.IsHoliday(d) {
		return DayHoliday, nil
	}
	return DaySchoolDay, nil
}

// LoadResolver indexes the holidays falling inside [from, to].
func LoadResolver(ctx context.Context, db *gorm.DB, from, to time.Time) (*Resolver, error) {
	var holidays []model.HolidayModel
	if err := db.WithContext(ctx).
		Where("holiday_date BETWEEN ? AND ?", from, to).
		Find(&holidays).Error; err != nil {
		return nil, derr.Storage(err)
	}
	return NewResolver(holidays), nil
}

// EnsureHolidayReason returns the built-in holiday absence reason,
// provisioning it on first use.
func EnsureHolidayReason(ctx context.Context, db *gorm.DB) (uuid.UUID, error) {
	var reason model.AbsenceReasonModel
	desc := "Built-in reason for sessions falling on a holiday"
	err := db.WithContext(ctx).
		Where("absence_reason_name = ?", constants.HolidayReasonName).
		Attrs(model.AbsenceReasonModel{
			AbsenceReasonName:        constants.HolidayReasonName,
			AbsenceReasonDescription: &desc,
			AbsenceReasonIsActive:    true,
		}).
		FirstOrCreate(&reason).Error
	if err != nil {
		return uuid.Nil, derr.Storage(err)
	}
	return reason.AbsenceReasonID, nil
}
