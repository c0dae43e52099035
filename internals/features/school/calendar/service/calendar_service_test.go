// file: internals/features/school/calendar/service/calendar_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"globalenglish_backend/internals/features/school/calendar/model"
	"globalenglish_backend/internals/helpers/derr"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolverClassify(t *testing.T) {
	r := NewResolver([]model.HolidayModel{
		{HolidayID: uuid.New(), HolidayDate: day(2026, time.July, 20), HolidayDescription: "Independence Day"},
	})

	kind, err := r.Classify(day(2026, time.July, 20))
	require.NoError(t, err)
	assert.Equal(t, DayHoliday, kind)

	kind, err = r.Classify(day(2026, time.July, 21))
	require.NoError(t, err)
	assert.Equal(t, DaySchoolDay, kind)

	assert.True(t, r.IsHoliday(day(2026, time.July, 20)))
	assert.False(t, r.IsHoliday(day(2026, time.July, 19)))
}

func TestResolverClassifyIgnoresTimeOfDay(t *testing.T) {
	r := NewResolver([]model.HolidayModel{
		{HolidayID: uuid.New(), HolidayDate: day(2026, time.July, 20)},
	})
	noon := time.Date(2026, time.July, 20, 12, 30, 0, 0, time.UTC)
	assert.True(t, r.IsHoliday(noon))
}

func TestResolverClassifyOutOfRange(t *testing.T) {
	r := NewResolver(nil)

	_, err := r.Classify(day(1999, time.December, 31))
	require.Error(t, err)
	assert.Equal(t, derr.KindValidation, derr.KindOf(err))

	_, err = r.Classify(day(2101, time.January, 1))
	require.Error(t, err)
	assert.Equal(t, derr.KindValidation, derr.KindOf(err))
}
