// file: internals/features/school/academics/service/week_resolver_test.go
package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"globalenglish_backend/internals/features/school/academics/model"
	"globalenglish_backend/internals/helpers/derr"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleWeeks() []model.ProgramWeekModel {
	return []model.ProgramWeekModel{
		{ProgramWeekNumber: 1, ProgramWeekStartDate: day(2026, time.February, 2), ProgramWeekEndDate: day(2026, time.February, 8)},
		{ProgramWeekNumber: 2, ProgramWeekStartDate: day(2026, time.February, 9), ProgramWeekEndDate: day(2026, time.February, 15)},
		{ProgramWeekNumber: 3, ProgramWeekStartDate: day(2026, time.February, 16), ProgramWeekEndDate: day(2026, time.February, 22)},
	}
}

func TestResolveWeekNumber(t *testing.T) {
	weeks := sampleWeeks()

	n, err := ResolveWeekNumber(weeks, day(2026, time.February, 2))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = ResolveWeekNumber(weeks, day(2026, time.February, 15))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = ResolveWeekNumber(weeks, day(2026, time.February, 22))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestResolveWeekNumberIgnoresTimeOfDay(t *testing.T) {
	weeks := sampleWeeks()
	n, err := ResolveWeekNumber(weeks, time.Date(2026, time.February, 8, 23, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestResolveWeekNumberUnmapped(t *testing.T) {
	weeks := sampleWeeks()

	_, err := ResolveWeekNumber(weeks, day(2026, time.February, 1))
	require.Error(t, err)
	assert.True(t, derr.IsKind(err, derr.KindUnmappedWeek))

	_, err = ResolveWeekNumber(weeks, day(2026, time.February, 23))
	require.Error(t, err)
	assert.True(t, derr.IsKind(err, derr.KindUnmappedWeek))

	_, err = ResolveWeekNumber(nil, day(2026, time.February, 10))
	require.Error(t, err)
	assert.True(t, derr.IsKind(err, derr.KindUnmappedWeek))
}
