// file: internals/features/school/sessions/service/generate_sessions_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	acadModel "globalenglish_backend/internals/features/school/academics/model"
	calModel "globalenglish_backend/internals/features/school/calendar/model"
	calService "globalenglish_backend/internals/features/school/calendar/service"
	classModel "globalenglish_backend/internals/features/school/classrooms/model"
	"globalenglish_backend/internals/features/school/sessions/model"
	"globalenglish_backend/internals/helpers/derr"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mondaySlot(classroomID uuid.UUID) classModel.WeeklySlotModel {
	return classModel.WeeklySlotModel{
		WeeklySlotID:          uuid.New(),
		WeeklySlotClassroomID: classroomID,
		WeeklySlotDayOfWeek:   1,
		WeeklySlotStartTime:   "08:00",
		WeeklySlotEndTime:     "09:30",
	}
}

// Three Mondays, 2026-02-02 through 2026-02-16, all inside one week set.
func threeWeekPeriod() (acadModel.AcademicPeriodModel, []acadModel.ProgramWeekModel) {
	period := acadModel.AcademicPeriodModel{
		AcademicPeriodID:        uuid.New(),
		AcademicPeriodYear:      2026,
		AcademicPeriodStartDate: day(2026, time.February, 2),
		AcademicPeriodEndDate:   day(2026, time.February, 16),
	}
	weeks := []acadModel.ProgramWeekModel{
		{ProgramWeekPeriodID: period.AcademicPeriodID, ProgramWeekNumber: 1, ProgramWeekStartDate: day(2026, time.February, 2), ProgramWeekEndDate: day(2026, time.February, 8)},
		{ProgramWeekPeriodID: period.AcademicPeriodID, ProgramWeekNumber: 2, ProgramWeekStartDate: day(2026, time.February, 9), ProgramWeekEndDate: day(2026, time.February, 15)},
		{ProgramWeekPeriodID: period.AcademicPeriodID, ProgramWeekNumber: 3, ProgramWeekStartDate: day(2026, time.February, 16), ProgramWeekEndDate: day(2026, time.February, 22)},
	}
	return period, weeks
}

func TestExpandSessionsHolidayStaysVisible(t *testing.T) {
	classroomID := uuid.New()
	holidayReasonID := uuid.New()
	period, weeks := threeWeekPeriod()

	// middle Monday is a holiday
	cal := calService.NewResolver([]calModel.HolidayModel{
		{HolidayID: uuid.New(), HolidayDate: day(2026, time.February, 9)},
	})

	rows, err := ExpandSessions(classroomID, period,
		[]classModel.WeeklySlotModel{mondaySlot(classroomID)},
		weeks, cal, holidayReasonID)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, model.SessionStatusScheduled, rows[0].SessionStatus)
	assert.Equal(t, model.SessionStatusNotTaught, rows[1].SessionStatus)
	assert.Equal(t, model.SessionStatusScheduled, rows[2].SessionStatus)

	require.NotNil(t, rows[1].SessionReasonID)
	assert.Equal(t, holidayReasonID, *rows[1].SessionReasonID)
	assert.Nil(t, rows[0].SessionReasonID)

	assert.Equal(t, 1, rows[0].SessionWeekNumber)
	assert.Equal(t, 2, rows[1].SessionWeekNumber)
	assert.Equal(t, 3, rows[2].SessionWeekNumber)
}

func TestExpandSessionsTwoSlotsSameWeekday(t *testing.T) {
	classroomID := uuid.New()
	period, weeks := threeWeekPeriod()
	period.AcademicPeriodEndDate = day(2026, time.February, 8) // one Monday only

	morning := mondaySlot(classroomID)
	evening := mondaySlot(classroomID)
	evening.WeeklySlotStartTime = "16:00"
	evening.WeeklySlotEndTime = "17:30"

	cal := calService.NewResolver(nil)
	rows, err := ExpandSessions(classroomID, period,
		[]classModel.WeeklySlotModel{morning, evening},
		weeks, cal, uuid.New())
	require.NoError(t, err)

	// same date, two distinct class meetings
	require.Len(t, rows, 2)
	assert.Equal(t, rows[0].SessionDate, rows[1].SessionDate)
	assert.NotEqual(t, *rows[0].SessionSlotID, *rows[1].SessionSlotID)
	assert.Equal(t, "08:00", rows[0].SessionSlotSnapshot["start_time"])
	assert.Equal(t, "16:00", rows[1].SessionSlotSnapshot["start_time"])
}

func TestExpandSessionsUnmappedWeekSurfaces(t *testing.T) {
	classroomID := uuid.New()
	period, weeks := threeWeekPeriod()
	weeks = weeks[:1] // second Monday falls outside the week set

	cal := calService.NewResolver(nil)
	_, err := ExpandSessions(classroomID, period,
		[]classModel.WeeklySlotModel{mondaySlot(classroomID)},
		weeks, cal, uuid.New())
	require.Error(t, err)
	assert.True(t, derr.IsKind(err, derr.KindUnmappedWeek))
}

// Two generation passes over the same in-memory store: the second pass must
// find every (classroom, date, slot) key already persisted, insert nothing,
// and report the same id list as the first.
func TestRegenerateCreatesNoDuplicateSessions(t *testing.T) {
	classroomID := uuid.New()
	period, weeks := threeWeekPeriod()
	slots := []classModel.WeeklySlotModel{mondaySlot(classroomID)}
	cal := calService.NewResolver(nil)

	store := map[string]model.SessionModel{}

	runOnce := func() (fresh []model.SessionModel, ids []uuid.UUID) {
		rows, err := ExpandSessions(classroomID, period, slots, weeks, cal, uuid.New())
		require.NoError(t, err)

		existing := make(map[string]struct{}, len(store))
		persisted := make([]model.SessionModel, 0, len(store))
		for k, r := range store {
			existing[k] = struct{}{}
			persisted = append(persisted, r)
		}
		fresh = filterNewSessions(rows, existing)
		for i := range fresh {
			fresh[i].SessionID = uuid.New()
			store[sessionKey(fresh[i].SessionClassroomID, fresh[i].SessionDate, fresh[i].SessionSlotID)] = fresh[i]
		}
		return fresh, orderedSessionIDs(append(persisted, fresh...))
	}

	firstRun, firstIDs := runOnce()
	require.Len(t, firstRun, 3)
	require.Len(t, store, 3)
	require.Len(t, firstIDs, 3)

	secondRun, secondIDs := runOnce()
	assert.Empty(t, secondRun)
	assert.Len(t, store, 3)
	assert.Equal(t, firstIDs, secondIDs)
}

func TestOrderedSessionIDsByDateThenStart(t *testing.T) {
	morning := model.SessionModel{
		SessionID:           uuid.New(),
		SessionDate:         day(2026, time.February, 2),
		SessionSlotSnapshot: datatypes.JSONMap{"start_time": "08:00"},
	}
	evening := model.SessionModel{
		SessionID:           uuid.New(),
		SessionDate:         day(2026, time.February, 2),
		SessionSlotSnapshot: datatypes.JSONMap{"start_time": "16:00"},
	}
	nextWeek := model.SessionModel{
		SessionID:   uuid.New(),
		SessionDate: day(2026, time.February, 9),
	}

	ids := orderedSessionIDs([]model.SessionModel{nextWeek, evening, morning})
	assert.Equal(t, []uuid.UUID{morning.SessionID, evening.SessionID, nextWeek.SessionID}, ids)
}

func TestExpandSessionsSkipsNonMatchingWeekdays(t *testing.T) {
	classroomID := uuid.New()
	period, weeks := threeWeekPeriod()

	slot := mondaySlot(classroomID)
	slot.WeeklySlotDayOfWeek = 7 // Sundays: 8 and 15 Feb

	cal := calService.NewResolver(nil)
	rows, err := ExpandSessions(classroomID, period,
		[]classModel.WeeklySlotModel{slot}, weeks, cal, uuid.New())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, day(2026, time.February, 8), rows[0].SessionDate)
	assert.Equal(t, day(2026, time.February, 15), rows[1].SessionDate)
}
