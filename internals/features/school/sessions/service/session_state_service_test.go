// file: internals/features/school/sessions/service/session_state_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"globalenglish_backend/internals/features/school/reference"
	"globalenglish_backend/internals/features/school/sessions/model"
	"globalenglish_backend/internals/helpers/derr"
)

func TestValidateTransitionFromScheduled(t *testing.T) {
	require.NoError(t, ValidateTransition(model.SessionStatusScheduled, model.SessionStatusTaught))
	require.NoError(t, ValidateTransition(model.SessionStatusScheduled, model.SessionStatusNotTaught))
}

func TestValidateTransitionTerminalStatesAreFinal(t *testing.T) {
	err := ValidateTransition(model.SessionStatusTaught, model.SessionStatusNotTaught)
	require.Error(t, err)
	assert.True(t, derr.IsKind(err, derr.KindInvalidTransition))

	err = ValidateTransition(model.SessionStatusNotTaught, model.SessionStatusTaught)
	require.Error(t, err)
	assert.True(t, derr.IsKind(err, derr.KindInvalidTransition))

	err = ValidateTransition(model.SessionStatusTaught, model.SessionStatusScheduled)
	require.Error(t, err)
	assert.True(t, derr.IsKind(err, derr.KindInvalidTransition))
}

func TestValidateTransitionUnknownTarget(t *testing.T) {
	err := ValidateTransition(model.SessionStatusScheduled, "CANCELLED")
	require.Error(t, err)
	assert.True(t, derr.IsKind(err, derr.KindInvalidTransition))
}

// dateRosterStub serves a different roster per date, like an enrollment
// table with validity ranges would.
type dateRosterStub struct {
	byDate  map[string][]reference.RosterEntry
	askedAt time.Time
}

func (f *dateRosterStub) Roster(_ context.Context, _ uuid.UUID, at time.Time) ([]reference.RosterEntry, error) {
	f.askedAt = at
	return f.byDate[at.Format("2006-01-02")], nil
}

// A student who transferred out after the class met must still be in the
// snapshot when the class is confirmed later.
func TestRosterSnapshotTakenAsOfSessionDate(t *testing.T) {
	classroomID := uuid.New()
	sessionDate := day(2026, time.February, 9)
	transferred := reference.RosterEntry{StudentID: uuid.New(), StudentName: "Ana"}
	remaining := reference.RosterEntry{StudentID: uuid.New(), StudentName: "Luis"}

	stub := &dateRosterStub{byDate: map[string][]reference.RosterEntry{
		"2026-02-09": {transferred, remaining},
		"2026-02-20": {remaining},
	}}
	sm := NewStateMachine(nil, stub)

	snapshot, err := sm.rosterSnapshot(context.Background(), classroomID, sessionDate)
	require.NoError(t, err)
	assert.Equal(t, sessionDate, stub.askedAt)

	var got []reference.RosterEntry
	require.NoError(t, sonic.Unmarshal(snapshot, &got))
	require.Len(t, got, 2)
	assert.Equal(t, transferred.StudentID, got[0].StudentID)
	assert.Equal(t, remaining.StudentID, got[1].StudentID)
}
