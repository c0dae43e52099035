// file: internals/features/school/attendance/service/attendance_recorder_service_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"globalenglish_backend/internals/features/school/attendance/model"
	"globalenglish_backend/internals/features/school/reference"
	"globalenglish_backend/internals/helpers/derr"
)

func roster(ids ...uuid.UUID) []reference.RosterEntry {
	out := make([]reference.RosterEntry, 0, len(ids))
	for i, id := range ids {
		out = append(out, reference.RosterEntry{StudentID: id, StudentName: string(rune('A' + i))})
	}
	return out
}

func TestBuildRecordsOmittedStudentsAreAbsent(t *testing.T) {
	sessionID := uuid.New()
	s1, s2, s3 := uuid.New(), uuid.New(), uuid.New()

	rows, err := BuildRecords(sessionID, roster(s1, s2, s3), []StatusInput{
		{StudentID: s1, Status: model.AttendanceStatusPresent},
	})
	require.NoError(t, err)
	require.Len(t, rows, 3)

	byStudent := map[uuid.UUID]model.AttendanceRecordModel{}
	for _, r := range rows {
		byStudent[r.AttendanceRecordStudentID] = r
	}
	assert.Equal(t, model.AttendanceStatusPresent, byStudent[s1].AttendanceRecordStatus)
	assert.Equal(t, model.AttendanceStatusAbsent, byStudent[s2].AttendanceRecordStatus)
	assert.Equal(t, model.AttendanceStatusAbsent, byStudent[s3].AttendanceRecordStatus)
	assert.Nil(t, byStudent[s2].AttendanceRecordReasonID)
}

func TestBuildRecordsUnknownStudent(t *testing.T) {
	s1 := uuid.New()
	_, err := BuildRecords(uuid.New(), roster(s1), []StatusInput{
		{StudentID: uuid.New(), Status: model.AttendanceStatusPresent},
	})
	require.Error(t, err)
	assert.True(t, derr.IsKind(err, derr.KindUnknownStudent))
}

func TestBuildRecordsPresentWithReasonRejected(t *testing.T) {
	s1 := uuid.New()
	reasonID := uuid.New()
	_, err := BuildRecords(uuid.New(), roster(s1), []StatusInput{
		{StudentID: s1, Status: model.AttendanceStatusPresent, ReasonID: &reasonID},
	})
	require.Error(t, err)
	assert.True(t, derr.IsKind(err, derr.KindInvalidJustification))
}

func TestBuildRecordsJustifiedRequiresReason(t *testing.T) {
	s1 := uuid.New()
	_, err := BuildRecords(uuid.New(), roster(s1), []StatusInput{
		{StudentID: s1, Status: model.AttendanceStatusJustified},
	})
	require.Error(t, err)
	assert.True(t, derr.IsKind(err, derr.KindValidation))

	reasonID := uuid.New()
	rows, err := BuildRecords(uuid.New(), roster(s1), []StatusInput{
		{StudentID: s1, Status: model.AttendanceStatusJustified, ReasonID: &reasonID},
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].AttendanceRecordReasonID)
	assert.Equal(t, reasonID, *rows[0].AttendanceRecordReasonID)
}

func TestBuildRecordsAbsentMayCarryReason(t *testing.T) {
	s1 := uuid.New()
	reasonID := uuid.New()
	rows, err := BuildRecords(uuid.New(), roster(s1), []StatusInput{
		{StudentID: s1, Status: model.AttendanceStatusAbsent, ReasonID: &reasonID},
	})
	require.NoError(t, err)
	require.NotNil(t, rows[0].AttendanceRecordReasonID)
}

func TestBuildRecordsDuplicateSubmissionRejected(t *testing.T) {
	s1 := uuid.New()
	_, err := BuildRecords(uuid.New(), roster(s1), []StatusInput{
		{StudentID: s1, Status: model.AttendanceStatusPresent},
		{StudentID: s1, Status: model.AttendanceStatusAbsent},
	})
	require.Error(t, err)
	assert.True(t, derr.IsKind(err, derr.KindValidation))
}

func TestBuildRecordsUnknownStatusRejected(t *testing.T) {
	s1 := uuid.New()
	_, err := BuildRecords(uuid.New(), roster(s1), []StatusInput{
		{StudentID: s1, Status: "LATE"},
	})
	require.Error(t, err)
	assert.True(t, derr.IsKind(err, derr.KindValidation))
}
