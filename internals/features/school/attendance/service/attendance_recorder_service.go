// file: internals/features/school/attendance/service/attendance_recorder_service.go
package service

import (
	"context"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"globalenglish_backend/internals/features/school/attendance/model"
	calModel "globalenglish_backend/internals/features/school/calendar/model"
	"globalenglish_backend/internals/features/school/reference"
	sessModel "globalenglish_backend/internals/features/school/sessions/model"
	"globalenglish_backend/internals/helpers/derr"
)

// StatusInput is one operator-submitted attendance line.
type StatusInput struct {
	StudentID uuid.UUID
	Status    string
	ReasonID  *uuid.UUID
}

/* =========================
   Pure record building
========================= */

// BuildRecords turns the submitted statuses plus the session's roster
// snapshot into the full record set. Every roster student gets exactly one
// row; students not mentioned are recorded ABSENT, because silence after a
// taught session means absence, not missing data.
func BuildRecords(sessionID uuid.UUID, roster []reference.RosterEntry, statuses []StatusInput) ([]model.AttendanceRecordModel, error) {
	onRoster := make(map[uuid.UUID]bool, len(roster))
	for _, r := range roster {
		onRoster[r.StudentID] = true
	}

	byStudent := make(map[uuid.UUID]StatusInput, len(statuses))
	for _, in := range statuses {
		if !model.IsValidAttendanceStatus(in.Status) {
			return nil, derr.Newf(derr.KindValidation, "unknown attendance status %q", in.Status)
		}
		if !onRoster[in.StudentID] {
			return nil, derr.Newf(derr.KindUnknownStudent,
				"student %s was not on the roster when the session was taught", in.StudentID)
		}
		if _, dup := byStudent[in.StudentID]; dup {
			return nil, derr.Newf(derr.KindValidation, "student %s appears twice in the submission", in.StudentID)
		}
		if in.Status == model.AttendanceStatusPresent && in.ReasonID != nil {
			return nil, derr.New(derr.KindInvalidJustification, "a present student cannot carry a justification")
		}
		if in.Status == model.AttendanceStatusJustified && in.ReasonID == nil {
			return nil, derr.New(derr.KindValidation, "a justified absence requires a reason")
		}
		byStudent[in.StudentID] = in
	}

	rows := make([]model.AttendanceRecordModel, 0, len(roster))
	for _, r := range roster {
		row := model.AttendanceRecordModel{
			AttendanceRecordSessionID: sessionID,
			AttendanceRecordStudentID: r.StudentID,
			AttendanceRecordStatus:    model.AttendanceStatusAbsent,
		}
		if in, ok := byStudent[r.StudentID]; ok {
			row.AttendanceRecordStatus = in.Status
			row.AttendanceRecordReasonID = in.ReasonID
		}
		rows = append(rows, row)
	}
	return rows, nil
}

/* =========================
   Recorder
========================= */

type Recorder struct{ DB *gorm.DB }

// Record replaces the session's attendance set atomically. The session row
// is locked so two partial submissions cannot interleave.
func (rec *Recorder) Record(ctx context.Context, sessionID uuid.UUID, statuses []StatusInput) ([]model.AttendanceRecordModel, error) {
	var rows []model.AttendanceRecordModel

	err := rec.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sess sessModel.SessionModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Take(&sess, "session_id = ?", sessionID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return derr.New(derr.KindNotFound, "session not found")
			}
			return derr.Storage(err)
		}
		if sess.SessionStatus != sessModel.SessionStatusTaught {
			return derr.Newf(derr.KindSessionNotTaught,
				"attendance requires a taught session (current status %s)", sess.SessionStatus)
		}

		var roster []reference.RosterEntry
		if len(sess.SessionRosterSnapshot) > 0 {
			if err := sonic.Unmarshal(sess.SessionRosterSnapshot, &roster); err != nil {
				return derr.Storage(err)
			}
		}
		if len(roster) == 0 {
			return derr.New(derr.KindValidation, "session has no roster snapshot")
		}

		if err := validateReasons(tx, statuses); err != nil {
			return err
		}

		built, err := BuildRecords(sessionID, roster, statuses)
		if err != nil {
			return err
		}

		if err := tx.
			Where("attendance_record_session_id = ?", sessionID).
			Delete(&model.AttendanceRecordModel{}).Error; err != nil {
			return derr.Storage(err)
		}
		if err := tx.CreateInBatches(&built, 200).Error; err != nil {
			return derr.Storage(err)
		}
		rows = built
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListBySession returns the stored record set ordered by student.
func (rec *Recorder) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]model.AttendanceRecordModel, error) {
	var rows []model.AttendanceRecordModel
	if err := rec.DB.WithContext(ctx).
		Where("attendance_record_session_id = ?", sessionID).
		Order("attendance_record_student_id").
		Find(&rows).Error; err != nil {
		return nil, derr.Storage(err)
	}
	return rows, nil
}

func validateReasons(tx *gorm.DB, statuses []StatusInput) error {
	seen := map[uuid.UUID]bool{}
	ids := make([]uuid.UUID, 0, 4)
	for _, in := range statuses {
		if in.ReasonID == nil || seen[*in.ReasonID] {
			continue
		}
		seen[*in.ReasonID] = true
		ids = append(ids, *in.ReasonID)
	}
	if len(ids) == 0 {
		return nil
	}
	var n int64
	if err := tx.Model(&calModel.AbsenceReasonModel{}).
		Where("absence_reason_id IN ? AND absence_reason_is_active = TRUE", ids).
		Count(&n).Error; err != nil {
		return derr.Storage(err)
	}
	if int(n) != len(ids) {
		return derr.New(derr.KindValidation, "one or more absence reasons are unknown or inactive")
	}
	return nil
}
