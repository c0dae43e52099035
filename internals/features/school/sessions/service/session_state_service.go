// file: internals/features/school/sessions/service/session_state_service.go
package service

import (
	"context"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	acadService "globalenglish_backend/internals/features/school/academics/service"
	calModel "globalenglish_backend/internals/features/school/calendar/model"
	calService "globalenglish_backend/internals/features/school/calendar/service"
	"globalenglish_backend/internals/features/school/reference"
	"globalenglish_backend/internals/features/school/sessions/model"
	"globalenglish_backend/internals/helpers/derr"
)

/* =========================
   Transition rules
========================= */

// ValidateTransition enforces the append-only life cycle. SCHEDULED may
// move to either terminal state; nothing ever leaves a terminal state.
func ValidateTransition(current, target string) error {
	if current != model.SessionStatusScheduled {
		return derr.Newf(derr.KindInvalidTransition,
			"session is already %s; past decisions are corrected with a makeup, not rewritten", current)
	}
	if target != model.SessionStatusTaught && target != model.SessionStatusNotTaught {
		return derr.Newf(derr.KindInvalidTransition, "unknown target status %q", target)
	}
	return nil
}

/* =========================
   State machine
========================= */

type StateMachine struct {
	DB     *gorm.DB
	Roster reference.RosterProvider
}

func NewStateMachine(db *gorm.DB, roster reference.RosterProvider) *StateMachine {
	return &StateMachine{DB: db, Roster: roster}
}

func (s *StateMachine) loadSession(tx *gorm.DB, id uuid.UUID) (model.SessionModel, error) {
	var sess model.SessionModel
	if err := tx.Take(&sess, "session_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return sess, derr.New(derr.KindNotFound, "session not found")
		}
		return sess, derr.Storage(err)
	}
	return sess, nil
}

// guardedUpdate applies the terminal transition only while the row is still
// SCHEDULED. A zero row count after we just read SCHEDULED means another
// writer won the race.
func guardedUpdate(tx *gorm.DB, id uuid.UUID, fields map[string]any) error {
	res := tx.Model(&model.SessionModel{}).
		Where("session_id = ? AND session_status = ?", id, model.SessionStatusScheduled).
		Updates(fields)
	if res.Error != nil {
		return derr.Storage(res.Error)
	}
	if res.RowsAffected == 0 {
		return derr.New(derr.KindConcurrentModification,
			"session was transitioned by a concurrent request")
	}
	return nil
}

// rosterSnapshot freezes the classroom roster as it stood on the session
// date. The date matters for retroactive confirmations: a student who
// transferred out after attending must still appear in the snapshot.
func (s *StateMachine) rosterSnapshot(ctx context.Context, classroomID uuid.UUID, at time.Time) ([]byte, error) {
	roster, err := s.Roster.Roster(ctx, classroomID, at)
	if err != nil {
		return nil, err
	}
	snapshot, err := sonic.Marshal(roster)
	if err != nil {
		return nil, derr.Storage(err)
	}
	return snapshot, nil
}

// MarkTaught confirms the session was held and freezes the classroom roster
// into the row. Attendance is later validated against that snapshot, never
// against the live roster.
func (s *StateMachine) MarkTaught(ctx context.Context, sessionID uuid.UUID, hoursTaught float64) (model.SessionModel, error) {
	var out model.SessionModel

	if hoursTaught <= 0 || hoursTaught > 24 {
		return out, derr.New(derr.KindValidation, "hours taught must be in (0, 24]")
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sess, err := s.loadSession(tx, sessionID)
		if err != nil {
			return err
		}
		if err := ValidateTransition(sess.SessionStatus, model.SessionStatusTaught); err != nil {
			return err
		}

		cal, err := calService.LoadResolver(ctx, tx, sess.SessionDate, sess.SessionDate)
		if err != nil {
			return err
		}
		if cal.IsHoliday(sess.SessionDate) {
			return derr.New(derr.KindInvalidTransition, "a session on a holiday cannot be marked taught")
		}

		snapshot, err := s.rosterSnapshot(ctx, sess.SessionClassroomID, sess.SessionDate)
		if err != nil {
			return err
		}

		if err := guardedUpdate(tx, sessionID, map[string]any{
			"session_status":          model.SessionStatusTaught,
			"session_hours_taught":    hoursTaught,
			"session_roster_snapshot": snapshot,
		}); err != nil {
			return err
		}

		out, err = s.loadSession(tx, sessionID)
		return err
	})
	return out, err
}

// MarkNotTaught records that the session did not happen and why.
func (s *StateMachine) MarkNotTaught(ctx context.Context, sessionID, reasonID uuid.UUID) (model.SessionModel, error) {
	var out model.SessionModel

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sess, err := s.loadSession(tx, sessionID)
		if err != nil {
			return err
		}
		if err := ValidateTransition(sess.SessionStatus, model.SessionStatusNotTaught); err != nil {
			return err
		}

		var reason calModel.AbsenceReasonModel
		if err := tx.Take(&reason, "absence_reason_id = ?", reasonID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return derr.New(derr.KindValidation, "absence reason not found")
			}
			return derr.Storage(err)
		}
		if !reason.AbsenceReasonIsActive {
			return derr.New(derr.KindValidation, "absence reason is inactive")
		}

		if err := guardedUpdate(tx, sessionID, map[string]any{
			"session_status":    model.SessionStatusNotTaught,
			"session_reason_id": reasonID,
		}); err != nil {
			return err
		}

		out, err = s.loadSession(tx, sessionID)
		return err
	})
	return out, err
}

// ScheduleMakeup creates a replacement SCHEDULED session for a missed one
// and points the missed session at it. One hop only: a makeup never gets
// its own makeup. When the missed session already has a makeup pointer the
// caller must pass replace to re-target it; the superseded makeup is
// soft-deleted if still SCHEDULED.
func (s *StateMachine) ScheduleMakeup(ctx context.Context, sessionID uuid.UUID, date time.Time, replace bool) (model.SessionModel, error) {
	var makeup model.SessionModel

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var orig model.SessionModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Take(&orig, "session_id = ?", sessionID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return derr.New(derr.KindNotFound, "session not found")
			}
			return derr.Storage(err)
		}

		if orig.SessionIsMakeup {
			return derr.New(derr.KindMakeupChainNotAllowed,
				"a makeup session cannot get its own makeup; re-target the original session instead")
		}
		if orig.SessionStatus != model.SessionStatusNotTaught {
			return derr.Newf(derr.KindInvalidTransition,
				"only a NOT_TAUGHT session can receive a makeup (current status %s)", orig.SessionStatus)
		}
		if orig.SessionMakeupSessionID != nil && !replace {
			return derr.New(derr.KindMakeupChainNotAllowed,
				"session already has a makeup; pass replace to re-target it")
		}

		cal, err := calService.LoadResolver(ctx, tx, date, date)
		if err != nil {
			return err
		}
		kind, err := cal.Classify(date)
		if err != nil {
			return err
		}
		if kind == calService.DayHoliday {
			return derr.New(derr.KindValidation, "makeup date falls on a holiday")
		}

		weeks, err := acadService.LoadWeeks(ctx, tx, orig.SessionPeriodID)
		if err != nil {
			return err
		}
		weekNo, err := acadService.ResolveWeekNumber(weeks, date)
		if err != nil {
			return err
		}

		makeup = model.SessionModel{
			SessionClassroomID: orig.SessionClassroomID,
			SessionPeriodID:    orig.SessionPeriodID,
			SessionDate:        time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
			SessionWeekNumber:  weekNo,
			SessionStatus:      model.SessionStatusScheduled,
			SessionIsMakeup:    true,
		}
		if err := tx.Create(&makeup).Error; err != nil {
			return derr.Storage(err)
		}

		if orig.SessionMakeupSessionID != nil {
			// retire the superseded makeup if no decision was made on it yet
			if err := tx.
				Where("session_id = ? AND session_status = ?",
					*orig.SessionMakeupSessionID, model.SessionStatusScheduled).
				Delete(&model.SessionModel{}).Error; err != nil {
				return derr.Storage(err)
			}
		}

		res := tx.Model(&model.SessionModel{}).
			Where("session_id = ?", orig.SessionID).
			Update("session_makeup_session_id", makeup.SessionID)
		if res.Error != nil {
			return derr.Storage(res.Error)
		}
		return nil
	})
	if err != nil {
		return model.SessionModel{}, err
	}
	return makeup, nil
}
