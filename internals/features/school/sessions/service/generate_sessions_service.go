// file: internals/features/school/sessions/service/generate_sessions_service.go
package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	acadModel "globalenglish_backend/internals/features/school/academics/model"
	acadService "globalenglish_backend/internals/features/school/academics/service"
	calService "globalenglish_backend/internals/features/school/calendar/service"
	classModel "globalenglish_backend/internals/features/school/classrooms/model"
	"globalenglish_backend/internals/features/school/sessions/model"
	"globalenglish_backend/internals/helpers/derr"
)

// Runaway guard for misconfigured periods.
const maxGenerateDays = 366 * 2

/* =========================
   Generator + Options
========================= */

type Generator struct{ DB *gorm.DB }

type GenerateOptions struct {
	BatchSize int
}

// GenerateResult reports one generation run: how many rows it inserted and
// the full id list of the classroom's generated sessions for the period, in
// calendar order. A re-run inserts nothing and returns the same id list.
type GenerateResult struct {
	Created    int         `json:"created"`
	SessionIDs []uuid.UUID `json:"session_ids"`
}

func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

func buildSlotSnapshot(s classModel.WeeklySlotModel) datatypes.JSONMap {
	return datatypes.JSONMap{
		"slot_id":     s.WeeklySlotID.String(),
		"day_of_week": s.WeeklySlotDayOfWeek,
		"start_time":  s.WeeklySlotStartTime,
		"end_time":    s.WeeklySlotEndTime,
	}
}

/* =========================
   Pure expansion
========================= */

// ExpandSessions walks every date of the period and emits one row per slot
// whose weekday matches. School days come out SCHEDULED; holidays come out
// NOT_TAUGHT with the built-in holiday reason so the history stays visible.
// Two slots on the same weekday emit two independent rows for that date.
func ExpandSessions(
	classroomID uuid.UUID,
	period acadModel.AcademicPeriodModel,
	slots []classModel.WeeklySlotModel,
	weeks []acadModel.ProgramWeekModel,
	cal *calService.Resolver,
	holidayReasonID uuid.UUID,
) ([]model.SessionModel, error) {
	rows := make([]model.SessionModel, 0, 64)

	for d := period.AcademicPeriodStartDate; !d.After(period.AcademicPeriodEndDate); d = d.AddDate(0, 0, 1) {
		for i := range slots {
			slot := &slots[i]
			if slot.WeeklySlotDayOfWeek != isoWeekday(d) {
				continue
			}

			kind, err := cal.Classify(d)
			if err != nil {
				return nil, err
			}
			weekNo, err := acadService.ResolveWeekNumber(weeks, d)
			if err != nil {
				return nil, err
			}

			slotID := slot.WeeklySlotID
			row := model.SessionModel{
				SessionClassroomID:  classroomID,
				SessionPeriodID:     period.AcademicPeriodID,
				SessionDate:         time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC),
				SessionSlotID:       &slotID,
				SessionWeekNumber:   weekNo,
				SessionStatus:       model.SessionStatusScheduled,
				SessionSlotSnapshot: buildSlotSnapshot(*slot),
			}
			if kind == calService.DayHoliday {
				rid := holidayReasonID
				row.SessionStatus = model.SessionStatusNotTaught
				row.SessionReasonID = &rid
			}
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// sessionKey is the (classroom, date, slot) identity that the unique index
// on generated sessions enforces.
func sessionKey(classroomID uuid.UUID, date time.Time, slotID *uuid.UUID) string {
	k := classroomID.String() + "|" + date.Format("2006-01-02") + "|"
	if slotID != nil {
		k += slotID.String()
	}
	return k
}

// filterNewSessions drops every expanded row whose key is already
// persisted, so a regeneration inserts only what is missing.
func filterNewSessions(rows []model.SessionModel, existing map[string]struct{}) []model.SessionModel {
	fresh := make([]model.SessionModel, 0, len(rows))
	for i := range rows {
		key := sessionKey(rows[i].SessionClassroomID, rows[i].SessionDate, rows[i].SessionSlotID)
		if _, ok := existing[key]; ok {
			continue
		}
		fresh = append(fresh, rows[i])
	}
	return fresh
}

func slotStart(r *model.SessionModel) string {
	if v, ok := r.SessionSlotSnapshot["start_time"].(string); ok {
		return v
	}
	return ""
}

// orderedSessionIDs sorts by date, then by the snapshotted start time for
// multiple slots on one date, and returns the ids.
func orderedSessionIDs(rows []model.SessionModel) []uuid.UUID {
	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].SessionDate.Equal(rows[j].SessionDate) {
			return rows[i].SessionDate.Before(rows[j].SessionDate)
		}
		return slotStart(&rows[i]) < slotStart(&rows[j])
	})
	ids := make([]uuid.UUID, 0, len(rows))
	for i := range rows {
		ids = append(ids, rows[i].SessionID)
	}
	return ids
}

/* =========================
   Public API
========================= */

// GenerateSessions materializes the expected sessions of one classroom for
// one period and returns their ids in calendar order. Idempotent: rows
// already persisted are filtered out before the insert, with the unique
// (classroom, date, slot) index plus ON CONFLICT DO NOTHING as the backstop.
// The classroom row is locked for the duration so two concurrent runs
// cannot interleave; a re-run returns the same id list with Created == 0.
func (g *Generator) GenerateSessions(
	ctx context.Context,
	classroomID, periodID uuid.UUID,
	opts *GenerateOptions,
) (GenerateResult, error) {
	if opts == nil {
		opts = &GenerateOptions{}
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = 500
	}

	out := GenerateResult{SessionIDs: []uuid.UUID{}}
	err := g.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var classroom classModel.ClassroomModel
		if e := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Take(&classroom, "classroom_id = ?", classroomID).Error; e != nil {
			if e == gorm.ErrRecordNotFound {
				return derr.New(derr.KindNotFound, "classroom not found")
			}
			return derr.Storage(e)
		}
		if !classroom.ClassroomIsActive {
			return derr.New(derr.KindValidation, "classroom is inactive")
		}

		var period acadModel.AcademicPeriodModel
		if e := tx.Take(&period, "academic_period_id = ?", periodID).Error; e != nil {
			if e == gorm.ErrRecordNotFound {
				return derr.New(derr.KindNotFound, "academic period not found")
			}
			return derr.Storage(e)
		}

		daysSpan := int(period.AcademicPeriodEndDate.Sub(period.AcademicPeriodStartDate).Hours()/24) + 1
		if daysSpan <= 0 {
			return nil
		}
		if daysSpan > maxGenerateDays {
			return derr.Newf(derr.KindValidation,
				"period spans %d days (max %d)", daysSpan, maxGenerateDays)
		}

		var slots []classModel.WeeklySlotModel
		if e := tx.
			Where("weekly_slot_classroom_id = ?", classroomID).
			Order("weekly_slot_day_of_week, weekly_slot_start_time").
			Find(&slots).Error; e != nil {
			return derr.Storage(e)
		}

		var persisted []model.SessionModel
		if e := tx.
			Select("session_id, session_classroom_id, session_date, session_slot_id, session_slot_snapshot").
			Where("session_classroom_id = ? AND session_period_id = ? AND session_is_makeup = FALSE",
				classroomID, periodID).
			Find(&persisted).Error; e != nil {
			return derr.Storage(e)
		}
		existing := make(map[string]struct{}, len(persisted))
		for i := range persisted {
			existing[sessionKey(persisted[i].SessionClassroomID, persisted[i].SessionDate, persisted[i].SessionSlotID)] = struct{}{}
		}

		var rows []model.SessionModel
		if len(slots) > 0 {
			weeks, e := acadService.LoadWeeks(ctx, tx, periodID)
			if e != nil {
				return e
			}
			cal, e := calService.LoadResolver(ctx, tx, period.AcademicPeriodStartDate, period.AcademicPeriodEndDate)
			if e != nil {
				return e
			}
			holidayReasonID, e := calService.EnsureHolidayReason(ctx, tx)
			if e != nil {
				return e
			}
			rows, e = ExpandSessions(classroomID, period, slots, weeks, cal, holidayReasonID)
			if e != nil {
				return e
			}
		}

		fresh := filterNewSessions(rows, existing)
		if len(fresh) > 0 {
			res := tx.Clauses(clause.OnConflict{DoNothing: true}).
				CreateInBatches(&fresh, opts.BatchSize)
			if res.Error != nil {
				return derr.Storage(res.Error)
			}
			out.Created = int(res.RowsAffected)
		}

		out.SessionIDs = orderedSessionIDs(append(persisted, fresh...))
		return nil
	})
	if err != nil {
		return GenerateResult{}, err
	}
	return out, nil
}
