// file: internals/features/school/reports/service/report_service.go
package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"globalenglish_backend/internals/features/school/reports/dto"
	"globalenglish_backend/internals/helpers/derr"
)

type Reporter struct{ DB *gorm.DB }

/* =========================
   Row types
========================= */

type SessionSummaryRow struct {
	ClassroomID   uuid.UUID `gorm:"column:classroom_id" json:"classroom_id"`
	ClassroomName string    `gorm:"column:classroom_name" json:"classroom_name"`
	ProgramType   string    `gorm:"column:program_type" json:"program_type"`
	Scheduled     int       `gorm:"column:scheduled" json:"scheduled"`
	Taught        int       `gorm:"column:taught" json:"taught"`
	NotTaught     int       `gorm:"column:not_taught" json:"not_taught"`
	HoursTaught   float64   `gorm:"column:hours_taught" json:"hours_taught"`
}

type StudentAttendanceRow struct {
	StudentID uuid.UUID `gorm:"column:student_id" json:"student_id"`
	Present   int       `gorm:"column:present" json:"present"`
	Absent    int       `gorm:"column:absent" json:"absent"`
	Justified int       `gorm:"column:justified" json:"justified"`
	Sessions  int       `gorm:"column:sessions" json:"sessions"`
}

// WeeklyRollupRow aggregates one classroom's sessions per week; the week
// list is collected with array_agg on the database side.
type WeeklyRollupRow struct {
	ClassroomID   uuid.UUID     `gorm:"column:classroom_id" json:"classroom_id"`
	ClassroomName string        `gorm:"column:classroom_name" json:"classroom_name"`
	TaughtWeeks   pq.Int64Array `gorm:"column:taught_weeks;type:bigint[]" json:"taught_weeks"`
	Taught        int           `gorm:"column:taught" json:"taught"`
	NotTaught     int           `gorm:"column:not_taught" json:"not_taught"`
	HoursTaught   float64       `gorm:"column:hours_taught" json:"hours_taught"`
}

/* =========================
   Filter plumbing
========================= */

func applySessionFilters(q *gorm.DB, f dto.ReportFilterDTO) *gorm.DB {
	if f.InstitutionID != uuid.Nil {
		q = q.Where("c.classroom_institution_id = ?", f.InstitutionID)
	}
	if f.SiteID != uuid.Nil {
		q = q.Where("c.classroom_site_id = ?", f.SiteID)
	}
	if f.ClassroomID != uuid.Nil {
		q = q.Where("s.session_classroom_id = ?", f.ClassroomID)
	}
	if p := strings.ToUpper(strings.TrimSpace(f.ProgramType)); p != "" {
		q = q.Where("c.classroom_program_type = ?", p)
	}
	if f.PeriodID != uuid.Nil {
		q = q.Where("s.session_period_id = ?", f.PeriodID)
	}
	if f.WeekFrom > 0 {
		q = q.Where("s.session_week_number >= ?", f.WeekFrom)
	}
	if f.WeekTo > 0 {
		q = q.Where("s.session_week_number <= ?", f.WeekTo)
	}
	return q
}

/* =========================
   Reports
========================= */

// SessionSummary rolls every matching session up per classroom.
func (r *Reporter) SessionSummary(ctx context.Context, f dto.ReportFilterDTO) ([]SessionSummaryRow, error) {
	q := r.DB.WithContext(ctx).
		Table("sessions AS s").
		Select(`
			c.classroom_id                                                        AS classroom_id,
			c.classroom_name                                                      AS classroom_name,
			c.classroom_program_type                                              AS program_type,
			COUNT(*) FILTER (WHERE s.session_status = 'SCHEDULED')                AS scheduled,
			COUNT(*) FILTER (WHERE s.session_status = 'TAUGHT')                   AS taught,
			COUNT(*) FILTER (WHERE s.session_status = 'NOT_TAUGHT')               AS not_taught,
			COALESCE(SUM(s.session_hours_taught), 0)                              AS hours_taught`).
		Joins("JOIN classrooms AS c ON c.classroom_id = s.session_classroom_id").
		Where("s.session_deleted_at IS NULL")
	q = applySessionFilters(q, f)

	var rows []SessionSummaryRow
	if err := q.Group("c.classroom_id, c.classroom_name, c.classroom_program_type").
		Order("c.classroom_name").
		Scan(&rows).Error; err != nil {
		return nil, derr.Storage(err)
	}
	return rows, nil
}

// StudentAttendance counts each student's statuses across taught sessions.
func (r *Reporter) StudentAttendance(ctx context.Context, f dto.ReportFilterDTO) ([]StudentAttendanceRow, error) {
	q := r.DB.WithContext(ctx).
		Table("attendance_records AS ar").
		Select(`
			ar.attendance_record_student_id                                        AS student_id,
			COUNT(*) FILTER (WHERE ar.attendance_record_status = 'PRESENT')        AS present,
			COUNT(*) FILTER (WHERE ar.attendance_record_status = 'ABSENT')         AS absent,
			COUNT(*) FILTER (WHERE ar.attendance_record_status = 'JUSTIFIED')      AS justified,
			COUNT(*)                                                               AS sessions`).
		Joins("JOIN sessions AS s ON s.session_id = ar.attendance_record_session_id").
		Joins("JOIN classrooms AS c ON c.classroom_id = s.session_classroom_id").
		Where("s.session_deleted_at IS NULL")
	q = applySessionFilters(q, f)
	if f.StudentID != uuid.Nil {
		q = q.Where("ar.attendance_record_student_id = ?", f.StudentID)
	}

	var rows []StudentAttendanceRow
	if err := q.Group("ar.attendance_record_student_id").
		Order("ar.attendance_record_student_id").
		Scan(&rows).Error; err != nil {
		return nil, derr.Storage(err)
	}
	return rows, nil
}

// WeeklyRollup shows which reporting weeks actually saw teaching.
func (r *Reporter) WeeklyRollup(ctx context.Context, f dto.ReportFilterDTO) ([]WeeklyRollupRow, error) {
	q := r.DB.WithContext(ctx).
		Table("sessions AS s").
		Select(`
			c.classroom_id                                                        AS classroom_id,
			c.classroom_name                                                      AS classroom_name,
			array_agg(DISTINCT s.session_week_number)
				FILTER (WHERE s.session_status = 'TAUGHT')                        AS taught_weeks,
			COUNT(*) FILTER (WHERE s.session_status = 'TAUGHT')                   AS taught,
			COUNT(*) FILTER (WHERE s.session_status = 'NOT_TAUGHT')               AS not_taught,
			COALESCE(SUM(s.session_hours_taught), 0)                              AS hours_taught`).
		Joins("JOIN classrooms AS c ON c.classroom_id = s.session_classroom_id").
		Where("s.session_deleted_at IS NULL")
	q = applySessionFilters(q, f)

	var rows []WeeklyRollupRow
	if err := q.Group("c.classroom_id, c.classroom_name").
		Order("c.classroom_name").
		Scan(&rows).Error; err != nil {
		return nil, derr.Storage(err)
	}
	return rows, nil
}
