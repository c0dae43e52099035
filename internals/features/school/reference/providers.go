// file: internals/features/school/reference/providers.go
// Read-only views over tables owned by the enrollment system. Nothing in
// this package writes to them.
package reference

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"globalenglish_backend/internals/helpers/derr"
)

// RosterEntry is one enrolled student as seen at a point in time.
type RosterEntry struct {
	StudentID   uuid.UUID `gorm:"column:student_id" json:"student_id"`
	StudentName string    `gorm:"column:student_name" json:"student_name"`
}

// RosterProvider yields the roster of a classroom as it stood on a given
// date. Confirming a class retroactively must see the students enrolled on
// that day, not whoever is enrolled at confirmation time.
type RosterProvider interface {
	Roster(ctx context.Context, classroomID uuid.UUID, at time.Time) ([]RosterEntry, error)
}

// StudentProgramProvider resolves which program a student belonged to in a
// given academic period, used to pick the grade component set that applies.
type StudentProgramProvider interface {
	ProgramType(ctx context.Context, studentID, periodID uuid.UUID) (string, error)
}

type sqlProvider struct {
	db *gorm.DB
}

func NewSQLProvider(db *gorm.DB) interface {
	RosterProvider
	StudentProgramProvider
} {
	return &sqlProvider{db: db}
}

func (p *sqlProvider) Roster(ctx context.Context, classroomID uuid.UUID, at time.Time) ([]RosterEntry, error) {
	var rows []RosterEntry
	err := p.db.WithContext(ctx).
		Table("enrollments AS e").
		Select("e.enrollment_student_id AS student_id, s.student_full_name AS student_name").
		Joins("JOIN students AS s ON s.student_id = e.enrollment_student_id").
		Where("e.enrollment_classroom_id = ?", classroomID).
		Where("e.enrollment_start_date <= ?", at).
		Where("e.enrollment_end_date IS NULL OR e.enrollment_end_date >= ?", at).
		Order("s.student_full_name").
		Scan(&rows).Error
	if err != nil {
		return nil, derr.Storage(err)
	}
	return rows, nil
}

func (p *sqlProvider) ProgramType(ctx context.Context, studentID, periodID uuid.UUID) (string, error) {
	var programType string
	err := p.db.WithContext(ctx).
		Table("enrollments AS e").
		Select("c.classroom_program_type").
		Joins("JOIN classrooms AS c ON c.classroom_id = e.enrollment_classroom_id").
		Where("e.enrollment_student_id = ? AND e.enrollment_period_id = ?", studentID, periodID).
		Limit(1).
		Scan(&programType).Error
	if err != nil {
		return "", derr.Storage(err)
	}
	if programType == "" {
		return "", derr.Newf(derr.KindUnknownStudent,
			"student %s has no enrollment in period %s", studentID, periodID)
	}
	return programType, nil
}
