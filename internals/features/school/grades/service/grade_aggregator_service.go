// file: internals/features/school/grades/service/grade_aggregator_service.go
package service

import (
	"context"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"globalenglish_backend/internals/features/school/grades/model"
	"globalenglish_backend/internals/features/school/reference"
	"globalenglish_backend/internals/helpers/derr"
)

/* =========================
   Pure computation
========================= */

// RoundScore applies the one rounding rule used everywhere: half up, one
// decimal. 8.05 rounds to 8.1.
func RoundScore(x float64) float64 {
	return math.Floor(x*10+0.5) / 10
}

// ValidateWeights refuses any active component set that does not sum to
// exactly 100. A broken set is a data fault to surface, not normalize away.
func ValidateWeights(components []model.GradeComponentModel) error {
	if len(components) == 0 {
		return derr.New(derr.KindInconsistentWeights, "no active grade components for the program")
	}
	sum := 0
	for i := range components {
		sum += components[i].GradeComponentWeight
	}
	if sum != 100 {
		return derr.Newf(derr.KindInconsistentWeights,
			"active component weights sum to %d, expected 100", sum)
	}
	return nil
}

// FinalGradeResult distinguishes a computed score from an undefined one.
// Undefined means a required component has no entry yet; it is never zero.
type FinalGradeResult struct {
	Defined bool               `json:"defined"`
	Score   *float64           `json:"score,omitempty"`
	Missing []uuid.UUID        `json:"missing_component_ids,omitempty"`
	Scores  map[string]float64 `json:"component_scores,omitempty"`
}

// ComputeFinal folds the entries over the active component set. Any
// component without an entry makes the whole result undefined.
func ComputeFinal(components []model.GradeComponentModel, entries []model.GradeEntryModel) (FinalGradeResult, error) {
	if err := ValidateWeights(components); err != nil {
		return FinalGradeResult{}, err
	}

	byComponent := make(map[uuid.UUID]float64, len(entries))
	for i := range entries {
		byComponent[entries[i].GradeEntryComponentID] = entries[i].GradeEntryScore
	}

	out := FinalGradeResult{Scores: make(map[string]float64, len(components))}
	weighted := 0.0
	for i := range components {
		comp := &components[i]
		score, ok := byComponent[comp.GradeComponentID]
		if !ok {
			out.Missing = append(out.Missing, comp.GradeComponentID)
			continue
		}
		out.Scores[comp.GradeComponentName] = score
		weighted += score * float64(comp.GradeComponentWeight) / 100.0
	}
	if len(out.Missing) > 0 {
		out.Scores = nil
		return out, nil
	}

	final := RoundScore(weighted)
	out.Defined = true
	out.Score = &final
	return out, nil
}

/* =========================
   Aggregator
========================= */

type Aggregator struct {
	DB       *gorm.DB
	Programs reference.StudentProgramProvider
}

func NewAggregator(db *gorm.DB, programs reference.StudentProgramProvider) *Aggregator {
	return &Aggregator{DB: db, Programs: programs}
}

// ActiveComponents loads the program's active component set.
func (a *Aggregator) ActiveComponents(ctx context.Context, programType string) ([]model.GradeComponentModel, error) {
	var components []model.GradeComponentModel
	if err := a.DB.WithContext(ctx).
		Where("grade_component_program_type = ? AND grade_component_is_active = TRUE", programType).
		Order("grade_component_name").
		Find(&components).Error; err != nil {
		return nil, derr.Storage(err)
	}
	return components, nil
}

// FinalGrade resolves the student's program for the period, loads that
// program's active components plus the student's entries, and computes the
// weighted final. Read-only; runs outside any lock.
func (a *Aggregator) FinalGrade(ctx context.Context, studentID, subjectID, periodID uuid.UUID) (FinalGradeResult, error) {
	programType, err := a.Programs.ProgramType(ctx, studentID, periodID)
	if err != nil {
		return FinalGradeResult{}, err
	}

	components, err := a.ActiveComponents(ctx, programType)
	if err != nil {
		return FinalGradeResult{}, err
	}

	var entries []model.GradeEntryModel
	if err := a.DB.WithContext(ctx).
		Where("grade_entry_student_id = ? AND grade_entry_subject_id = ? AND grade_entry_period_id = ?",
			studentID, subjectID, periodID).
		Find(&entries).Error; err != nil {
		return FinalGradeResult{}, derr.Storage(err)
	}

	return ComputeFinal(components, entries)
}
