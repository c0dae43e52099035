// file: internals/features/school/grades/service/grade_aggregator_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"globalenglish_backend/internals/constants"
	"globalenglish_backend/internals/features/school/grades/model"
	"globalenglish_backend/internals/helpers/derr"
)

func component(name string, weight int) model.GradeComponentModel {
	return model.GradeComponentModel{
		GradeComponentID:          uuid.New(),
		GradeComponentProgramType: constants.ProgramInsideClassroom,
		GradeComponentName:        name,
		GradeComponentWeight:      weight,
		GradeComponentIsActive:    true,
	}
}

func entryFor(comp model.GradeComponentModel, score float64) model.GradeEntryModel {
	return model.GradeEntryModel{
		GradeEntryID:          uuid.New(),
		GradeEntryComponentID: comp.GradeComponentID,
		GradeEntryScore:       score,
	}
}

func TestRoundScoreHalfUpOneDecimal(t *testing.T) {
	assert.Equal(t, 8.1, RoundScore(8.05))
	assert.Equal(t, 8.0, RoundScore(8.04))
	assert.Equal(t, 8.1, RoundScore(8.1))
	assert.Equal(t, 7.3, RoundScore(7.25))
	assert.Equal(t, 0.0, RoundScore(0.04))
}

func TestValidateWeights(t *testing.T) {
	require.NoError(t, ValidateWeights([]model.GradeComponentModel{
		component("Exams", 30), component("Homework", 30), component("Participation", 40),
	}))

	err := ValidateWeights([]model.GradeComponentModel{
		component("Exams", 30), component("Homework", 30),
	})
	require.Error(t, err)
	assert.True(t, derr.IsKind(err, derr.KindInconsistentWeights))

	err = ValidateWeights(nil)
	require.Error(t, err)
	assert.True(t, derr.IsKind(err, derr.KindInconsistentWeights))
}

func TestComputeFinalWeightedSum(t *testing.T) {
	exams := component("Exams", 30)
	homework := component("Homework", 30)
	participation := component("Participation", 40)
	components := []model.GradeComponentModel{exams, homework, participation}

	// 8.0*0.30 + 7.0*0.30 + 9.0*0.40 = 8.1
	res, err := ComputeFinal(components, []model.GradeEntryModel{
		entryFor(exams, 8.0),
		entryFor(homework, 7.0),
		entryFor(participation, 9.0),
	})
	require.NoError(t, err)
	require.True(t, res.Defined)
	require.NotNil(t, res.Score)
	assert.Equal(t, 8.1, *res.Score)
}

func TestComputeFinalMissingEntryIsUndefined(t *testing.T) {
	exams := component("Exams", 30)
	homework := component("Homework", 30)
	participation := component("Participation", 40)
	components := []model.GradeComponentModel{exams, homework, participation}

	res, err := ComputeFinal(components, []model.GradeEntryModel{
		entryFor(exams, 8.0),
		entryFor(participation, 9.0),
	})
	require.NoError(t, err)
	assert.False(t, res.Defined)
	assert.Nil(t, res.Score)
	require.Len(t, res.Missing, 1)
	assert.Equal(t, homework.GradeComponentID, res.Missing[0])
}

type programStub struct {
	gotStudent uuid.UUID
	gotPeriod  uuid.UUID
	err        error
}

func (p *programStub) ProgramType(_ context.Context, studentID, periodID uuid.UUID) (string, error) {
	p.gotStudent, p.gotPeriod = studentID, periodID
	return "", p.err
}

// The program lookup is scoped to the requested period: a student may sit
// in different programs across periods, and the wrong period would pick the
// wrong component set.
func TestFinalGradeResolvesProgramForRequestedPeriod(t *testing.T) {
	studentID := uuid.New()
	periodID := uuid.New()
	stub := &programStub{err: derr.Newf(derr.KindUnknownStudent, "student %s has no enrollment in period %s", studentID, periodID)}

	agg := NewAggregator(nil, stub)
	_, err := agg.FinalGrade(context.Background(), studentID, uuid.New(), periodID)
	require.Error(t, err)
	assert.True(t, derr.IsKind(err, derr.KindUnknownStudent))

	assert.Equal(t, studentID, stub.gotStudent)
	assert.Equal(t, periodID, stub.gotPeriod)
}

func TestComputeFinalInconsistentWeightsRefused(t *testing.T) {
	exams := component("Exams", 60)
	homework := component("Homework", 60)

	_, err := ComputeFinal([]model.GradeComponentModel{exams, homework}, []model.GradeEntryModel{
		entryFor(exams, 8.0),
		entryFor(homework, 7.0),
	})
	require.Error(t, err)
	assert.True(t, derr.IsKind(err, derr.KindInconsistentWeights))
}
