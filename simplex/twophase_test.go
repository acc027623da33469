package simplex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTwoPhaseSolvesSimpleEquality(t *testing.T) {
	p := Problem{
		NumVars:   2,
		Objective: []float64{1, 1},
		Equalities: []Constraint{
			{Coeffs: []float64{1, 1}, RHS: 1},
		},
	}
	res, err := NewTwoPhase().Solve(p)
	require.NoError(t, err)
	require.InDelta(t, 1, res.Objective, 1e-6)
	require.InDelta(t, 1, res.Values[0]+res.Values[1], 1e-6)
}

func TestTwoPhaseSolvesAtLeastConstraint(t *testing.T) {
	// minimize x1+2x2 s.t. x1+x2 >= 3 -> optimum at x1=3,x2=0, obj=3.
	p := Problem{
		NumVars:   2,
		Objective: []float64{1, 2},
		AtLeasts: []Constraint{
			{Coeffs: []float64{1, 1}, RHS: 3},
		},
	}
	res, err := NewTwoPhase().Solve(p)
	require.NoError(t, err)
	require.InDelta(t, 3, res.Objective, 1e-6)
}

func TestTwoPhaseDetectsInfeasible(t *testing.T) {
	p := Problem{
		NumVars:   1,
		Objective: []float64{1},
		Equalities: []Constraint{
			{Coeffs: []float64{1}, RHS: 5},
			{Coeffs: []float64{1}, RHS: -5},
		},
	}
	_, err := NewTwoPhase().Solve(p)
	require.ErrorIs(t, err, ErrInfeasible)
}

func TestTwoPhaseDetectsUnbounded(t *testing.T) {
	p := Problem{
		NumVars:   1,
		Objective: []float64{-1},
	}
	_, err := NewTwoPhase().Solve(p)
	require.ErrorIs(t, err, ErrUnbounded)
}

func TestTwoPhaseMixedConstraints(t *testing.T) {
	// minimize x1+x2+x3
	// s.t. x1+x2 = 2
	//      x2+x3 >= 1
	// optimum: x1=2,x2=0,x3=1 -> obj=3, or x1=1,x2=1,x3=0 -> obj=2.
	p := Problem{
		NumVars:   3,
		Objective: []float64{1, 1, 1},
		Equalities: []Constraint{
			{Coeffs: []float64{1, 1, 0}, RHS: 2},
		},
		AtLeasts: []Constraint{
			{Coeffs: []float64{0, 1, 1}, RHS: 1},
		},
	}
	res, err := NewTwoPhase().Solve(p)
	require.NoError(t, err)
	require.InDelta(t, 2, res.Objective, 1e-6)
}

func TestTwoPhaseRejectsDimensionMismatch(t *testing.T) {
	p := Problem{
		NumVars:   2,
		Objective: []float64{1, 1},
		Equalities: []Constraint{
			{Coeffs: []float64{1}, RHS: 1},
		},
	}
	_, err := NewTwoPhase().Solve(p)
	require.ErrorIs(t, err, ErrDimensionMismatch)
}
