package lp

import (
	"github.com/covertour/pcpptc/fracsol"
	"github.com/covertour/pcpptc/simplex"
)

// Solve runs solver over the model's LP and projects the result into a
// fracsol.Solution over passage variables, discarding penalty-variable
// values (callers that need opportunity-loss accounting can recompute it
// from a final cycle's visit counts, via gridmodel.Instance.AnalyzeCoverage).
func Solve(solver simplex.Solver, m *Model) (*fracsol.Solution, float64, error) {
	res, err := solver.Solve(m.Problem)
	if err != nil {
		return nil, 0, err
	}

	sol := fracsol.New()
	for p, v := range m.solutionFromValues(res.Values) {
		if err := sol.Set(p, v); err != nil {
			return nil, 0, err
		}
	}

	return sol, res.Objective, nil
}
