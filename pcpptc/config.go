package pcpptc

import (
	"github.com/covertour/pcpptc/fracsol"
	"github.com/covertour/pcpptc/gridmodel"
	"github.com/covertour/pcpptc/matching"
	"github.com/covertour/pcpptc/simplex"
	"github.com/covertour/pcpptc/strips"
)

// Config tunes every stage of Solve. The zero value is not valid; use
// DefaultConfig and override individual fields.
type Config struct {
	// Strategy picks atomic-strip base orientations per vertex.
	Strategy strips.Strategy
	// K is the maximum number of base orientations per vertex; R is how
	// many times each is repeated into a concrete strip.
	K, R int

	// Solver runs the LP relaxation and every local re-optimization MIP.
	Solver simplex.Solver
	// IntegralizeDepth bounds the branch-and-bound search after the LP
	// relaxation.
	IntegralizeDepth int

	// Oracle solves the minimum-weight perfect matching over the
	// auxiliary strip-end graph.
	Oracle matching.Oracle

	// CycleCoverOptSteps/CycleCoverOptSize tune the LNS pass run on the
	// cycle cover before cycle connection.
	CycleCoverOptSteps int
	CycleCoverOptSize  int
	// TourOptSteps/TourOptSize tune the LNS pass run on the connected
	// tour afterward.
	TourOptSteps int
	TourOptSize  int
}

// DefaultConfig returns the tuning this module ships with absent
// operator overrides.
func DefaultConfig() Config {
	return Config{
		Strategy:           strips.Equiangular{},
		K:                  3,
		R:                  2,
		Solver:             simplex.NewTwoPhase(),
		IntegralizeDepth:   50,
		Oracle:             matching.Greedy{},
		CycleCoverOptSteps: 25,
		CycleCoverOptSize:  50,
		TourOptSteps:       25,
		TourOptSize:        50,
	}
}

// Callbacks lets a caller observe intermediate pipeline state without
// changing Solve's control flow. Every field may be nil.
type Callbacks struct {
	// OnFractionalSolution is invoked once, after the LP relaxation,
	// with the solution and its objective value.
	OnFractionalSolution func(sol *fracsol.Solution, objective float64)
	// OnGridSolution is invoked once per cycle in the matched cycle
	// cover, before cycle connection, with the cycle, its touring cost,
	// and its net prize (opportunity loss resolved minus touring cost).
	OnGridSolution func(cycle gridmodel.Cycle, touringCost, netPrize float64)
}

func (cb Callbacks) fractional(sol *fracsol.Solution, objective float64) {
	if cb.OnFractionalSolution != nil {
		cb.OnFractionalSolution(sol, objective)
	}
}

func (cb Callbacks) gridSolution(c gridmodel.Cycle, touringCost, netPrize float64) {
	if cb.OnGridSolution != nil {
		cb.OnGridSolution(c, touringCost, netPrize)
	}
}
