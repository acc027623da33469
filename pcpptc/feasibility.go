package pcpptc

import (
	"math"

	"github.com/covertour/pcpptc/fracsol"
	"github.com/covertour/pcpptc/gridmodel"
)

// feasibilityEpsilon bounds the rounding tolerance used by the flow and
// coverage checks below; it is tighter than fracsol.Epsilon (1e-3), the
// threshold below which fracsol.Solution drops an entry.
const feasibilityEpsilon = 1e-5

// flowAt sums the passage weight leaving v across the edge toward out,
// doubling the u-turn passage back through out itself since it crosses
// that edge twice.
func flowAt(inst *gridmodel.Instance, v, out gridmodel.VertexHandle, sol *fracsol.Solution) float64 {
	var sum float64
	nbrs, _ := inst.Graph.Neighbors(v)
	for _, n := range nbrs {
		p := gridmodel.NewPassage(v, out, n)
		x := sol.At(p)
		if n == out {
			sum += 2 * x
		} else {
			sum += x
		}
	}

	return sum
}

// IsFlowFeasible reports whether every edge of inst carries equal
// passage weight in both directions.
func IsFlowFeasible(inst *gridmodel.Instance, sol *fracsol.Solution) bool {
	for _, v := range inst.Graph.Vertices() {
		nbrs, _ := inst.Graph.Neighbors(v)
		for _, w := range nbrs {
			diff := math.Abs(flowAt(inst, v, w, sol) - flowAt(inst, w, v, sol))
			if diff > feasibilityEpsilon {
				return false
			}
		}
	}

	return true
}

// IsCovered reports whether every vertex's summed passage weight meets
// its mandatory coverage requirement.
func IsCovered(inst *gridmodel.Instance, sol *fracsol.Solution) bool {
	for v := range inst.Coverage {
		cov := inst.CoverageOf(v)
		if sol.Coverage(v) < float64(cov.MandatoryCount())-feasibilityEpsilon {
			return false
		}
	}

	return true
}

// ArePassagesBetweenNeighbors reports whether every passage carried by
// sol only references graph-adjacent endpoints.
func ArePassagesBetweenNeighbors(inst *gridmodel.Instance, sol *fracsol.Solution) bool {
	ok := true
	sol.Each(func(p gridmodel.Passage, _ float64) {
		if !inst.Graph.IsNeighbor(p.V, p.A) || !inst.Graph.IsNeighbor(p.V, p.B) {
			ok = false
		}
	})

	return ok
}

// CheckFeasibility reports whether sol is a feasible, integral cycle
// cover over inst: integral, flow-balanced, sufficiently covered, and
// using only graph-adjacent passages. Unlike Validate, it operates
// directly on a fracsol.Solution, so intermediate pipeline output can be
// checked before (or instead of) decoding it into cycles.
func CheckFeasibility(inst *gridmodel.Instance, sol *fracsol.Solution) bool {
	return sol.IsIntegral() &&
		IsFlowFeasible(inst, sol) &&
		IsCovered(inst, sol) &&
		ArePassagesBetweenNeighbors(inst, sol)
}
