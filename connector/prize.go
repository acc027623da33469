package connector

import (
	"math"

	"github.com/covertour/pcpptc/gridmodel"
)

// NetPrize computes each cycle's net prize: the opportunity loss it
// alone resolves minus its own touring cost. Coverage credit is assigned
// first-cover-wins across cycles in the given order — the first cycle to
// reach a vertex absorbs the reduction in opportunity loss from 0 to its
// own visit count there, the next absorbs the further reduction from
// that count onward, and so on. This mirrors how a single tour's final
// coverage report is built once all cycles merge, letting each
// not-yet-merged cycle be scored on the share of the penalty it alone
// would resolve.
func NetPrize(inst *gridmodel.Instance, cycles []gridmodel.Cycle) []float64 {
	cumulative := make(map[gridmodel.VertexHandle]int)
	prizes := make([]float64, len(cycles))

	for i, c := range cycles {
		visits := c.VisitCounts()
		var penalty float64
		for v, k := range visits {
			cov := inst.CoverageOf(v)
			before := cov.OpportunityLoss(cumulative[v])
			after := cov.OpportunityLoss(cumulative[v] + k)
			switch {
			case math.IsInf(before, 1) && math.IsInf(after, 1):
				// Still unmet even after this cycle's visits: no credit yet.
			case math.IsInf(before, 1):
				penalty = math.Inf(1)
			default:
				penalty += before - after
			}
			cumulative[v] += k
		}
		prizes[i] = penalty - c.TouringCost(inst.Cost)
	}

	return prizes
}
