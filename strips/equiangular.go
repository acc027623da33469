package strips

import (
	"math"

	"github.com/covertour/pcpptc/fracsol"
	"github.com/covertour/pcpptc/gridmodel"
)

// Equiangular picks k orientations equiangularly spaced by π/k, starting
// from whichever base angle (among a sample set of 10 stepwise candidates
// plus the vertex's own neighbor directions) minimizes a weighted sum of
// (i) the angular deviation of incident edges from the nearest strip
// orientation and (ii) the projected LP cost increase from forcing
// current fractional passages onto the strip set.
type Equiangular struct {
	// CostWeight balances term (ii) against term (i); 0 disables it.
	CostWeight float64
}

func (e Equiangular) baseOrientations(v gridmodel.VertexHandle, inst *gridmodel.Instance, sol *fracsol.Solution, k int) []float64 {
	if k <= 0 {
		return nil
	}
	spacing := math.Pi / float64(k)

	nbrs, _ := inst.Graph.Neighbors(v)
	candidates := make([]float64, 0, 10+len(nbrs))
	for i := 0; i < 10; i++ {
		candidates = append(candidates, normalizeOrientation(float64(i)*spacing/10))
	}
	pv, _ := inst.Graph.Position(v)
	for _, n := range nbrs {
		pn, _ := inst.Graph.Position(n)
		candidates = append(candidates, normalizeOrientation(math.Atan2(pn.Y-pv.Y, pn.X-pv.X)))
	}

	best := candidates[0]
	bestScore := math.Inf(1)
	for _, base := range candidates {
		orientations := equiangularSet(base, k, spacing)
		score := e.score(v, inst, sol, orientations, nbrs)
		if score < bestScore {
			best, bestScore = base, score
		}
	}

	return equiangularSet(best, k, spacing)
}

func equiangularSet(base float64, k int, spacing float64) []float64 {
	out := make([]float64, k)
	for i := 0; i < k; i++ {
		out[i] = normalizeOrientation(base + float64(i)*spacing)
	}

	return out
}

// score sums (i) the angular deviation of each incident edge from its
// nearest strip orientation and (ii) the LP cost increase incurred by
// forcing current fractional passages onto the nearest strip orientation,
// weighted by CostWeight.
func (e Equiangular) score(v gridmodel.VertexHandle, inst *gridmodel.Instance, sol *fracsol.Solution, orientations []float64, nbrs []gridmodel.VertexHandle) float64 {
	var sum float64
	pv, _ := inst.Graph.Position(v)
	for _, n := range nbrs {
		pn, _ := inst.Graph.Position(n)
		dir := normalizeOrientation(math.Atan2(pn.Y-pv.Y, pn.X-pv.X))
		sum += orientationDistance(dir, orientations[nearestOrientation(dir, orientations)])
	}

	if sol == nil || e.CostWeight == 0 {
		return sum
	}
	sol.Each(func(p gridmodel.Passage, value float64) {
		if p.V != v {
			return
		}
		best := math.Inf(1)
		for _, theta := range orientations {
			forced := inst.Cost.TurnForced(p.V, p.A, p.B, theta)
			if forced < best {
				best = forced
			}
		}
		natural := p.TurnCost(inst.Cost)
		sum += e.CostWeight * value * (best - natural)
	})

	return sum
}
