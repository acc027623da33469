package strips

import (
	"math"
	"sort"

	"github.com/covertour/pcpptc/fracsol"
	"github.com/covertour/pcpptc/gridmodel"
)

// NeighborAdaptive uses incident-edge directions as candidate
// orientations. When there are more neighbors than k, it keeps the k
// whose direction absorbs the most LP usage. When there are fewer, it
// fills the remaining slots greedily to minimize the worst-case projected
// cost increase across current fractional passages.
type NeighborAdaptive struct{}

func (n NeighborAdaptive) baseOrientations(v gridmodel.VertexHandle, inst *gridmodel.Instance, sol *fracsol.Solution, k int) []float64 {
	if k <= 0 {
		return nil
	}
	nbrs, _ := inst.Graph.Neighbors(v)
	pv, _ := inst.Graph.Position(v)

	type candidate struct {
		theta float64
		usage float64
	}
	cands := make([]candidate, 0, len(nbrs))
	seen := make(map[float64]bool, len(nbrs))
	for _, nb := range nbrs {
		pn, _ := inst.Graph.Position(nb)
		theta := normalizeOrientation(math.Atan2(pn.Y-pv.Y, pn.X-pv.X))
		if seen[theta] {
			continue
		}
		seen[theta] = true
		cands = append(cands, candidate{theta: theta})
	}

	if sol != nil {
		sol.Each(func(p gridmodel.Passage, value float64) {
			if p.V != v {
				return
			}
			pa, _ := inst.Graph.Position(p.A)
			pb, _ := inst.Graph.Position(p.B)
			dirA := normalizeOrientation(math.Atan2(pa.Y-pv.Y, pa.X-pv.X))
			dirB := normalizeOrientation(math.Atan2(pb.Y-pv.Y, pb.X-pv.X))
			for i := range cands {
				if orientationDistance(cands[i].theta, dirA) < 1e-9 {
					cands[i].usage += value
				}
				if orientationDistance(cands[i].theta, dirB) < 1e-9 {
					cands[i].usage += value
				}
			}
		})
	}

	sort.SliceStable(cands, func(i, j int) bool { return cands[i].usage > cands[j].usage })

	if len(cands) >= k {
		out := make([]float64, k)
		for i := 0; i < k; i++ {
			out[i] = cands[i].theta
		}

		return out
	}

	selected := make([]float64, 0, k)
	for _, c := range cands {
		selected = append(selected, c.theta)
	}

	// Fill remaining slots by minimizing the worst-case cost increase
	// across current fractional passages, argmin_i m[:,i]·w with
	// w = squared min-cost over already-selected orientations.
	spacing := math.Pi / float64(k)
	for len(selected) < k {
		var bestCandidate float64
		bestScore := math.Inf(1)
		for i := 0; i < k; i++ {
			cand := normalizeOrientation(float64(i) * spacing)
			if containsOrientation(selected, cand) {
				continue
			}
			score := n.fillScore(v, inst, sol, selected, cand)
			if score < bestScore {
				bestScore, bestCandidate = score, cand
			}
		}
		selected = append(selected, bestCandidate)
	}

	return selected
}

func containsOrientation(set []float64, theta float64) bool {
	for _, s := range set {
		if orientationDistance(s, theta) < 1e-9 {
			return true
		}
	}

	return false
}

// fillScore evaluates adding candidate to the already-selected set: for
// every current fractional passage at v, the squared minimum forced-turn
// cost over already-selected orientations acts as weight w; the score is
// the sum of w times the forced cost at the candidate orientation,
// rewarding candidates that cheaply absorb passages the existing set
// handles poorly.
func (n NeighborAdaptive) fillScore(v gridmodel.VertexHandle, inst *gridmodel.Instance, sol *fracsol.Solution, selected []float64, candidate float64) float64 {
	if sol == nil {
		return 0
	}
	var total float64
	sol.Each(func(p gridmodel.Passage, value float64) {
		if p.V != v {
			return
		}
		minSelected := math.Inf(1)
		for _, theta := range selected {
			c := inst.Cost.TurnForced(p.V, p.A, p.B, theta)
			if c < minSelected {
				minSelected = c
			}
		}
		if math.IsInf(minSelected, 1) {
			minSelected = 0
		}
		w := minSelected * minSelected
		total += w * value * inst.Cost.TurnForced(p.V, p.A, p.B, candidate)
	})

	return total
}
