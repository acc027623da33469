package matching

import (
	"errors"
	"math"
)

// ErrOddNodeCount indicates a cost matrix with an odd number of nodes was
// given to an Oracle; every strip contributes exactly two ends, so a
// correctly-built Graph never triggers this.
var ErrOddNodeCount = errors.New("matching: node count is odd")

// ErrNoFeasibleMatching indicates a remaining node has no finite-cost
// partner left among the others.
var ErrNoFeasibleMatching = errors.New("matching: no feasible pairing for a remaining node")

// Oracle solves minimum-weight perfect matching over an arbitrary
// even-cardinality node set, given as a symmetric cost matrix with
// math.Inf(1) marking absent edges. It returns the node index pairs of
// the matching.
type Oracle interface {
	Match(cost [][]float64) ([][2]int, error)
}

// Greedy is the default Oracle: deterministic nearest-remaining pairing
// (generalizing the pack's greedy nearest-neighbor matching idiom) followed
// by a local-improvement pass that swaps pair partners wherever doing so
// reduces total cost.
type Greedy struct{}

func (Greedy) Match(cost [][]float64) ([][2]int, error) {
	n := len(cost)
	if n%2 != 0 {
		return nil, ErrOddNodeCount
	}
	if n == 0 {
		return nil, nil
	}

	remaining := make([]int, n)
	for i := range remaining {
		remaining[i] = i
	}

	var pairs [][2]int
	for len(remaining) > 0 {
		u := remaining[len(remaining)-1]
		remaining = remaining[:len(remaining)-1]

		best := -1
		bestCost := math.Inf(1)
		for i, v := range remaining {
			w := cost[u][v]
			if w < bestCost {
				bestCost, best = w, i
			}
		}
		if best == -1 || math.IsInf(bestCost, 1) {
			return nil, ErrNoFeasibleMatching
		}
		v := remaining[best]
		remaining = append(remaining[:best], remaining[best+1:]...)
		pairs = append(pairs, [2]int{u, v})
	}

	localImprove(cost, pairs)

	return pairs, nil
}

// localImprove repeatedly looks for a pair of matched pairs whose partners
// can be swapped for a lower total cost, mirroring the pack's two-opt
// local-search shape applied to matching edges instead of tour edges.
func localImprove(cost [][]float64, pairs [][2]int) {
	improved := true
	for improved {
		improved = false
		for i := 0; i < len(pairs); i++ {
			for j := i + 1; j < len(pairs); j++ {
				a, b := pairs[i], pairs[j]
				current := cost[a[0]][a[1]] + cost[b[0]][b[1]]

				swapCross := cost[a[0]][b[1]] + cost[b[0]][a[1]]
				swapStraight := cost[a[0]][b[0]] + cost[a[1]][b[1]]

				switch {
				case swapCross < current && swapCross <= swapStraight:
					pairs[i] = [2]int{a[0], b[1]}
					pairs[j] = [2]int{b[0], a[1]}
					improved = true
				case swapStraight < current:
					pairs[i] = [2]int{a[0], b[0]}
					pairs[j] = [2]int{a[1], b[1]}
					improved = true
				}
			}
		}
	}
}
