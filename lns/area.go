package lns

import (
	"github.com/covertour/pcpptc/fracsol"
	"github.com/covertour/pcpptc/gridmodel"
)

// localCost is the per-vertex cost term area selection scores on: the
// current solution's passage-cost contribution centered at v, plus v's
// opportunity loss at its present visit count.
func localCost(v gridmodel.VertexHandle, inst *gridmodel.Instance, sol *fracsol.Solution, visits map[gridmodel.VertexHandle]int) float64 {
	var passageCost float64
	sol.Each(func(p gridmodel.Passage, value float64) {
		if p.V == v {
			passageCost += value * p.Cost(inst.Cost)
		}
	})

	return passageCost + inst.CoverageOf(v).OpportunityLoss(visits[v])
}

// SelectArea scores every candidate root not in excluded by its own
// local cost plus its neighbors', picks the highest-scoring root, and
// BFS-expands it to size vertices (fewer if the component is smaller).
// It reports false if every vertex is excluded.
func SelectArea(inst *gridmodel.Instance, sol *fracsol.Solution, visits map[gridmodel.VertexHandle]int, excluded map[gridmodel.VertexHandle]bool, size int) (map[gridmodel.VertexHandle]bool, gridmodel.VertexHandle, bool) {
	var root gridmodel.VertexHandle
	bestScore := 0.0
	found := false

	for _, v := range inst.Graph.Vertices() {
		if excluded[v] {
			continue
		}
		nbrs, _ := inst.Graph.Neighbors(v)
		score := localCost(v, inst, sol, visits)
		for _, n := range nbrs {
			score += localCost(n, inst, sol, visits)
		}
		if !found || score > bestScore {
			root, bestScore, found = v, score, true
		}
	}
	if !found {
		return nil, 0, false
	}

	area := map[gridmodel.VertexHandle]bool{root: true}
	queue := []gridmodel.VertexHandle{root}
	for len(queue) > 0 && len(area) < size {
		v := queue[0]
		queue = queue[1:]
		nbrs, _ := inst.Graph.Neighbors(v)
		for _, n := range nbrs {
			if area[n] {
				continue
			}
			area[n] = true
			queue = append(queue, n)
			if len(area) >= size {
				break
			}
		}
	}

	return area, root, true
}
