package pcpptc

import (
	"github.com/covertour/pcpptc/fracsol"
	"github.com/covertour/pcpptc/gridmodel"
)

// cyclesToSolution flattens a cycle cover (or a single tour) into an
// integral fracsol.Solution, one unit per passage occurrence, so it can
// be handed to the lns package's area-based re-optimizers.
func cyclesToSolution(cycles []gridmodel.Cycle) (*fracsol.Solution, error) {
	sol := fracsol.New()
	for _, c := range cycles {
		for _, p := range c.Passages {
			if err := sol.Add(p, 1); err != nil {
				return nil, err
			}
		}
	}

	return sol, nil
}

// decomposeCycles walks an integral solution's passages back into closed
// vertex walks. Unlike a single-visit-per-vertex decomposition, a vertex
// may hold several passages (one per visit); each is consumed at most
// once, matched to the walk's current arrival neighbor.
func decomposeCycles(sol *fracsol.Solution) []gridmodel.Cycle {
	pending := make(map[gridmodel.VertexHandle][]gridmodel.Passage)
	sol.Each(func(p gridmodel.Passage, value float64) {
		n := int(value + 0.5)
		for i := 0; i < n; i++ {
			pending[p.V] = append(pending[p.V], p)
		}
	})
	taken := make(map[gridmodel.VertexHandle][]bool, len(pending))
	for v, ps := range pending {
		taken[v] = make([]bool, len(ps))
	}

	take := func(v, via gridmodel.VertexHandle) (gridmodel.Passage, bool) {
		for i, p := range pending[v] {
			if taken[v][i] {
				continue
			}
			if p.A == via || p.B == via {
				taken[v][i] = true
				return p, true
			}
		}

		return gridmodel.Passage{}, false
	}

	var cycles []gridmodel.Cycle
	for v, ps := range pending {
		for i := range ps {
			if taken[v][i] {
				continue
			}
			taken[v][i] = true
			start := v
			p := ps[i]
			walk := []gridmodel.VertexHandle{start}
			cur := p.B
			prevArrival := start
			for {
				walk = append(walk, cur)
				if cur == start {
					break
				}
				next, ok := take(cur, prevArrival)
				if !ok {
					break
				}
				prevArrival, cur = cur, next.Other(prevArrival)
			}
			cycles = append(cycles, gridmodel.NewCycle(walkToPassages(walk)))
		}
	}

	return cycles
}

// walkToPassages derives passages from a closed vertex walk whose first
// and last entries are the same (repeated) start vertex.
func walkToPassages(walk []gridmodel.VertexHandle) []gridmodel.Passage {
	if len(walk) < 2 {
		return nil
	}
	body := walk[:len(walk)-1]
	n := len(body)
	passages := make([]gridmodel.Passage, n)
	for i, v := range body {
		prev := body[(i-1+n)%n]
		next := body[(i+1)%n]
		passages[i] = gridmodel.NewPassage(v, prev, next)
	}

	return passages
}
