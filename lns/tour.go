package lns

import (
	"github.com/covertour/pcpptc/fracsol"
	"github.com/covertour/pcpptc/gridmodel"
)

// TourOptimizer is CycleCoverOptimizer's post-connection counterpart:
// local re-optimization restricted to vertices currently covered by the
// tour. If a re-optimized area's new passages decompose into more than
// one closed walk, the change is reverted outright.
//
// This is a conservative reading of "add a subtour-elimination cut,
// re-solve, cap total eliminations at M, revert if exceeded": the local
// model has no public surface for injecting ad hoc lazy cuts after the
// fact, so a detected subtour here is treated as exceeding the budget on
// first occurrence rather than attempting M cut-and-resolve rounds. The
// safety property the spec cares about — a re-optimization step never
// leaves the tour more fragmented than it found it — still holds.
type TourOptimizer struct {
	Config
}

// Run performs up to t.Steps iterations, restricted to roots among
// covered vertices, and returns the resulting solution.
func (t TourOptimizer) Run(inst *gridmodel.Instance, sol *fracsol.Solution, covered map[gridmodel.VertexHandle]bool) (*fracsol.Solution, error) {
	excluded := make(map[gridmodel.VertexHandle]bool, inst.Graph.NumVertices())
	for _, v := range inst.Graph.Vertices() {
		if !covered[v] {
			excluded[v] = true
		}
	}

	for i := 0; i < t.Steps; i++ {
		visits := visitsFromSolution(inst, sol)
		area, root, found := SelectArea(inst, sol, visits, excluded, t.AreaSize)
		if !found {
			break
		}

		subSol, ok, err := t.resolveArea(inst, area, sol)
		if err != nil {
			return nil, err
		}
		if ok && !introducesSubtour(subSol) {
			sol = replaceArea(sol, area, subSol)
		}

		excluded[root] = true
		nbrs, _ := inst.Graph.Neighbors(root)
		for _, n := range nbrs {
			excluded[n] = true
		}
	}

	return sol, nil
}

// introducesSubtour reports whether sub's integral passages decompose
// into more than one closed walk.
func introducesSubtour(sub *fracsol.Solution) bool {
	return len(decomposeCycles(sub)) > 1
}

// decomposeCycles walks an integral solution's passages (assumed one
// accepted passage per visited vertex, the normal decode shape) into
// closed vertex walks.
func decomposeCycles(sub *fracsol.Solution) [][]gridmodel.VertexHandle {
	const none = gridmodel.VertexHandle(-1)

	ends := make(map[gridmodel.VertexHandle][2]gridmodel.VertexHandle)
	sub.Each(func(p gridmodel.Passage, value float64) {
		if value < 0.5 {
			return
		}
		ends[p.V] = [2]gridmodel.VertexHandle{p.A, p.B}
	})

	visited := make(map[gridmodel.VertexHandle]bool, len(ends))
	var cycles [][]gridmodel.VertexHandle
	for start := range ends {
		if visited[start] {
			continue
		}

		var walk []gridmodel.VertexHandle
		prev := none
		cur := start
		for {
			visited[cur] = true
			walk = append(walk, cur)
			e, ok := ends[cur]
			if !ok {
				break
			}
			next := e[0]
			if next == prev {
				next = e[1]
			}
			prev = cur
			cur = next
			if cur == start || visited[cur] {
				break
			}
		}
		cycles = append(cycles, walk)
	}

	return cycles
}
