package lns

import (
	"github.com/covertour/pcpptc/fracsol"
	"github.com/covertour/pcpptc/gridmodel"
)

// CycleCoverOptimizer repeatedly re-optimizes a local area of a
// fractional (or already-integral) cycle-cover solution: select an area,
// solve a local integer MIP restricted to it with crossing edges frozen,
// and splice the result back in. Used before cycle connection.
type CycleCoverOptimizer struct {
	Config
}

// Run performs up to c.Steps iterations, excluding each chosen root and
// its neighbors from future root selection, and returns the resulting
// solution. It stops early once every vertex has been excluded.
func (c CycleCoverOptimizer) Run(inst *gridmodel.Instance, sol *fracsol.Solution) (*fracsol.Solution, error) {
	excluded := make(map[gridmodel.VertexHandle]bool)

	for i := 0; i < c.Steps; i++ {
		visits := visitsFromSolution(inst, sol)
		area, root, found := SelectArea(inst, sol, visits, excluded, c.AreaSize)
		if !found {
			break
		}

		subSol, ok, err := c.resolveArea(inst, area, sol)
		if err != nil {
			return nil, err
		}
		if ok {
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
