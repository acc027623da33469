package lns

import (
	"github.com/covertour/pcpptc/fracsol"
	"github.com/covertour/pcpptc/gridmodel"
	"github.com/covertour/pcpptc/lp"
	"github.com/covertour/pcpptc/simplex"
)

// Config tunes an LNS run shared by CycleCoverOptimizer and TourOptimizer.
type Config struct {
	Solver           simplex.Solver
	Steps            int
	AreaSize         int
	IntegralizeDepth int
}

// visitsFromSolution rounds a (possibly fractional, possibly integral)
// solution's per-vertex coverage to the nearest integer visit count.
func visitsFromSolution(inst *gridmodel.Instance, sol *fracsol.Solution) map[gridmodel.VertexHandle]int {
	visits := make(map[gridmodel.VertexHandle]int, inst.Graph.NumVertices())
	for _, v := range inst.Graph.Vertices() {
		visits[v] = int(sol.Coverage(v) + 0.5)
	}

	return visits
}

// resolveArea builds and integralizes the local MIP over one selected
// area, returning the translated sub-solution ready for splicing. Returns
// ok=false if the area instance is degenerate (no vertices).
func (c Config) resolveArea(inst *gridmodel.Instance, area map[gridmodel.VertexHandle]bool, sol *fracsol.Solution) (*fracsol.Solution, bool, error) {
	sub := buildSubInstance(inst, area, sol)
	if sub.Instance.Graph.NumVertices() == 0 {
		return nil, false, nil
	}

	model, err := lp.NewModel(sub.Instance)
	if err == lp.ErrEmptyInstance {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	integral, _, err := model.Integralize(c.Solver, c.IntegralizeDepth)
	if err != nil {
		return nil, false, err
	}

	return sub.translate(integral), true, nil
}
