package lns

import (
	"github.com/covertour/pcpptc/fracsol"
	"github.com/covertour/pcpptc/gridmodel"
)

// subInstance is the induced local instance built over an area, with the
// handle translation needed to splice its re-optimized passages back into
// the full instance's solution.
//
// Per-edge and per-vertex cost-model overrides on the full instance are
// not reproduced here: only the global turn factor carries over. This is
// a deliberate simplification recorded in DESIGN.md, on the same grounds
// as lp's cheapest-covering-cycle-cost approximation — area selection is
// a local heuristic pass, not the source of truth for final cost.
type subInstance struct {
	Instance *gridmodel.Instance
	ToOrig   map[gridmodel.VertexHandle]gridmodel.VertexHandle
	ToSub    map[gridmodel.VertexHandle]gridmodel.VertexHandle
}

// crossingVisits returns the solution value currently centered at v whose
// passage reaches outside area through at least one endpoint: the visit
// count the area's local MIP must treat as already satisfied (frozen).
func crossingVisits(v gridmodel.VertexHandle, area map[gridmodel.VertexHandle]bool, sol *fracsol.Solution) int {
	var sum float64
	sol.Each(func(p gridmodel.Passage, value float64) {
		if p.V != v {
			return
		}
		if !area[p.A] || !area[p.B] {
			sum += value
		}
	})

	return int(sum + 0.5)
}

// buildSubInstance builds the induced subgraph over area and freezes
// crossing edges by shifting each boundary vertex's coverage requirement
// down by its current crossing-visit count, so the local MIP only needs
// to supply the remainder via passages fully inside area.
func buildSubInstance(inst *gridmodel.Instance, area map[gridmodel.VertexHandle]bool, sol *fracsol.Solution) *subInstance {
	g := gridmodel.NewGraph()
	toSub := make(map[gridmodel.VertexHandle]gridmodel.VertexHandle, len(area))
	toOrig := make(map[gridmodel.VertexHandle]gridmodel.VertexHandle, len(area))

	for _, v := range inst.Graph.Vertices() {
		if !area[v] {
			continue
		}
		p, _ := inst.Graph.Position(v)
		sv := g.AddVertex(p)
		toSub[v] = sv
		toOrig[sv] = v
	}
	for _, e := range inst.Graph.Edges() {
		u, v := e[0], e[1]
		if area[u] && area[v] {
			_ = g.AddEdge(toSub[u], toSub[v])
		}
	}

	cm := gridmodel.NewCostModel(g, inst.Cost.TurnFactor())

	coverage := make(map[gridmodel.VertexHandle]gridmodel.Coverage, len(area))
	for v := range area {
		cov := inst.CoverageOf(v)
		if len(cov) == 0 {
			continue
		}
		frozen := crossingVisits(v, area, sol)
		if frozen >= len(cov) {
			continue
		}
		coverage[toSub[v]] = append(gridmodel.Coverage(nil), cov[frozen:]...)
	}

	return &subInstance{
		Instance: gridmodel.NewInstance(g, cm, coverage),
		ToOrig:   toOrig,
		ToSub:    toSub,
	}
}

// translate maps a sub-instance solution back into passages over the
// full instance's vertex handles.
func (s *subInstance) translate(sol *fracsol.Solution) *fracsol.Solution {
	out := fracsol.New()
	sol.Each(func(p gridmodel.Passage, value float64) {
		v, a, b := s.ToOrig[p.V], s.ToOrig[p.A], s.ToOrig[p.B]
		_ = out.Set(gridmodel.NewPassage(v, a, b), value)
	})

	return out
}

// replaceArea returns a new solution equal to full with every passage
// fully inside area removed and the sub-solution's (translated) passages
// added in their place.
func replaceArea(full *fracsol.Solution, area map[gridmodel.VertexHandle]bool, sub *fracsol.Solution) *fracsol.Solution {
	out := fracsol.New()
	full.Each(func(p gridmodel.Passage, value float64) {
		if area[p.V] && area[p.A] && area[p.B] {
			return
		}
		_ = out.Set(p, value)
	})
	sub.Each(func(p gridmodel.Passage, value float64) {
		_ = out.Set(p, value)
	})

	return out
}
