package gridmodel

import "errors"

// ErrDisconnectedGraph and ErrUnreachableMandatory are the two structural
// infeasibility causes neither can be fixed by the solver, so
// Instance.Validate fails fast rather than producing a partial output.
var (
	ErrDisconnectedGraph    = errors.New("gridmodel: graph is disconnected")
	ErrUnreachableMandatory = errors.New("gridmodel: mandatory coverage at an isolated vertex with no neighbor")
)

// Instance is the immutable grid instance consumed by the grid solver:
// (V, E, cost, coverage). It is built once by the instance-conversion
// front end (out of scope here) and never mutated afterward.
type Instance struct {
	Graph    *Graph
	Cost     *CostModel
	Coverage map[VertexHandle]Coverage
}

// NewInstance assembles an Instance. coverage entries absent from the map
// are treated as Optional() (no penalty at any visit count).
func NewInstance(g *Graph, cost *CostModel, coverage map[VertexHandle]Coverage) *Instance {
	if coverage == nil {
		coverage = make(map[VertexHandle]Coverage)
	}

	return &Instance{Graph: g, Cost: cost, Coverage: coverage}
}

// CoverageOf returns v's coverage vector, or Optional() if unset.
func (inst *Instance) CoverageOf(v VertexHandle) Coverage {
	if c, ok := inst.Coverage[v]; ok {
		return c
	}

	return Optional()
}

// Validate checks the structural infeasibility conditions: a
// disconnected graph, or mandatory coverage at a vertex with no
// neighbor (so no passage can ever visit it while traversing an
// incident edge in both directions, i.e. it cannot be covered by any
// cycle). An empty instance (no vertices) is feasible: the empty tour
// covers it trivially.
func (inst *Instance) Validate() error {
	if inst.Graph.NumVertices() == 0 {
		return nil
	}
	if !inst.Graph.Connected() {
		return ErrDisconnectedGraph
	}
	for v, cov := range inst.Coverage {
		if err := cov.Validate(); err != nil {
			return err
		}
		if cov.MandatoryCount() > 0 && inst.Graph.Degree(v) == 0 {
			return ErrUnreachableMandatory
		}
	}

	return nil
}

// CoverageReport summarizes, per vertex, the visit count a cycle achieved
// against its requirement and the resulting opportunity loss.
type CoverageReport struct {
	Vertex          VertexHandle
	VisitCount      int
	Required        int
	OpportunityLoss float64
}

// AnalyzeCoverage builds a CoverageReport for every vertex with non-
// Optional coverage, given the visit counts implied by a final cycle.
func (inst *Instance) AnalyzeCoverage(visits map[VertexHandle]int) []CoverageReport {
	var out []CoverageReport
	for v, cov := range inst.Coverage {
		if len(cov) == 0 {
			continue
		}
		k := visits[v]
		out = append(out, CoverageReport{
			Vertex:          v,
			VisitCount:      k,
			Required:        cov.MandatoryCount(),
			OpportunityLoss: cov.OpportunityLoss(k),
		})
	}

	return out
}

// Prune returns a derived instance-local set of vertices worth
// considering for local-search area selection: vertices with no
// mandatory coverage and zero optional penalty that are not currently
// visited by the solution are excluded, since expanding a search area to
// include them can never change the objective. Prune does not mutate the
// Instance; it only reports which vertices are "live" for area
// selection.
func (inst *Instance) Prune(visited map[VertexHandle]bool) map[VertexHandle]bool {
	live := make(map[VertexHandle]bool, inst.Graph.NumVertices())
	for _, v := range inst.Graph.Vertices() {
		cov := inst.CoverageOf(v)
		if cov.MandatoryCount() > 0 || cov.OpportunityLoss(0) > 0 || visited[v] {
			live[v] = true
		}
	}

	return live
}
