package lp

import (
	"errors"

	"github.com/covertour/pcpptc/gridmodel"
	"github.com/covertour/pcpptc/simplex"
)

// ErrEmptyInstance indicates a Model was requested for an instance with
// no vertices; callers should treat this as the trivial empty solution
// rather than building a degenerate LP.
var ErrEmptyInstance = errors.New("lp: instance has no vertices")

// penaltyVar names a y_{v,i} variable: vertex v, 1-indexed coverage
// position i, and the penalty value it pays.
type penaltyVar struct {
	Vertex  gridmodel.VertexHandle
	Index   int
	Penalty float64
}

// Model is the fractional cycle-cover LP built from a grid instance: the
// enumerated passage and penalty variables, and the simplex.Problem ready
// to hand to a solver.
type Model struct {
	inst     *gridmodel.Instance
	passages []gridmodel.Passage
	penalty  []penaltyVar

	passageIndex map[gridmodel.Passage]int
	Problem      simplex.Problem
}

// NewModel enumerates every vertex passage and worth-modeling penalty
// variable in inst and builds the corresponding simplex.Problem.
func NewModel(inst *gridmodel.Instance) (*Model, error) {
	if inst.Graph.NumVertices() == 0 {
		return nil, ErrEmptyInstance
	}

	m := &Model{inst: inst, passageIndex: make(map[gridmodel.Passage]int)}
	m.enumeratePassages()
	m.enumeratePenalties()
	m.buildProblem()

	return m, nil
}

func (m *Model) enumeratePassages() {
	for _, v := range m.inst.Graph.Vertices() {
		nbrs, _ := m.inst.Graph.Neighbors(v)
		for i, a := range nbrs {
			for _, b := range nbrs[i:] {
				p := gridmodel.NewPassage(v, a, b)
				if _, ok := m.passageIndex[p]; ok {
					continue
				}
				m.passageIndex[p] = len(m.passages)
				m.passages = append(m.passages, p)
			}
		}
	}
}

// cheapestCoveringCycleCost approximates "the cheapest cycle covering v"
// (the threshold for worth-modeling penalties as LP variables) as the cost of the
// cheapest U-turn passage at v: entering and immediately leaving via the
// same neighbor, costing that edge's distance plus a full reversal's turn.
// It is a heuristic threshold, not a bound: a passage that goes straight
// through v can cost less than any U-turn there. This
// is a deliberate modeling simplification recorded in DESIGN.md: true
// cheapest-cycle-cost would require solving a covering subproblem per
// vertex, defeating the purpose of the threshold as a cheap filter.
func (m *Model) cheapestCoveringCycleCost(v gridmodel.VertexHandle) float64 {
	nbrs, _ := m.inst.Graph.Neighbors(v)
	if len(nbrs) == 0 {
		return 0
	}
	best := -1.0
	for _, a := range nbrs {
		p := gridmodel.NewPassage(v, a, a)
		cost := p.Cost(m.inst.Cost)
		if best < 0 || cost < best {
			best = cost
		}
	}

	return best
}

func (m *Model) enumeratePenalties() {
	for _, v := range m.inst.Graph.Vertices() {
		cov := m.inst.CoverageOf(v)
		if len(cov) == 0 {
			continue
		}
		threshold := m.cheapestCoveringCycleCost(v)
		for _, pe := range cov.PenaltyVariableEntries(threshold) {
			m.penalty = append(m.penalty, penaltyVar{Vertex: v, Index: pe.Index, Penalty: pe.Penalty})
		}
	}
}

func (m *Model) numVars() int { return len(m.passages) + len(m.penalty) }

func (m *Model) penaltyVarColumn(i int) int { return len(m.passages) + i }

func (m *Model) buildProblem() {
	n := m.numVars()
	objective := make([]float64, n)
	for i, p := range m.passages {
		objective[i] = p.Cost(m.inst.Cost)
	}
	for i, pv := range m.penalty {
		objective[m.penaltyVarColumn(i)] = pv.Penalty
	}

	equalities := m.flowBalanceConstraints(n)
	atLeasts := m.coverageConstraints(n)

	m.Problem = simplex.Problem{
		NumVars:    n,
		Objective:  objective,
		Equalities: equalities,
		AtLeasts:   atLeasts,
	}
}

// mu is the flow-balance weight for a passage's use of a given endpoint:
// 2 for a U-turn (it traverses the same edge twice), 1 otherwise.
func mu(p gridmodel.Passage) float64 {
	if p.IsUTurn() {
		return 2
	}

	return 1
}

func (m *Model) flowBalanceConstraints(n int) []simplex.Constraint {
	type edgeKey struct{ u, v gridmodel.VertexHandle }
	seen := make(map[edgeKey]bool)
	var out []simplex.Constraint

	for _, e := range m.inst.Graph.Edges() {
		u, v := e[0], e[1]
		if u > v {
			u, v = v, u
		}
		key := edgeKey{u, v}
		if seen[key] {
			continue
		}
		seen[key] = true

		coeffs := make([]float64, n)
		for i, p := range m.passages {
			if p.V == u && (p.A == v || p.B == v) {
				coeffs[i] += mu(p)
			}
			if p.V == v && (p.A == u || p.B == u) {
				coeffs[i] -= mu(p)
			}
		}
		out = append(out, simplex.Constraint{Coeffs: coeffs, RHS: 0})
	}

	return out
}

func (m *Model) coverageConstraints(n int) []simplex.Constraint {
	var out []simplex.Constraint
	for _, v := range m.inst.Graph.Vertices() {
		t := m.inst.CoverageOf(v).MandatoryCount()
		if t == 0 {
			continue
		}
		coeffs := make([]float64, n)
		for i, p := range m.passages {
			if p.V == v {
				coeffs[i] = 1
			}
		}
		for i, pv := range m.penalty {
			if pv.Vertex == v {
				coeffs[m.penaltyVarColumn(i)] = 1
			}
		}
		out = append(out, simplex.Constraint{Coeffs: coeffs, RHS: float64(t)})
	}

	return out
}

// Passages returns the enumerated passage variables in column order.
func (m *Model) Passages() []gridmodel.Passage {
	return append([]gridmodel.Passage(nil), m.passages...)
}

// NumPassageVars returns the count of passage (non-penalty) columns;
// columns [0, NumPassageVars) are passage variables and the remainder are
// penalty variables.
func (m *Model) NumPassageVars() int { return len(m.passages) }

// solutionFromValues maps every passage column with a positive value in
// values to its passage; penalty columns are ignored.
func (m *Model) solutionFromValues(values []float64) map[gridmodel.Passage]float64 {
	out := make(map[gridmodel.Passage]float64, len(m.passages))
	for i, p := range m.passages {
		if values[i] > 0 {
			out[p] = values[i]
		}
	}

	return out
}
