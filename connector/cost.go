package connector

import (
	"math"

	"github.com/covertour/pcpptc/gridmodel"
)

// fullPassageCost is a passage's distance+turn cost without the shared-
// edge halving gridmodel.Passage.Cost applies: used when computing the
// marginal cost of splitting a passage, where the new half-edge to the
// branch neighbor is not shared with any other passage and so should not
// be halved away.
func fullPassageCost(cm *gridmodel.CostModel, v, a, b gridmodel.VertexHandle) float64 {
	return cm.Distance(v, a) + cm.Distance(v, b) + cm.Turn(v, a, b)
}

// startBreakCost is the extra touring cost of replacing passage p=(a,v,b)
// with the two half-passages (a,v,n) and (n,v,b), i.e. of branching off
// toward n at v. It doubles the new edge's distance, since the
// connecting path this begins is walked in both directions.
func startBreakCost(cm *gridmodel.CostModel, p gridmodel.Passage, n gridmodel.VertexHandle) float64 {
	before := fullPassageCost(cm, p.V, p.A, p.B)
	after := fullPassageCost(cm, p.V, n, p.A) + fullPassageCost(cm, p.V, n, p.B)

	return after - before
}

// targetTurnOverhead is the turn-only cost of replacing target passage
// q=(a,v,b) with (a,v,m) and (m,v,b) when a connecting path arrives at v
// via m. The distance of the final hop into v is already charged by the
// path cost leading up to this query, so only the turn difference is
// added here.
func targetTurnOverhead(cm *gridmodel.CostModel, q gridmodel.Passage, m gridmodel.VertexHandle) float64 {
	return cm.Turn(q.V, m, q.A) + cm.Turn(q.V, m, q.B) - cm.Turn(q.V, q.A, q.B)
}

// directReplacementCost reports the cost of recombining two passages that
// share a vertex v=pi.V=pj.V without any connecting path at all: the
// cheaper of the two ways to cross-link their four ends, minus their
// combined original cost. A negative result means splicing the cycles at
// v is itself a net improvement.
func directReplacementCost(cm *gridmodel.CostModel, pi, pj gridmodel.Passage) (cost float64, swap bool, ok bool) {
	if pi.V != pj.V {
		return 0, false, false
	}
	v := pi.V
	before := fullPassageCost(cm, v, pi.A, pi.B) + fullPassageCost(cm, v, pj.A, pj.B)
	optA := fullPassageCost(cm, v, pi.A, pj.A) + fullPassageCost(cm, v, pi.B, pj.B)
	optB := fullPassageCost(cm, v, pi.A, pj.B) + fullPassageCost(cm, v, pi.B, pj.A)

	if optA <= optB {
		return optA - before, false, true
	}

	return optB - before, true, true
}

// Connection describes the cheapest way found to splice cycle j into
// cycle i: either a direct recombination at a shared vertex, or an
// indirect connection via a doubled shortest path.
type Connection struct {
	Cost      float64
	Direct    bool
	Swap      bool // direct only: whether to cross-link the alternate pairing
	AtVertex  gridmodel.VertexHandle
	SourceVia gridmodel.VertexHandle // indirect only: first detour vertex out of ci
	TargetVia gridmodel.VertexHandle // indirect only: last detour vertex into cj
	Detour    []gridmodel.VertexHandle
	SourceAt  gridmodel.VertexHandle // indirect only: ci's break vertex
	TargetAt  gridmodel.VertexHandle // indirect only: cj's break vertex
}

// FindConnection computes the cheapest way to splice cj into ci: the
// best direct recombination at any vertex the two cycles share, compared
// against the best indirect connection via a direction-aware shortest
// path tree seeded from every passage of ci.
func FindConnection(cm *gridmodel.CostModel, ci, cj gridmodel.Cycle) Connection {
	best := Connection{Cost: math.Inf(1)}

	for _, pi := range ci.Passages {
		for _, pj := range cj.Passages {
			cost, swap, ok := directReplacementCost(cm, pi, pj)
			if ok && cost < best.Cost {
				best = Connection{Cost: cost, Direct: true, Swap: swap, AtVertex: pi.V}
			}
		}
	}

	spt := NewShortestPathTree(cm)
	for _, p := range ci.Passages {
		spt.AddSource(p)
	}
	spt.Build()

	for _, q := range cj.Passages {
		r := spt.bestTo(q)
		if !r.ok || r.cost >= best.Cost {
			continue
		}
		best = Connection{
			Cost:      r.cost,
			SourceVia: r.via,
			TargetVia: r.m,
			Detour:    r.detour,
			SourceAt:  r.source.V,
			TargetAt:  q.V,
		}
	}

	return best
}
