package connector

import (
	"math"

	"github.com/covertour/pcpptc/gridmodel"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
)

// EdgeState is a directed-edge Dijkstra state: "currently at V, having
// just arrived via U". A shortest path tree built over these states
// rather than over plain vertices is direction-aware: the cost of
// continuing from (u,v) to (v,w) can charge the turn at v implied by
// arriving from u, the way a cycle's own passages do.
type EdgeState struct {
	U, V gridmodel.VertexHandle
}

// ShortestPathTree is a multi-source direction-aware shortest path
// structure over one grid's directed-edge states. Every traversed edge
// cost is doubled, since a connecting path is walked once in each
// direction by the final tour.
type ShortestPathTree struct {
	cm    *gridmodel.CostModel
	g     *simple.WeightedDirectedGraph
	ids   map[EdgeState]int64
	rev   map[int64]EdgeState
	next  int64
	super int64

	sources map[int64]sourceInfo
	built   bool
	tree    path.Shortest
}

type sourceInfo struct {
	passage gridmodel.Passage
	via     gridmodel.VertexHandle // the broken-off neighbor (first detour vertex)
}

// NewShortestPathTree builds the static directed-edge-state graph for cm
// once; sources are added afterward with AddSource, then Build runs a
// single Dijkstra pass from a virtual super-source.
func NewShortestPathTree(cm *gridmodel.CostModel) *ShortestPathTree {
	t := &ShortestPathTree{
		cm:      cm,
		g:       simple.NewWeightedDirectedGraph(0, math.Inf(1)),
		ids:     make(map[EdgeState]int64),
		rev:     make(map[int64]EdgeState),
		sources: make(map[int64]sourceInfo),
		next:    1,
	}
	t.super = 0
	t.g.AddNode(simple.Node(t.super))
	t.buildStates()

	return t
}

func (t *ShortestPathTree) stateID(s EdgeState) int64 {
	if id, ok := t.ids[s]; ok {
		return id
	}
	id := t.next
	t.next++
	t.ids[s] = id
	t.rev[id] = s
	t.g.AddNode(simple.Node(id))

	return id
}

// buildStates registers every directed-edge state (u,v) over cm's graph
// and the transition edges between graph-adjacent states, weighted
// 2*(d(v,w) + turn(v,u,w)).
func (t *ShortestPathTree) buildStates() {
	g := t.cm.Graph()
	for _, v := range g.Vertices() {
		nbrs, _ := g.Neighbors(v)
		for _, u := range nbrs {
			t.stateID(EdgeState{U: u, V: v})
		}
	}

	for s, id := range t.ids {
		nbrs, _ := g.Neighbors(s.V)
		for _, w := range nbrs {
			next := EdgeState{U: s.V, V: w}
			nid := t.stateID(next)
			weight := 2 * (t.cm.Distance(s.V, w) + t.cm.Turn(s.V, s.U, w))
			t.g.SetWeightedEdge(t.g.NewWeightedEdge(simple.Node(id), simple.Node(nid), weight))
		}
	}
}

// AddSource seeds the tree with every way a cycle passage p can be
// broken at its own vertex to branch toward a new neighbor n: the entry
// cost is the extra touring cost of replacing p with the two half-
// passages (p.A,v,n) and (n,v,p.B). Only the cheapest source edge into
// a given state is kept, matching the update-if-better rule of the
// original per-cycle source accumulation.
func (t *ShortestPathTree) AddSource(p gridmodel.Passage) {
	g := t.cm.Graph()
	nbrs, _ := g.Neighbors(p.V)
	for _, n := range nbrs {
		state := EdgeState{U: p.V, V: n}
		id := t.stateID(state)
		cost := startBreakCost(t.cm, p, n)

		if e := t.g.WeightedEdge(t.super, id); e != nil {
			if e.Weight() <= cost {
				continue
			}
		}
		t.g.SetWeightedEdge(t.g.NewWeightedEdge(simple.Node(t.super), simple.Node(id), cost))
		t.sources[id] = sourceInfo{passage: p, via: n}
	}
	t.built = false
}

// Build runs Dijkstra from the super-source once. Must be called after
// all sources are added and before any query.
func (t *ShortestPathTree) Build() {
	t.tree = path.DijkstraFrom(simple.Node(t.super), t.g)
	t.built = true
}

// queryResult is the outcome of connecting to one target passage q via
// its neighbor m: the replacement breaks q into (q.A,q.V,m) and
// (m,q.V,q.B), and the connecting walk of vertices strictly between the
// two cycles' own vertices.
type queryResult struct {
	cost    float64
	ok      bool
	source  gridmodel.Passage
	via     gridmodel.VertexHandle
	m       gridmodel.VertexHandle
	detour  []gridmodel.VertexHandle
}

// bestTo finds the cheapest way to connect the tree's sources to target
// passage q, trying every neighbor m of q.V as the path's last hop.
func (t *ShortestPathTree) bestTo(q gridmodel.Passage) queryResult {
	if !t.built {
		t.Build()
	}

	g := t.cm.Graph()
	nbrs, _ := g.Neighbors(q.V)

	best := queryResult{cost: math.Inf(1)}
	for _, m := range nbrs {
		state := EdgeState{U: m, V: q.V}
		id, ok := t.ids[state]
		if !ok {
			continue
		}
		pathCost := t.tree.WeightTo(id)
		if math.IsInf(pathCost, 1) {
			continue
		}
		overhead := targetTurnOverhead(t.cm, q, m)
		total := pathCost + overhead
		if total < best.cost {
			nodes, _ := t.tree.To(id)
			src, via, detour := t.decodePath(nodes)
			best = queryResult{cost: total, ok: true, source: src, via: via, m: m, detour: detour}
		}
	}

	return best
}

// decodePath strips the super-source from a reconstructed node path and
// reports the originating source passage/neighbor plus the detour
// vertex sequence strictly between the two cycles' own vertices.
func (t *ShortestPathTree) decodePath(nodes []graph.Node) (gridmodel.Passage, gridmodel.VertexHandle, []gridmodel.VertexHandle) {
	states := make([]EdgeState, 0, len(nodes)-1)
	for _, n := range nodes[1:] {
		states = append(states, t.rev[n.ID()])
	}

	srcInfo := t.sources[nodes[1].ID()]

	detour := make([]gridmodel.VertexHandle, 0, len(states))
	for i := 0; i < len(states)-1; i++ {
		detour = append(detour, states[i].V)
	}

	return srcInfo.passage, srcInfo.via, detour
}
