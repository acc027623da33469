package gridmodel

import (
	"errors"
	"sort"
	"sync"
)

// Sentinel errors for graph construction and queries. Never wrapped with
// fmt.Errorf where a sentinel suffices.
var (
	// ErrUnknownVertex indicates a handle not allocated by this Graph.
	ErrUnknownVertex = errors.New("gridmodel: unknown vertex handle")

	// ErrSelfLoop indicates an attempt to add an edge from a vertex to itself.
	ErrSelfLoop = errors.New("gridmodel: self-loops are not allowed")

	// ErrParallelEdge indicates an attempt to add a second edge between the
	// same unordered pair of vertices.
	ErrParallelEdge = errors.New("gridmodel: parallel edges are not allowed")

	// ErrNotNeighbors indicates a passage endpoint is not graph-adjacent to
	// its vertex.
	ErrNotNeighbors = errors.New("gridmodel: passage endpoint is not a neighbor")
)

// Point is a coordinate in the plane. Position is read on demand; it does
// not participate in vertex identity (see package doc).
type Point struct {
	X, Y float64
}

// VertexHandle is an opaque vertex identity allocated by Graph.AddVertex.
// The zero value is never a valid handle.
type VertexHandle int

// Graph is an undirected, simple, planar-embedded graph: no parallel
// edges, no self-loops. Degree is unbounded but is typically ≤ 8 for
// PCPPTC grid instances.
//
// Graph is safe for concurrent reads from multiple goroutines once built;
// AddVertex/AddEdge are typically only called during construction by a
// single goroutine (the instance-conversion front end, out of scope here).
type Graph struct {
	muVert sync.RWMutex
	muAdj  sync.RWMutex

	coords map[VertexHandle]Point
	adj    map[VertexHandle]map[VertexHandle]struct{}
	next   VertexHandle
}

// NewGraph returns an empty Graph.
func NewGraph() *Graph {
	return &Graph{
		coords: make(map[VertexHandle]Point),
		adj:    make(map[VertexHandle]map[VertexHandle]struct{}),
		next:   1,
	}
}

// AddVertex allocates a fresh handle for a vertex at position p and
// returns it. Complexity: O(1) amortized.
func (g *Graph) AddVertex(p Point) VertexHandle {
	g.muVert.Lock()
	defer g.muVert.Unlock()

	h := g.next
	g.next++
	g.coords[h] = p

	g.muAdj.Lock()
	g.adj[h] = make(map[VertexHandle]struct{})
	g.muAdj.Unlock()

	return h
}

// AddEdge inserts an undirected edge {u,v}. Returns ErrUnknownVertex,
// ErrSelfLoop, or ErrParallelEdge on violation. Complexity: O(1).
func (g *Graph) AddEdge(u, v VertexHandle) error {
	if u == v {
		return ErrSelfLoop
	}

	g.muVert.RLock()
	_, okU := g.coords[u]
	_, okV := g.coords[v]
	g.muVert.RUnlock()
	if !okU || !okV {
		return ErrUnknownVertex
	}

	g.muAdj.Lock()
	defer g.muAdj.Unlock()
	if _, dup := g.adj[u][v]; dup {
		return ErrParallelEdge
	}
	g.adj[u][v] = struct{}{}
	g.adj[v][u] = struct{}{}

	return nil
}

// Position returns the coordinates of v. Complexity: O(1).
func (g *Graph) Position(v VertexHandle) (Point, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	p, ok := g.coords[v]
	if !ok {
		return Point{}, ErrUnknownVertex
	}

	return p, nil
}

// MoveVertex relocates v's coordinates. Containers keyed on VertexHandle
// remain valid (see package doc). Complexity: O(1).
func (g *Graph) MoveVertex(v VertexHandle, p Point) error {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	if _, ok := g.coords[v]; !ok {
		return ErrUnknownVertex
	}
	g.coords[v] = p

	return nil
}

// Neighbors returns v's adjacent handles sorted ascending for determinism.
// Complexity: O(deg(v) log deg(v)).
func (g *Graph) Neighbors(v VertexHandle) ([]VertexHandle, error) {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()
	set, ok := g.adj[v]
	if !ok {
		return nil, ErrUnknownVertex
	}
	out := make([]VertexHandle, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out, nil
}

// IsNeighbor reports whether u and v are graph-adjacent. Complexity: O(1).
func (g *Graph) IsNeighbor(v, u VertexHandle) bool {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()
	_, ok := g.adj[v][u]

	return ok
}

// Degree returns deg(v). Complexity: O(1).
func (g *Graph) Degree(v VertexHandle) int {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	return len(g.adj[v])
}

// Vertices returns all handles sorted ascending. Complexity: O(V log V).
func (g *Graph) Vertices() []VertexHandle {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make([]VertexHandle, 0, len(g.coords))
	for h := range g.coords {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// NumVertices returns |V|. Complexity: O(1).
func (g *Graph) NumVertices() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.coords)
}

// Edges returns each undirected edge once, endpoints ordered (u < v),
// sorted lexicographically. Complexity: O(V + E log E).
func (g *Graph) Edges() [][2]VertexHandle {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	var out [][2]VertexHandle
	for u, nbrs := range g.adj {
		for v := range nbrs {
			if u < v {
				out = append(out, [2]VertexHandle{u, v})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}

		return out[i][1] < out[j][1]
	})

	return out
}

// Connected reports whether the graph is connected (a single component).
// An empty graph is trivially connected. Complexity: O(V+E).
func (g *Graph) Connected() bool {
	verts := g.Vertices()
	if len(verts) <= 1 {
		return true
	}

	seen := map[VertexHandle]bool{verts[0]: true}
	queue := []VertexHandle{verts[0]}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		nbrs, _ := g.Neighbors(v)
		for _, n := range nbrs {
			if !seen[n] {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}

	return len(seen) == len(verts)
}
