// Package gridmodel defines the immutable data model consumed by the
// PCPPTC grid solver: a planar embedded graph of point vertices, the
// distance/turn cost functions attached to it, per-vertex coverage
// necessity, and the vertex-passage / cycle primitives the rest of the
// pipeline is built from.
//
// # Identity vs. coordinates
//
// A Vertex's identity is its VertexHandle, an opaque integer allocated by
// Graph.AddVertex. Two vertices at the same (x, y) are distinct entities
// with distinct handles; every downstream map keys on VertexHandle, never
// on position. Graph.Position reads coordinates on demand, so a vertex may
// in principle be relocated (MoveVertex) without invalidating any
// container that keys on its handle.
//
// # Invariants
//
// Flow balance is not checked here: Cycle.Validate only checks that
// consecutive passages connect, and pcpptc.IsFlowFeasible checks balance
// over a fracsol.Solution. NewPassage does not check a,b ∈ Neighbors(v);
// Instance.NewValidPassage does. Feasible coverage of a finished tour is
// checked by pcpptc.Validate, together with graph-adjacency.
//
// # Concurrency
//
// Graph uses two independent sync.RWMutex locks (one for vertex/position
// data, one for edges/adjacency), so a constructed Instance may be read
// concurrently by multiple goroutines even though the solver pipeline
// itself runs each stage to completion before starting the next (see
// package pcpptc).
package gridmodel
