// Package strips selects, per vertex, a set of atomic strips — unoriented
// orientations θ ∈ [0,π) each carrying two opposed ends — and assigns
// coverage obligations (required visits and penalty entries) across
// them. Two selection strategies are implemented behind the Strategy
// interface: Equiangular (fixed angular spacing with repetition) and
// NeighborAdaptive (driven by incident-edge directions and LP usage).
//
// The resulting per-vertex strip sets are consumed by package matching to
// build the auxiliary end-matching graph.
package strips
