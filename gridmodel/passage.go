package gridmodel

// Passage is a vertex passage (a,v,b): a record that the tour enters and
// leaves v via a and b. It is equivalent under swap of a,b; a U-turn
// (a==b) counts as two traversals of {v,a}.
type Passage struct {
	V, A, B VertexHandle
}

// NewPassage builds a Passage, canonicalizing endpoint order so that
// Passage{V,A,B} == Passage{V,B,A} for equal (unordered) inputs. It does
// not validate a,b ∈ Neighbors(v); callers that need that guarantee
// should use Instance.NewValidPassage.
func NewPassage(v, a, b VertexHandle) Passage {
	if a > b {
		a, b = b, a
	}

	return Passage{V: v, A: a, B: b}
}

// IsUTurn reports whether the passage is a U-turn (a==b).
func (p Passage) IsUTurn() bool { return p.A == p.B }

// Other returns the endpoint of p that is not 'from', or a.b symmetric
// counterpart for a U-turn.
func (p Passage) Other(from VertexHandle) VertexHandle {
	if from == p.A {
		return p.B
	}

	return p.A
}

// NewValidPassage builds a Passage after checking that a and b are each
// graph-adjacent to v.
func (inst *Instance) NewValidPassage(v, a, b VertexHandle) (Passage, error) {
	if !inst.Graph.IsNeighbor(v, a) || !inst.Graph.IsNeighbor(v, b) {
		return Passage{}, ErrNotNeighbors
	}

	return NewPassage(v, a, b), nil
}

// HalfEdgeDistance returns ½(d(v,a)+d(v,b)), the distance contribution
// attributed to a single passage so that shared edges are not
// double-counted across their two endpoints.
func (p Passage) HalfEdgeDistance(cm *CostModel) float64 {
	return 0.5 * (cm.Distance(p.V, p.A) + cm.Distance(p.V, p.B))
}

// TurnCost returns τ(v,a,b) for this passage.
func (p Passage) TurnCost(cm *CostModel) float64 {
	return cm.Turn(p.V, p.A, p.B)
}

// Cost returns the passage's combined distance+turn contribution, i.e.
// the coefficient used for its LP variable in the §4.1 objective.
func (p Passage) Cost(cm *CostModel) float64 {
	return p.HalfEdgeDistance(cm) + p.TurnCost(cm)
}
