package gridmodel

import "errors"

// ErrEmptyCycle indicates an operation that requires at least one passage
// was given an empty Cycle.
var ErrEmptyCycle = errors.New("gridmodel: cycle has no passages")

// ErrDisconnectedCycle indicates consecutive passages do not satisfy the
// connectivity predicate linking one passage's vertex to its neighbors'
// endpoints.
var ErrDisconnectedCycle = errors.New("gridmodel: cycle passages are not consecutively connected")

// Cycle is an ordered list of vertex passages forming a closed walk: for
// consecutive passages (a,v,b),(a',v',b'), v' ∈ {a,b} and v ∈ {a',b'}.
// A cycle may self-intersect (repeated vertices).
type Cycle struct {
	Passages []Passage
}

// NewCycle wraps a passage sequence without validating connectivity; use
// Validate to check connectivity explicitly.
func NewCycle(passages []Passage) Cycle {
	return Cycle{Passages: append([]Passage(nil), passages...)}
}

// Validate checks the consecutive-passage connectivity predicate.
// A single-passage cycle (a U-turn degenerate closed walk at one vertex)
// is always valid.
func (c Cycle) Validate() error {
	n := len(c.Passages)
	if n == 0 {
		return ErrEmptyCycle
	}
	for i := 0; i < n; i++ {
		cur := c.Passages[i]
		next := c.Passages[(i+1)%n]
		if next.V != cur.A && next.V != cur.B {
			return ErrDisconnectedCycle
		}
		if cur.V != next.A && cur.V != next.B {
			return ErrDisconnectedCycle
		}
	}

	return nil
}

// Vertices returns the ordered vertex sequence [v1,...,vn] implied by the
// passage list.
func (c Cycle) Vertices() []VertexHandle {
	out := make([]VertexHandle, len(c.Passages))
	for i, p := range c.Passages {
		out[i] = p.V
	}

	return out
}

// Length returns the total touring distance of the cycle, halving shared
// edges per-passage so that each traversed edge is counted once.
func (c Cycle) Length(cm *CostModel) float64 {
	var sum float64
	for _, p := range c.Passages {
		sum += p.HalfEdgeDistance(cm)
	}

	return sum
}

// AngleSum returns the cumulative turning angle: τ is not separable from
// the turn factor in general, so this reports Σ angle(a,v,b) directly.
func (c Cycle) AngleSum(cm *CostModel) float64 {
	var sum float64
	for _, p := range c.Passages {
		// angle(a,v,b) = Turn(v,a,b) / (multiplier*turnFactor); recompute
		// directly to avoid assuming turnFactor != 0.
		sum += cm.angleAt(p.A, p.V, p.B)
	}

	return sum
}

// TouringCost returns Σ passage.Cost(cm): distance plus turn cost, the
// quantity the LP objective and PCST net-prize both rely on.
func (c Cycle) TouringCost(cm *CostModel) float64 {
	var sum float64
	for _, p := range c.Passages {
		sum += p.Cost(cm)
	}

	return sum
}

// PassageMultiset counts occurrences of each (unordered) passage, used by
// the flow-balance invariant check and by the encode/decode round-trip
// laws fracsol relies on.
func (c Cycle) PassageMultiset() map[Passage]int {
	m := make(map[Passage]int, len(c.Passages))
	for _, p := range c.Passages {
		m[NewPassage(p.V, p.A, p.B)]++
	}

	return m
}

// VisitCounts returns, for each vertex appearing in the cycle, the number
// of times it is visited (i.e. the number of passages centered at it).
func (c Cycle) VisitCounts() map[VertexHandle]int {
	m := make(map[VertexHandle]int)
	for _, p := range c.Passages {
		m[p.V]++
	}

	return m
}
