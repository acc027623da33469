package fracsol

import (
	"errors"
	"sort"

	"github.com/covertour/pcpptc/gridmodel"
)

// Epsilon is the default threshold below which a passage value is treated
// as absent.
const Epsilon = 1e-3

// ErrNegativeValue indicates an attempt to record a negative passage value;
// the LP relaxation's non-negativity constraint makes this a caller bug.
var ErrNegativeValue = errors.New("fracsol: passage value must be non-negative")

// entry is one (passage, value) pair. Solution keeps entries sorted by
// Passage so lookups and merges are binary-search / merge-sort cheap
// instead of hash-map cheap — the accumulator is typically small (tens to
// low hundreds of entries per vertex neighborhood) and built/read far more
// often than it is randomly mutated.
type entry struct {
	Passage gridmodel.Passage
	Value   float64
}

// Solution is the fractional solution accumulator: a sparse mapping from
// vertex passages to non-negative reals, sorted by passage for
// epsilon-aware lookup. The zero value is the empty solution.
type Solution struct {
	eps     float64
	entries []entry
}

// New returns an empty Solution using the default Epsilon.
func New() *Solution {
	return &Solution{eps: Epsilon}
}

// NewWithEpsilon returns an empty Solution using a caller-supplied epsilon.
func NewWithEpsilon(eps float64) *Solution {
	return &Solution{eps: eps}
}

func less(a, b gridmodel.Passage) bool {
	if a.V != b.V {
		return a.V < b.V
	}
	if a.A != b.A {
		return a.A < b.A
	}

	return a.B < b.B
}

func (s *Solution) search(p gridmodel.Passage) (int, bool) {
	i := sort.Search(len(s.entries), func(i int) bool {
		return !less(s.entries[i].Passage, p)
	})
	if i < len(s.entries) && s.entries[i].Passage == p {
		return i, true
	}

	return i, false
}

// Add accumulates delta into the value recorded for p (creating the entry
// if absent), then drops the entry if the result falls at or below
// epsilon. Returns ErrNegativeValue if the resulting value is negative.
func (s *Solution) Add(p gridmodel.Passage, delta float64) error {
	i, found := s.search(p)
	if !found {
		if delta < -s.eps {
			return ErrNegativeValue
		}
		if delta <= s.eps {
			return nil
		}
		s.entries = append(s.entries, entry{})
		copy(s.entries[i+1:], s.entries[i:])
		s.entries[i] = entry{Passage: p, Value: delta}

		return nil
	}

	v := s.entries[i].Value + delta
	if v < -s.eps {
		return ErrNegativeValue
	}
	if v <= s.eps {
		s.entries = append(s.entries[:i], s.entries[i+1:]...)

		return nil
	}
	s.entries[i].Value = v

	return nil
}

// Set overwrites the value recorded for p, dropping the entry if the new
// value is at or below epsilon.
func (s *Solution) Set(p gridmodel.Passage, value float64) error {
	i, found := s.search(p)
	if value < -s.eps {
		return ErrNegativeValue
	}
	switch {
	case value <= s.eps && found:
		s.entries = append(s.entries[:i], s.entries[i+1:]...)
	case value <= s.eps:
		// absent and stays absent
	case found:
		s.entries[i].Value = value
	default:
		s.entries = append(s.entries, entry{})
		copy(s.entries[i+1:], s.entries[i:])
		s.entries[i] = entry{Passage: p, Value: value}
	}

	return nil
}

// At returns the value recorded for p, or 0 if absent.
func (s *Solution) At(p gridmodel.Passage) float64 {
	if i, found := s.search(p); found {
		return s.entries[i].Value
	}

	return 0
}

// Len returns the number of non-epsilon entries.
func (s *Solution) Len() int { return len(s.entries) }

// IsIntegral reports whether every recorded value is within epsilon of an
// integer.
func (s *Solution) IsIntegral() bool {
	for _, e := range s.entries {
		frac := e.Value - float64(int(e.Value+0.5))
		if frac < 0 {
			frac = -frac
		}
		if frac > s.eps {
			return false
		}
	}

	return true
}

// Each calls fn for every recorded entry in passage order.
func (s *Solution) Each(fn func(p gridmodel.Passage, value float64)) {
	for _, e := range s.entries {
		fn(e.Passage, e.Value)
	}
}

// Coverage returns Σ value over passages centered at v: the LP's
// coverage-constraint left-hand side (excluding penalty variables).
func (s *Solution) Coverage(v gridmodel.VertexHandle) float64 {
	var sum float64
	s.Each(func(p gridmodel.Passage, value float64) {
		if p.V == v {
			sum += value
		}
	})

	return sum
}

// Length returns Σ value·HalfEdgeDistance(cm): the fractional distance
// cost.
func (s *Solution) Length(cm *gridmodel.CostModel) float64 {
	var sum float64
	s.Each(func(p gridmodel.Passage, value float64) {
		sum += value * p.HalfEdgeDistance(cm)
	})

	return sum
}

// AngleSum returns Σ value·angle(a,v,b) — the raw angle contribution,
// without turn factor or per-vertex multipliers, mirroring
// gridmodel.Cycle.AngleSum.
func (s *Solution) AngleSum(cm *gridmodel.CostModel) float64 {
	// A unit-factor cost model without multipliers reports bare angles.
	raw := gridmodel.NewCostModel(cm.Graph(), 1)
	var sum float64
	s.Each(func(p gridmodel.Passage, value float64) {
		sum += value * raw.Turn(p.V, p.A, p.B)
	})

	return sum
}

// TouringCost returns Σ value·Cost(cm): the LP objective's passage-term
// contribution.
func (s *Solution) TouringCost(cm *gridmodel.CostModel) float64 {
	var sum float64
	s.Each(func(p gridmodel.Passage, value float64) {
		sum += value * p.Cost(cm)
	})

	return sum
}

// Plus returns a new Solution holding the entrywise sum of s and other.
func (s *Solution) Plus(other *Solution) (*Solution, error) {
	out := NewWithEpsilon(s.eps)
	var err error
	s.Each(func(p gridmodel.Passage, v float64) {
		if err == nil {
			err = out.Add(p, v)
		}
	})
	if err != nil {
		return nil, err
	}
	other.Each(func(p gridmodel.Passage, v float64) {
		if err == nil {
			err = out.Add(p, v)
		}
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Minus returns the pointwise difference s − other. Unlike Plus, negative
// intermediate results are permitted (the caller may be computing a delta,
// not a new non-negative fractional solution); ErrNegativeValue is never
// returned here.
func (s *Solution) Minus(other *Solution) *Solution {
	out := NewWithEpsilon(s.eps)
	s.Each(func(p gridmodel.Passage, v float64) {
		out.entries = append(out.entries, entry{Passage: p, Value: v})
	})
	other.Each(func(p gridmodel.Passage, v float64) {
		i, found := out.search(p)
		if found {
			out.entries[i].Value -= v
		} else {
			out.entries = append(out.entries, entry{})
			copy(out.entries[i+1:], out.entries[i:])
			out.entries[i] = entry{Passage: p, Value: -v}
		}
	})

	filtered := out.entries[:0]
	for _, e := range out.entries {
		v := e.Value
		if v < 0 {
			v = -v
		}
		if v > out.eps {
			filtered = append(filtered, e)
		}
	}
	out.entries = filtered

	return out
}
