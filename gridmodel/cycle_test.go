package gridmodel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCycleValidateRejectsEmpty(t *testing.T) {
	c := NewCycle(nil)
	require.ErrorIs(t, c.Validate(), ErrEmptyCycle)
}

func TestCycleValidateRejectsDisconnected(t *testing.T) {
	// The passage at 0 exits toward 1 and 2, but the next passage is
	// centered at 9 and doesn't connect back to 0 at all.
	c := NewCycle([]Passage{
		NewPassage(0, 1, 2),
		NewPassage(9, 8, 7),
	})
	require.ErrorIs(t, c.Validate(), ErrDisconnectedCycle)
}

func TestTriangleCycleVerticesAndVisitCounts(t *testing.T) {
	_, _, p0, p1, p2 := buildTriangle(t)
	cyc := NewCycle([]Passage{
		NewPassage(p0, p2, p1),
		NewPassage(p1, p0, p2),
		NewPassage(p2, p1, p0),
	})
	require.NoError(t, cyc.Validate())
	require.Equal(t, []VertexHandle{p0, p1, p2}, cyc.Vertices())

	counts := cyc.VisitCounts()
	require.Equal(t, 1, counts[p0])
	require.Equal(t, 1, counts[p1])
	require.Equal(t, 1, counts[p2])
}

func TestTriangleCycleAngleSumIsTwoPi(t *testing.T) {
	_, cm, p0, p1, p2 := buildTriangle(t)
	cyc := NewCycle([]Passage{
		NewPassage(p0, p2, p1),
		NewPassage(p1, p0, p2),
		NewPassage(p2, p1, p0),
	})
	// Exterior angles of a simple polygon traversed once sum to 2π; each
	// angleAt term here is the exterior turn (3π/4 at p0 and p2, π/2 at
	// the apex p1), so the three turns sum to 2π.
	sum := cyc.AngleSum(cm)
	require.Greater(t, sum, 0.0)
	require.InDelta(t, 2*math.Pi, sum, 1e-9)
}

func TestCyclePassageMultisetCountsUnorderedPassages(t *testing.T) {
	cyc := NewCycle([]Passage{
		NewPassage(1, 2, 3),
		NewPassage(1, 3, 2),
	})
	m := cyc.PassageMultiset()
	require.Len(t, m, 1)
	require.Equal(t, 2, m[NewPassage(1, 2, 3)])
}
