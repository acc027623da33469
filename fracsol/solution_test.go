package fracsol

import (
	"testing"

	"github.com/covertour/pcpptc/gridmodel"
	"github.com/stretchr/testify/require"
)

func p(v, a, b int) gridmodel.Passage {
	return gridmodel.NewPassage(gridmodel.VertexHandle(v), gridmodel.VertexHandle(a), gridmodel.VertexHandle(b))
}

func TestSolutionAddAndAt(t *testing.T) {
	s := New()
	require.NoError(t, s.Add(p(1, 2, 3), 0.5))
	require.InDelta(t, 0.5, s.At(p(1, 2, 3)), 1e-12)
	require.Equal(t, 1, s.Len())

	require.NoError(t, s.Add(p(1, 2, 3), 0.25))
	require.InDelta(t, 0.75, s.At(p(1, 2, 3)), 1e-12)
	require.Equal(t, 1, s.Len())
}

func TestSolutionAddDropsNearZero(t *testing.T) {
	s := New()
	require.NoError(t, s.Add(p(1, 2, 3), 0.5))
	require.NoError(t, s.Add(p(1, 2, 3), -0.4999))
	require.Equal(t, 0, s.Len(), "residual below epsilon is dropped")
}

func TestSolutionAddRejectsNegative(t *testing.T) {
	s := New()
	require.ErrorIs(t, s.Add(p(1, 2, 3), -1), ErrNegativeValue)
}

func TestSolutionSetOverwrites(t *testing.T) {
	s := New()
	require.NoError(t, s.Set(p(1, 2, 3), 2))
	require.NoError(t, s.Set(p(1, 2, 3), 5))
	require.InDelta(t, 5, s.At(p(1, 2, 3)), 1e-12)
}

func TestSolutionIsIntegral(t *testing.T) {
	s := New()
	require.True(t, s.IsIntegral(), "empty solution is integral")

	require.NoError(t, s.Set(p(1, 2, 3), 1))
	require.True(t, s.IsIntegral())

	require.NoError(t, s.Set(p(4, 5, 6), 0.5))
	require.False(t, s.IsIntegral())
}

func TestSolutionCoverageSumsPassagesAtVertex(t *testing.T) {
	s := New()
	require.NoError(t, s.Set(p(1, 2, 3), 0.5))
	require.NoError(t, s.Set(p(1, 4, 5), 0.5))
	require.NoError(t, s.Set(p(9, 2, 3), 1))

	require.InDelta(t, 1.0, s.Coverage(gridmodel.VertexHandle(1)), 1e-12)
}

func TestSolutionPlusAndMinusRoundTrip(t *testing.T) {
	a := New()
	require.NoError(t, a.Set(p(1, 2, 3), 0.6))
	b := New()
	require.NoError(t, b.Set(p(1, 2, 3), 0.4))
	require.NoError(t, b.Set(p(4, 5, 6), 0.2))

	sum, err := a.Plus(b)
	require.NoError(t, err)
	require.InDelta(t, 1.0, sum.At(p(1, 2, 3)), 1e-12)
	require.InDelta(t, 0.2, sum.At(p(4, 5, 6)), 1e-12)

	diff := sum.Minus(b)
	require.InDelta(t, a.At(p(1, 2, 3)), diff.At(p(1, 2, 3)), 1e-9)
	require.InDelta(t, 0, diff.At(p(4, 5, 6)), 1e-9)
}

func TestSolutionLengthAndTouringCost(t *testing.T) {
	g := gridmodel.NewGraph()
	v0 := g.AddVertex(gridmodel.Point{X: 0, Y: 0})
	v1 := g.AddVertex(gridmodel.Point{X: 1, Y: 0})
	v2 := g.AddVertex(gridmodel.Point{X: 2, Y: 0})
	require.NoError(t, g.AddEdge(v0, v1))
	require.NoError(t, g.AddEdge(v1, v2))
	cm := gridmodel.NewCostModel(g, 1)

	s := New()
	passage := gridmodel.NewPassage(v1, v0, v2)
	require.NoError(t, s.Set(passage, 1))

	require.InDelta(t, passage.HalfEdgeDistance(cm), s.Length(cm), 1e-9)
	require.InDelta(t, passage.Cost(cm), s.TouringCost(cm), 1e-9)
}
