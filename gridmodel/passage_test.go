package gridmodel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPassageCanonicalizesEndpointOrder(t *testing.T) {
	v, a, b := VertexHandle(0), VertexHandle(5), VertexHandle(2)
	p1 := NewPassage(v, a, b)
	p2 := NewPassage(v, b, a)
	require.Equal(t, p1, p2)
	require.Equal(t, VertexHandle(2), p1.A)
	require.Equal(t, VertexHandle(5), p1.B)
}

func TestPassageIsUTurn(t *testing.T) {
	p := NewPassage(1, 2, 2)
	require.True(t, p.IsUTurn())
	require.False(t, NewPassage(1, 2, 3).IsUTurn())
}

func TestPassageOther(t *testing.T) {
	p := NewPassage(1, 2, 3)
	require.Equal(t, VertexHandle(3), p.Other(2))
	require.Equal(t, VertexHandle(2), p.Other(3))
}

func TestInstanceNewValidPassageRejectsNonNeighbor(t *testing.T) {
	g := NewGraph()
	a := g.AddVertex(Point{0, 0})
	b := g.AddVertex(Point{1, 0})
	c := g.AddVertex(Point{2, 0})
	require.NoError(t, g.AddEdge(a, b))
	inst := NewInstance(g, NewCostModel(g, 1), nil)

	_, err := inst.NewValidPassage(a, b, c)
	require.ErrorIs(t, err, ErrNotNeighbors)

	require.NoError(t, g.AddEdge(a, c))
	p, err := inst.NewValidPassage(a, b, c)
	require.NoError(t, err)
	require.Equal(t, a, p.V)
}

func TestPassageCostCombinesDistanceAndTurn(t *testing.T) {
	_, cm, p0, p1, p2 := buildTriangle(t)
	p := NewPassage(p1, p0, p2)
	require.InDelta(t, p.HalfEdgeDistance(cm)+p.TurnCost(cm), p.Cost(cm), 1e-9)
}
