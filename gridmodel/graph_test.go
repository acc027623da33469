package gridmodel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGraphAddVertexDistinctIdentity(t *testing.T) {
	g := NewGraph()
	a := g.AddVertex(Point{0, 0})
	b := g.AddVertex(Point{0, 0})
	require.NotEqual(t, a, b, "vertices at the same coordinates must have distinct identities")
}

func TestGraphAddEdgeRejectsSelfLoopAndParallel(t *testing.T) {
	g := NewGraph()
	a := g.AddVertex(Point{0, 0})
	b := g.AddVertex(Point{1, 0})

	require.ErrorIs(t, g.AddEdge(a, a), ErrSelfLoop)
	require.NoError(t, g.AddEdge(a, b))
	require.ErrorIs(t, g.AddEdge(a, b), ErrParallelEdge)
	require.ErrorIs(t, g.AddEdge(b, a), ErrParallelEdge)
}

func TestGraphAddEdgeUnknownVertex(t *testing.T) {
	g := NewGraph()
	a := g.AddVertex(Point{0, 0})
	require.ErrorIs(t, g.AddEdge(a, VertexHandle(9999)), ErrUnknownVertex)
}

func TestGraphNeighborsSortedAndSymmetric(t *testing.T) {
	g := NewGraph()
	a := g.AddVertex(Point{0, 0})
	b := g.AddVertex(Point{1, 0})
	c := g.AddVertex(Point{2, 0})
	require.NoError(t, g.AddEdge(a, c))
	require.NoError(t, g.AddEdge(a, b))

	nbrs, err := g.Neighbors(a)
	require.NoError(t, err)
	require.Equal(t, []VertexHandle{b, c}, nbrs)
	require.True(t, g.IsNeighbor(a, b))
	require.True(t, g.IsNeighbor(b, a))
}

func TestGraphConnected(t *testing.T) {
	g := NewGraph()
	a := g.AddVertex(Point{0, 0})
	b := g.AddVertex(Point{1, 0})
	c := g.AddVertex(Point{2, 0})
	require.False(t, g.Connected()) // three isolated vertices

	require.NoError(t, g.AddEdge(a, b))
	require.False(t, g.Connected()) // c is isolated

	require.NoError(t, g.AddEdge(b, c))
	require.True(t, g.Connected())
}

func TestGraphMoveVertexPreservesHandle(t *testing.T) {
	g := NewGraph()
	a := g.AddVertex(Point{0, 0})
	require.NoError(t, g.MoveVertex(a, Point{5, 5}))
	p, err := g.Position(a)
	require.NoError(t, err)
	require.Equal(t, Point{5, 5}, p)
}
