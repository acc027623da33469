package gridmodel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// buildTriangle constructs a three-vertex complete graph
// p0(0,0), p1(1,1), p2(2,0), with unit turn factor and edge factors.
func buildTriangle(t *testing.T) (*Graph, *CostModel, VertexHandle, VertexHandle, VertexHandle) {
	t.Helper()
	g := NewGraph()
	p0 := g.AddVertex(Point{0, 0})
	p1 := g.AddVertex(Point{1, 1})
	p2 := g.AddVertex(Point{2, 0})
	require.NoError(t, g.AddEdge(p0, p1))
	require.NoError(t, g.AddEdge(p1, p2))
	require.NoError(t, g.AddEdge(p0, p2))

	cm := NewCostModel(g, 1)

	return g, cm, p0, p1, p2
}

func TestCostModelDistance(t *testing.T) {
	_, cm, p0, p1, _ := buildTriangle(t)
	require.InDelta(t, math.Sqrt2, cm.Distance(p0, p1), 1e-9)
}

func TestCostModelTurnUTurnIsMaximal(t *testing.T) {
	_, cm, p0, p1, _ := buildTriangle(t)
	require.InDelta(t, math.Pi, cm.Turn(p1, p0, p0), 1e-9)
}

func TestCostModelTurnStraightIsZero(t *testing.T) {
	g := NewGraph()
	a := g.AddVertex(Point{-1, 0})
	v := g.AddVertex(Point{0, 0})
	b := g.AddVertex(Point{1, 0})
	require.NoError(t, g.AddEdge(a, v))
	require.NoError(t, g.AddEdge(v, b))
	cm := NewCostModel(g, 1)
	require.InDelta(t, 0, cm.Turn(v, a, b), 1e-9)
}

func TestCostModelEdgeFactorScalesDistance(t *testing.T) {
	_, cm, p0, p1, _ := buildTriangle(t)
	base := cm.Distance(p0, p1)
	cm.SetEdgeFactor(p0, p1, 3)
	require.InDelta(t, base*3, cm.Distance(p0, p1), 1e-9)
	require.InDelta(t, base*3, cm.Distance(p1, p0), 1e-9, "edge factor is symmetric regardless of argument order")
}

func TestTriangleCycleLengthMatchesScenario2(t *testing.T) {
	_, cm, p0, p1, p2 := buildTriangle(t)
	// Expected tour length: the base edge of length 2 plus two diagonals of
	// length √2.
	cyc := NewCycle([]Passage{
		NewPassage(p0, p2, p1),
		NewPassage(p1, p0, p2),
		NewPassage(p2, p1, p0),
	})
	require.NoError(t, cyc.Validate())
	require.InDelta(t, 2+2*math.Sqrt2, cyc.Length(cm), 1e-9)
}
