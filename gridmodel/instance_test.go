package gridmodel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInstanceValidateEmptyIsFeasible(t *testing.T) {
	inst := NewInstance(NewGraph(), NewCostModel(NewGraph(), 1), nil)
	require.NoError(t, inst.Validate())
}

func TestInstanceValidateRejectsDisconnectedGraph(t *testing.T) {
	g := NewGraph()
	g.AddVertex(Point{0, 0})
	g.AddVertex(Point{1, 0})
	inst := NewInstance(g, NewCostModel(g, 1), nil)
	require.ErrorIs(t, inst.Validate(), ErrDisconnectedGraph)
}

func TestInstanceValidateRejectsUnreachableMandatory(t *testing.T) {
	// A lone vertex passes the connectivity check, so the missing neighbor
	// is what makes its mandatory coverage unreachable.
	g := NewGraph()
	c := g.AddVertex(Point{2, 0}) // isolated, mandatory coverage, unreachable
	require.True(t, g.Connected())

	cov := map[VertexHandle]Coverage{c: Simple()}
	inst := NewInstance(g, NewCostModel(g, 1), cov)
	require.ErrorIs(t, inst.Validate(), ErrUnreachableMandatory)
}

func TestInstanceCoverageOfDefaultsToOptional(t *testing.T) {
	g := NewGraph()
	a := g.AddVertex(Point{0, 0})
	inst := NewInstance(g, NewCostModel(g, 1), nil)
	require.Equal(t, Optional(), inst.CoverageOf(a))
}

func TestInstanceAnalyzeCoverageReportsOpportunityLoss(t *testing.T) {
	g, _, p0, p1, p2 := buildTriangle(t)
	cm := NewCostModel(g, 1)
	cov := map[VertexHandle]Coverage{
		p0: Simple(),
		p1: {4, 1},
	}
	inst := NewInstance(g, cm, cov)
	require.NoError(t, inst.Validate())

	reports := inst.AnalyzeCoverage(map[VertexHandle]int{p0: 1, p1: 0})
	byVertex := make(map[VertexHandle]CoverageReport, len(reports))
	for _, r := range reports {
		byVertex[r.Vertex] = r
	}

	require.Equal(t, float64(0), byVertex[p0].OpportunityLoss)
	require.Equal(t, 1, byVertex[p0].Required)
	require.Equal(t, float64(5), byVertex[p1].OpportunityLoss)
	require.Equal(t, 0, byVertex[p1].Required)

	_ = p2
}

func TestInstancePruneKeepsMandatoryOptionalAndVisited(t *testing.T) {
	g, _, p0, p1, p2 := buildTriangle(t)
	cov := map[VertexHandle]Coverage{
		p0: Simple(),
	}
	inst := NewInstance(g, NewCostModel(g, 1), cov)

	live := inst.Prune(map[VertexHandle]bool{p2: true})
	require.True(t, live[p0], "mandatory coverage keeps the vertex live")
	require.True(t, live[p2], "currently visited vertex stays live")
	require.False(t, live[p1], "no requirement and not visited: safe to drop")
}
