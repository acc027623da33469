package matching

import (
	"math"
	"testing"

	"github.com/covertour/pcpptc/fracsol"
	"github.com/covertour/pcpptc/gridmodel"
	"github.com/covertour/pcpptc/strips"
	"github.com/stretchr/testify/require"
)

func squareInstance(t *testing.T) (*gridmodel.Instance, []gridmodel.VertexHandle) {
	t.Helper()
	g := gridmodel.NewGraph()
	v0 := g.AddVertex(gridmodel.Point{X: 0, Y: 0})
	v1 := g.AddVertex(gridmodel.Point{X: 1, Y: 0})
	v2 := g.AddVertex(gridmodel.Point{X: 1, Y: 1})
	v3 := g.AddVertex(gridmodel.Point{X: 0, Y: 1})
	require.NoError(t, g.AddEdge(v0, v1))
	require.NoError(t, g.AddEdge(v1, v2))
	require.NoError(t, g.AddEdge(v2, v3))
	require.NoError(t, g.AddEdge(v3, v0))
	cm := gridmodel.NewCostModel(g, 1)
	cov := map[gridmodel.VertexHandle]gridmodel.Coverage{
		v0: gridmodel.Repeated(1),
		v1: gridmodel.Repeated(1),
		v2: gridmodel.Repeated(1),
		v3: gridmodel.Repeated(1),
	}
	inst := gridmodel.NewInstance(g, cm, cov)

	return inst, []gridmodel.VertexHandle{v0, v1, v2, v3}
}

func buildVertexStrips(t *testing.T, inst *gridmodel.Instance, verts []gridmodel.VertexHandle) []strips.VertexStrips {
	t.Helper()
	next := 0
	nextID := func() int { id := next; next++; return id }

	var sol *fracsol.Solution
	out := make([]strips.VertexStrips, len(verts))
	for i, v := range verts {
		out[i] = strips.Select(strips.Equiangular{}, v, inst, sol, 1, 1, nextID)
	}

	return out
}

func TestBuildGraphSkipEdgeCarriesStripPenalty(t *testing.T) {
	inst, verts := squareInstance(t)
	vsets := buildVertexStrips(t, inst, verts)
	g := Build(vsets, inst.Cost)

	require.Len(t, g.Ends, 8)
	for _, vs := range vsets {
		require.Len(t, vs.Strips, 1)
		s := vs.Strips[0]
		require.True(t, math.IsInf(s.Penalty, 1), "mandatory coverage dominates the single strip")
	}

	// Skip edge cost between a strip's own two ends equals its penalty.
	stripEnds := make(map[int][2]int)
	for i, e := range g.Ends {
		pair := stripEnds[e.StripID]
		pair[e.Side] = i
		stripEnds[e.StripID] = pair
	}
	for _, pair := range stripEnds {
		require.True(t, math.IsInf(g.Cost[pair[0]][pair[1]], 1))
	}
}

func TestGreedyMatchProducesPerfectMatching(t *testing.T) {
	inst, verts := squareInstance(t)
	vsets := buildVertexStrips(t, inst, verts)
	g := Build(vsets, inst.Cost)

	pairs, err := Greedy{}.Match(g.Cost)
	require.NoError(t, err)
	require.Len(t, pairs, len(g.Ends)/2)

	seen := make(map[int]bool)
	for _, p := range pairs {
		require.False(t, seen[p[0]])
		require.False(t, seen[p[1]])
		seen[p[0]], seen[p[1]] = true, true
	}
	require.Len(t, seen, len(g.Ends))
}

func TestReconstructProducesValidCycles(t *testing.T) {
	inst, verts := squareInstance(t)
	vsets := buildVertexStrips(t, inst, verts)
	g := Build(vsets, inst.Cost)

	pairs, err := Greedy{}.Match(g.Cost)
	require.NoError(t, err)

	cycles, err := Reconstruct(g, pairs)
	require.NoError(t, err)
	require.NotEmpty(t, cycles)

	visited := make(map[gridmodel.VertexHandle]int)
	for _, c := range cycles {
		require.NoError(t, c.Validate())
		for _, p := range c.Passages {
			require.True(t, inst.Graph.IsNeighbor(p.V, p.A), "passage endpoint A must be an actual neighbor")
			require.True(t, inst.Graph.IsNeighbor(p.V, p.B), "passage endpoint B must be an actual neighbor")
			visited[p.V]++
		}
	}
	for _, v := range verts {
		require.Greater(t, visited[v], 0, "every vertex with mandatory coverage must be visited")
	}
}

func TestGreedyRejectsOddNodeCount(t *testing.T) {
	cost := [][]float64{{0, 1, 2}, {1, 0, 3}, {2, 3, 0}}
	_, err := Greedy{}.Match(cost)
	require.ErrorIs(t, err, ErrOddNodeCount)
}

func TestReconstructSkipsUnusedStrip(t *testing.T) {
	g := &Graph{
		Ends: []strips.End{
			{StripID: 1, Side: 0, Vertex: 10, Direction: 0},
			{StripID: 1, Side: 1, Vertex: 10, Direction: math.Pi},
		},
		Cost: [][]float64{{math.Inf(1), 5}, {5, math.Inf(1)}},
	}
	cycles, err := Reconstruct(g, [][2]int{{0, 1}})
	require.NoError(t, err)
	require.Empty(t, cycles, "a strip matched to its own partner is unused")
}
