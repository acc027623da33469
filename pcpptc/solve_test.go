package pcpptc

import (
	"testing"

	"github.com/covertour/pcpptc/fracsol"
	"github.com/covertour/pcpptc/gridmodel"
	"github.com/covertour/pcpptc/lp"
	"github.com/stretchr/testify/require"
)

func triangleInstance(t *testing.T, coverage map[gridmodel.VertexHandle]gridmodel.Coverage) (*gridmodel.Instance, gridmodel.VertexHandle, gridmodel.VertexHandle, gridmodel.VertexHandle) {
	t.Helper()
	g := gridmodel.NewGraph()
	p0 := g.AddVertex(gridmodel.Point{X: 0, Y: 0})
	p1 := g.AddVertex(gridmodel.Point{X: 1, Y: 1})
	p2 := g.AddVertex(gridmodel.Point{X: 2, Y: 0})
	require.NoError(t, g.AddEdge(p0, p1))
	require.NoError(t, g.AddEdge(p1, p2))
	require.NoError(t, g.AddEdge(p0, p2))
	cm := gridmodel.NewCostModel(g, 1)
	inst := gridmodel.NewInstance(g, cm, coverage)
	require.NoError(t, inst.Validate())

	return inst, p0, p1, p2
}

func twoSquaresInstance(t *testing.T) (*gridmodel.Instance, []gridmodel.VertexHandle) {
	t.Helper()
	g := gridmodel.NewGraph()
	verts := make([]gridmodel.VertexHandle, 0, 10)
	for i := 0; i < 5; i++ {
		for j := 0; j < 2; j++ {
			verts = append(verts, g.AddVertex(gridmodel.Point{X: float64(i), Y: float64(j)}))
		}
	}
	idx := func(i, j int) gridmodel.VertexHandle { return verts[i*2+j] }
	for i := 0; i < 5; i++ {
		require.NoError(t, g.AddEdge(idx(i, 0), idx(i, 1)))
	}
	for i := 0; i < 4; i++ {
		require.NoError(t, g.AddEdge(idx(i, 0), idx(i+1, 0)))
		require.NoError(t, g.AddEdge(idx(i, 1), idx(i+1, 1)))
	}
	cm := gridmodel.NewCostModel(g, 1)
	cov := make(map[gridmodel.VertexHandle]gridmodel.Coverage)
	for _, corner := range []gridmodel.VertexHandle{idx(0, 0), idx(0, 1), idx(1, 0), idx(1, 1), idx(3, 0), idx(3, 1), idx(4, 0), idx(4, 1)} {
		cov[corner] = gridmodel.Repeated(1)
	}
	inst := gridmodel.NewInstance(g, cm, cov)
	require.NoError(t, inst.Validate())

	return inst, verts
}

func TestSolveAllOptionalYieldsEmptyTour(t *testing.T) {
	inst, _, _, _ := triangleInstance(t, nil)

	result, err := Solve(inst, DefaultConfig(), Callbacks{})
	require.NoError(t, err)
	require.Empty(t, result.Tour.Passages)
	require.Zero(t, result.TouringCost)
}

func TestSolveAllMandatoryCoversEveryVertexOfATriangle(t *testing.T) {
	cov := map[gridmodel.VertexHandle]gridmodel.Coverage{}
	inst, p0, p1, p2 := triangleInstance(t, cov)
	inst.Coverage[p0] = gridmodel.Repeated(1)
	inst.Coverage[p1] = gridmodel.Repeated(1)
	inst.Coverage[p2] = gridmodel.Repeated(1)

	var sawFractional, sawGrid bool
	cb := Callbacks{
		OnFractionalSolution: func(*fracsol.Solution, float64) { sawFractional = true },
		OnGridSolution:       func(gridmodel.Cycle, float64, float64) { sawGrid = true },
	}

	result, err := Solve(inst, DefaultConfig(), cb)
	require.NoError(t, err)
	require.NoError(t, Validate(inst, result.Tour))

	visits := result.Tour.VisitCounts()
	require.Equal(t, 1, visits[p0])
	require.Equal(t, 1, visits[p1])
	require.Equal(t, 1, visits[p2])
	require.True(t, sawFractional)
	require.True(t, sawGrid)
	require.Len(t, result.Coverage, 3)
}

func TestSolveConnectsTwoDisjointSquaresIntoOneTour(t *testing.T) {
	inst, _ := twoSquaresInstance(t)

	result, err := Solve(inst, DefaultConfig(), Callbacks{})
	require.NoError(t, err)
	require.NoError(t, Validate(inst, result.Tour))

	for v, cov := range inst.Coverage {
		require.GreaterOrEqual(t, result.Tour.VisitCounts()[v], cov.MandatoryCount())
	}
}

func TestValidateRejectsCycleMissingMandatoryCoverage(t *testing.T) {
	cov := map[gridmodel.VertexHandle]gridmodel.Coverage{}
	inst, p0, p1, p2 := triangleInstance(t, cov)
	inst.Coverage[p0] = gridmodel.Repeated(1)

	// A valid two-vertex closed walk (p1 <-> p2, u-turning at each end)
	// that never reaches the mandatory p0.
	detour := gridmodel.NewCycle([]gridmodel.Passage{
		gridmodel.NewPassage(p1, p2, p2),
		gridmodel.NewPassage(p2, p1, p1),
	})
	require.NoError(t, detour.Validate())

	err := Validate(inst, detour)
	require.ErrorIs(t, err, ErrInfeasible)
}

func TestCheckFeasibilityAcceptsFullTriangleSolution(t *testing.T) {
	cov := map[gridmodel.VertexHandle]gridmodel.Coverage{}
	inst, p0, p1, p2 := triangleInstance(t, cov)
	inst.Coverage[p0] = gridmodel.Repeated(1)
	inst.Coverage[p1] = gridmodel.Repeated(1)
	inst.Coverage[p2] = gridmodel.Repeated(1)

	model, err := lp.NewModel(inst)
	require.NoError(t, err)
	sol, _, err := model.Integralize(DefaultConfig().Solver, DefaultConfig().IntegralizeDepth)
	require.NoError(t, err)

	require.True(t, CheckFeasibility(inst, sol))
}
