package pcpptc

import (
	"log/slog"

	"github.com/covertour/pcpptc/connector"
	"github.com/covertour/pcpptc/fracsol"
	"github.com/covertour/pcpptc/gridmodel"
	"github.com/covertour/pcpptc/lns"
	"github.com/covertour/pcpptc/lp"
	"github.com/covertour/pcpptc/matching"
	"github.com/covertour/pcpptc/strips"
	"github.com/google/uuid"
)

// Solve runs the full pipeline over inst: LP relaxation and
// branch-and-bound integralization, turn-aware strip selection and
// matching into a cycle cover, local re-optimization, cycle connection
// into a single tour, and a final local re-optimization pass restricted
// to the tour. cb may be the zero value; every field is optional.
//
// Every run is tagged with a fresh correlation ID attached to its slog
// records, so a single solve can be traced across log lines even when
// many run concurrently.
func Solve(inst *gridmodel.Instance, cfg Config, cb Callbacks) (*Result, error) {
	runID := uuid.New().String()
	log := slog.Default().With("run_id", runID)
	log.Info("pcpptc solve started")

	result, err := solve(inst, cfg, cb, log)
	if err != nil {
		log.Error("pcpptc solve failed", "error", err)
		return nil, err
	}

	log.Info("pcpptc solve completed", "touring_cost", result.TouringCost)

	return result, nil
}

func solve(inst *gridmodel.Instance, cfg Config, cb Callbacks, log *slog.Logger) (*Result, error) {
	if err := inst.Validate(); err != nil {
		return nil, stageError(StageValidate, err)
	}
	if inst.Graph.NumVertices() == 0 {
		return &Result{Tour: gridmodel.NewCycle(nil)}, nil
	}

	model, err := lp.NewModel(inst)
	if err != nil {
		return nil, stageError(StageRelaxation, err)
	}

	relaxed, objective, err := lp.Solve(cfg.Solver, model)
	if err != nil {
		return nil, stageError(StageRelaxation, err)
	}
	cb.fractional(relaxed, objective)
	log.Debug("relaxation solved", "objective", objective)

	integral, _, err := model.Integralize(cfg.Solver, cfg.IntegralizeDepth)
	if err != nil {
		return nil, stageError(StageIntegralize, err)
	}

	cover, err := matchCycleCover(inst, cfg, integral)
	if err != nil {
		return nil, err
	}
	log.Debug("cycle cover matched", "cycles", len(cover))

	prizes := connector.NetPrize(inst, cover)
	for i, c := range cover {
		cb.gridSolution(c, c.TouringCost(inst.Cost), prizes[i])
	}

	coverSol, err := cyclesToSolution(cover)
	if err != nil {
		return nil, stageError(StageMatching, err)
	}

	coverOpt := lns.CycleCoverOptimizer{Config: lns.Config{
		Solver:           cfg.Solver,
		Steps:            cfg.CycleCoverOptSteps,
		AreaSize:         cfg.CycleCoverOptSize,
		IntegralizeDepth: cfg.IntegralizeDepth,
	}}
	optimizedCoverSol, err := coverOpt.Run(inst, coverSol)
	if err != nil {
		return nil, stageError(StageMatching, err)
	}

	tour := connector.Connect(inst, decomposeCycles(optimizedCoverSol))
	log.Debug("cycles connected into tour", "vertices", len(tour.Vertices()))

	tourSol, err := cyclesToSolution([]gridmodel.Cycle{tour})
	if err != nil {
		return nil, stageError(StageConnect, err)
	}

	covered := make(map[gridmodel.VertexHandle]bool)
	for v := range tour.VisitCounts() {
		covered[v] = true
	}

	tourOpt := lns.TourOptimizer{Config: lns.Config{
		Solver:           cfg.Solver,
		Steps:            cfg.TourOptSteps,
		AreaSize:         cfg.TourOptSize,
		IntegralizeDepth: cfg.IntegralizeDepth,
	}}
	optimizedTourSol, err := tourOpt.Run(inst, tourSol, covered)
	if err != nil {
		return nil, stageError(StageConnect, err)
	}

	final := decomposeCycles(optimizedTourSol)
	if len(final) != 1 {
		return nil, stageError(StageConnect, ErrNotFlowFeasible)
	}

	finalTour := final[0]
	if err := Validate(inst, finalTour); err != nil {
		return nil, stageError(StageConnect, err)
	}

	return &Result{
		Tour:        finalTour,
		TouringCost: finalTour.TouringCost(inst.Cost),
		Coverage:    inst.AnalyzeCoverage(finalTour.VisitCounts()),
	}, nil
}

// matchCycleCover selects atomic strips at every vertex, builds the
// auxiliary matching graph, and reconstructs the resulting cycle cover.
func matchCycleCover(inst *gridmodel.Instance, cfg Config, sol *fracsol.Solution) ([]gridmodel.Cycle, error) {
	id := 0
	nextID := func() int {
		id++
		return id
	}

	vsets := make([]strips.VertexStrips, 0, inst.Graph.NumVertices())
	for _, v := range inst.Graph.Vertices() {
		vsets = append(vsets, strips.Select(cfg.Strategy, v, inst, sol, cfg.K, cfg.R, nextID))
	}

	g := matching.Build(vsets, inst.Cost)

	oracle := cfg.Oracle
	if oracle == nil {
		oracle = matching.Greedy{}
	}
	pairs, err := oracle.Match(g.Cost)
	if err != nil {
		return nil, stageError(StageMatching, err)
	}

	cycles, err := matching.Reconstruct(g, pairs)
	if err != nil {
		return nil, stageError(StageMatching, err)
	}

	return cycles, nil
}
