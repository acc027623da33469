package pcpptclog

import (
	"github.com/covertour/pcpptc/fracsol"
	"github.com/covertour/pcpptc/gridmodel"
	"github.com/covertour/pcpptc/pcpptc"
)

// Callbacks returns a pcpptc.Callbacks that logs each stage Log reports
// through, at the given logger name. Log must already be initialized.
func Callbacks(name string) pcpptc.Callbacks {
	logger := WithStage(name)

	return pcpptc.Callbacks{
		OnFractionalSolution: func(_ *fracsol.Solution, objective float64) {
			logger.Info("fractional relaxation solved", "objective", objective)
		},
		OnGridSolution: func(c gridmodel.Cycle, touringCost, netPrize float64) {
			logger.Info("cycle matched",
				"vertices", len(c.Vertices()),
				"touring_cost", touringCost,
				"net_prize", netPrize,
			)
		},
	}
}
