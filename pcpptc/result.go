package pcpptc

import "github.com/covertour/pcpptc/gridmodel"

// Result is the outcome of a complete Solve run: the final closed tour,
// its cost, and a per-vertex coverage breakdown.
type Result struct {
	Tour        gridmodel.Cycle
	TouringCost float64
	Coverage    []gridmodel.CoverageReport
}
