package pcpptc

import "github.com/covertour/pcpptc/gridmodel"

// ErrPassageNotGraphAdjacent indicates a cycle passage whose endpoints
// are not graph-adjacent to its vertex.
var ErrPassageNotGraphAdjacent = gridmodel.ErrNotNeighbors

// Validate re-checks a finished tour against an instance independently
// of Solve: connectivity of its passage sequence, graph-adjacency of
// every passage endpoint, and that every mandatory coverage requirement
// is met. It does not require the tour to have been produced by Solve,
// so callers can re-validate after their own post-processing.
func Validate(inst *gridmodel.Instance, c gridmodel.Cycle) error {
	if err := c.Validate(); err != nil {
		return err
	}

	for _, p := range c.Passages {
		if !inst.Graph.IsNeighbor(p.V, p.A) || !inst.Graph.IsNeighbor(p.V, p.B) {
			return ErrPassageNotGraphAdjacent
		}
	}

	visits := c.VisitCounts()
	for v, cov := range inst.Coverage {
		if cov.MandatoryCount() > visits[v] {
			return ErrInfeasible
		}
	}

	return nil
}
