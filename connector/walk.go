package connector

import "github.com/covertour/pcpptc/gridmodel"

// cycleFromWalk derives a Cycle's passages from a closed vertex walk:
// the passage centered at walk[i] is (walk[i-1], walk[i], walk[i+1]),
// indices taken modulo len(walk).
func cycleFromWalk(walk []gridmodel.VertexHandle) gridmodel.Cycle {
	n := len(walk)
	passages := make([]gridmodel.Passage, n)
	for i, v := range walk {
		prev := walk[(i-1+n)%n]
		next := walk[(i+1)%n]
		passages[i] = gridmodel.NewPassage(v, prev, next)
	}

	return gridmodel.NewCycle(passages)
}

// rotateTo returns walk rotated so it starts at the first occurrence of
// v, preserving order.
func rotateTo(walk []gridmodel.VertexHandle, v gridmodel.VertexHandle) []gridmodel.VertexHandle {
	for i, w := range walk {
		if w == v {
			out := make([]gridmodel.VertexHandle, 0, len(walk))
			out = append(out, walk[i:]...)
			out = append(out, walk[:i]...)

			return out
		}
	}

	return walk
}

func reversed(walk []gridmodel.VertexHandle) []gridmodel.VertexHandle {
	out := make([]gridmodel.VertexHandle, len(walk))
	for i, v := range walk {
		out[len(walk)-1-i] = v
	}

	return out
}

// MergeTwoCycles splices cj into ci per the cheapest connection found by
// FindConnection, returning the single resulting cycle.
func MergeTwoCycles(ci, cj gridmodel.Cycle, conn Connection) gridmodel.Cycle {
	if conn.Direct {
		walkI := rotateTo(ci.Vertices(), conn.AtVertex)
		walkJ := rotateTo(cj.Vertices(), conn.AtVertex)
		if conn.Swap {
			// Reversing cj's walk swaps which of its two neighbors at the
			// shared vertex links to which of ci's, selecting the other
			// cross-pairing.
			walkJ = append([]gridmodel.VertexHandle{walkJ[0]}, reversed(walkJ[1:])...)
		}
		merged := append(append([]gridmodel.VertexHandle{}, walkI...), walkJ...)

		return cycleFromWalk(merged)
	}

	walkI := rotateTo(ci.Vertices(), conn.SourceAt)
	walkJ := rotateTo(cj.Vertices(), conn.TargetAt)

	// Each break vertex is visited a second time, so its original passage
	// (a,v,b) becomes the two passages (a,v,n) and (n,v,b) that
	// startBreakCost and targetTurnOverhead price.
	merged := append([]gridmodel.VertexHandle{}, walkI...)
	merged = append(merged, conn.SourceAt)
	merged = append(merged, conn.Detour...)
	merged = append(merged, walkJ...)
	merged = append(merged, conn.TargetAt)
	merged = append(merged, reversed(conn.Detour)...)

	return cycleFromWalk(merged)
}
