package strips

import (
	"math"

	"github.com/covertour/pcpptc/gridmodel"
)

// Strip is an atomic strip at a vertex: an unoriented orientation θ ∈
// [0,π), carrying two opposed ends. Penalty is the coverage value this
// strip is responsible for (+Inf for the dominant, mandatory-coverage
// strip), and RepeatBudget records r, the number of times Select repeats
// each orientation at the vertex; nothing in this module reads or
// decrements it.
type Strip struct {
	ID           int
	Vertex       gridmodel.VertexHandle
	Theta        float64
	Penalty      float64
	RepeatBudget int
}

// End is one of a strip's two opposed ends. Side 0 has direction Theta;
// side 1 has direction Theta+π. Partner lookup is the XOR of the side
// bit, mirroring the "partner index" pairing named as a design note.
type End struct {
	StripID   int
	Side      int
	Vertex    gridmodel.VertexHandle
	Direction float64
}

// VertexStrips is the selected strip set for one vertex, plus the Ends
// matching consumes directly.
type VertexStrips struct {
	Vertex gridmodel.VertexHandle
	Strips []Strip
	Ends   []End
}

// endsFor expands strips into their two opposed ends each.
func endsFor(v gridmodel.VertexHandle, strips []Strip) []End {
	ends := make([]End, 0, 2*len(strips))
	for _, s := range strips {
		ends = append(ends,
			End{StripID: s.ID, Side: 0, Vertex: v, Direction: s.Theta},
			End{StripID: s.ID, Side: 1, Vertex: v, Direction: normalizeDir(s.Theta + math.Pi)},
		)
	}

	return ends
}

// Partner returns the other end of the same strip within ends (which
// must contain both ends of e's strip, as VertexStrips.Ends does; ends of
// other strips are skipped). It returns e itself if no partner is found.
func Partner(e End, ends []End) End {
	for _, o := range ends {
		if o.StripID == e.StripID && o.Side != e.Side {
			return o
		}
	}

	return e
}

func normalizeDir(theta float64) float64 {
	for theta < 0 {
		theta += 2 * math.Pi
	}
	for theta >= 2*math.Pi {
		theta -= 2 * math.Pi
	}

	return theta
}

// normalizeOrientation folds an absolute direction into [0,π), since a
// strip's orientation is unoriented (θ and θ+π are the same strip).
func normalizeOrientation(theta float64) float64 {
	for theta < 0 {
		theta += math.Pi
	}
	for theta >= math.Pi {
		theta -= math.Pi
	}

	return theta
}
