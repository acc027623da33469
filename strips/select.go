package strips

import (
	"math"
	"sort"

	"github.com/covertour/pcpptc/fracsol"
	"github.com/covertour/pcpptc/gridmodel"
)

// Strategy picks the set of base orientations (length ≤ k, one entry per
// atomic strip family) for a vertex. Select then repeats each r times and
// runs coverage assignment uniformly across strategies.
type Strategy interface {
	baseOrientations(v gridmodel.VertexHandle, inst *gridmodel.Instance, sol *fracsol.Solution, k int) []float64
}

// orientationDistance is the unoriented angular distance between two
// orientations in [0,π).
func orientationDistance(a, b float64) float64 {
	d := math.Abs(a - b)
	if d > math.Pi/2 {
		d = math.Pi - d
	}

	return d
}

func nearestOrientation(theta float64, orientations []float64) int {
	best := 0
	bestDist := math.Inf(1)
	for i, o := range orientations {
		d := orientationDistance(theta, o)
		if d < bestDist {
			best, bestDist = i, d
		}
	}

	return best
}

// absorbedUsage approximates "LP usage projected onto orientation i":
// every passage at v contributes its value to the orientation nearest
// each of its two sides (a U-turn contributes to a single orientation
// twice, matching its double use of one edge).
func absorbedUsage(v gridmodel.VertexHandle, g *gridmodel.Graph, orientations []float64, sol *fracsol.Solution) []float64 {
	usage := make([]float64, len(orientations))
	if sol == nil {
		return usage
	}
	sol.Each(func(p gridmodel.Passage, value float64) {
		if p.V != v {
			return
		}
		pv, _ := g.Position(v)
		pa, _ := g.Position(p.A)
		pb, _ := g.Position(p.B)
		dirA := normalizeOrientation(math.Atan2(pa.Y-pv.Y, pa.X-pv.X))
		dirB := normalizeOrientation(math.Atan2(pb.Y-pv.Y, pb.X-pv.X))
		usage[nearestOrientation(dirA, orientations)] += value
		usage[nearestOrientation(dirB, orientations)] += value
	})

	return usage
}

// Select runs strategy over v and returns the final strip set: base
// orientations repeated r times each, with coverage obligations
// distributed across the repetitions by absorbed LP usage.
func Select(strategy Strategy, v gridmodel.VertexHandle, inst *gridmodel.Instance, sol *fracsol.Solution, k, r int, nextID func() int) VertexStrips {
	orientations := strategy.baseOrientations(v, inst, sol, k)
	usage := absorbedUsage(v, inst.Graph, orientations, sol)

	type instance struct {
		orientIdx int
		repeatIdx int
		id        int
		usage     float64
	}
	var instances []instance
	for oi, theta := range orientations {
		for ri := 0; ri < r; ri++ {
			instances = append(instances, instance{orientIdx: oi, repeatIdx: ri, id: nextID(), usage: usage[oi]})
		}
		_ = theta
	}

	// Order by descending absorbed usage (the orientation actually carrying
	// traffic), tie-broken by orientation then repetition index for
	// determinism.
	sort.SliceStable(instances, func(i, j int) bool {
		if instances[i].usage != instances[j].usage {
			return instances[i].usage > instances[j].usage
		}
		if instances[i].orientIdx != instances[j].orientIdx {
			return instances[i].orientIdx < instances[j].orientIdx
		}

		return instances[i].repeatIdx < instances[j].repeatIdx
	})

	cov := inst.CoverageOf(v)
	mandatory := cov.MandatoryCount() > 0
	optionalTail := cov[min(len(cov), cov.MandatoryCount()):]

	strips := make([]Strip, len(instances))
	tailIdx := 0
	for i, inc := range instances {
		penalty := 0.0
		switch {
		case i == 0 && mandatory:
			penalty = math.Inf(1)
		case tailIdx < len(optionalTail):
			penalty = optionalTail[tailIdx]
			tailIdx++
		}
		strips[i] = Strip{
			ID:           inc.id,
			Vertex:       v,
			Theta:        orientations[inc.orientIdx],
			Penalty:      penalty,
			RepeatBudget: r,
		}
	}

	return VertexStrips{Vertex: v, Strips: strips, Ends: endsFor(v, strips)}
}
