package connector

import (
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/prim_kruskal"
)

// mstWeightScale converts the complete graph's float64 costs into the
// int64 weights core.Graph requires: cost values here are accumulated
// turn and distance costs, not currency, so six decimal digits of
// fixed-point precision is far finer than the grid resolution anyone
// solving PCPPTC instances would care about.
const mstWeightScale = 1e6

// primMST computes a minimum spanning tree over the complete graph given
// by cost(i,j) for i,j in nodes (nodes is a slice of arbitrary comparable
// keys), returning the selected edges as index pairs into nodes. The
// complete graph is small (surviving cycles after greedy free merges),
// so it is built fresh as a core.Graph and handed to prim_kruskal.Prim
// rather than reimplementing Prim's algorithm: the only adaptation
// needed is the float64-to-int64 weight scaling core.Graph requires.
func primMST(n int, cost func(i, j int) float64) [][2]int {
	if n <= 1 {
		return nil
	}

	g := core.NewGraph(core.WithWeighted())
	for i := 0; i < n; i++ {
		if err := g.AddVertex(strconv.Itoa(i)); err != nil {
			panic(fmt.Errorf("connector: building MST graph: %w", err))
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			c := cost(i, j)
			if math.IsInf(c, 1) {
				continue
			}
			weight := int64(math.Round(c * mstWeightScale))
			if _, err := g.AddEdge(strconv.Itoa(i), strconv.Itoa(j), weight); err != nil {
				panic(fmt.Errorf("connector: building MST graph: %w", err))
			}
		}
	}

	mst, _, err := prim_kruskal.Prim(g, "0")
	if err != nil {
		// Infinite-cost edges were skipped above; a disconnected complete
		// graph only happens when cost reports +Inf for every pairing
		// touching some node, which callers never do.
		panic(fmt.Errorf("connector: MST over complete graph: %w", err))
	}

	edges := make([][2]int, 0, len(mst))
	for _, e := range mst {
		from, err := strconv.Atoi(e.From)
		if err != nil {
			panic(fmt.Errorf("connector: parsing MST vertex id: %w", err))
		}
		to, err := strconv.Atoi(e.To)
		if err != nil {
			panic(fmt.Errorf("connector: parsing MST vertex id: %w", err))
		}
		edges = append(edges, [2]int{from, to})
	}

	return edges
}
