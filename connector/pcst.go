package connector

import (
	"math"
	"sort"

	"github.com/covertour/pcpptc/gridmodel"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Connect joins a cycle cover's disjoint cycles into one closed tour.
// Every pairwise connection cost is computed once via FindConnection,
// negative-cost ("free") merges are applied immediately, the
// remaining cycles are scored by net prize and trimmed to the subset
// worth spanning (mandatory cycles, marked by an infinite net prize, are
// never trimmed), and the surviving set is joined by a minimum spanning
// tree over connection cost before a final depth-first merge produces
// the tour. An empty cover returns the zero Cycle; a single-cycle cover
// is returned unchanged.
func Connect(inst *gridmodel.Instance, cover []gridmodel.Cycle) gridmodel.Cycle {
	if len(cover) == 0 {
		return gridmodel.Cycle{}
	}
	if len(cover) == 1 {
		return cover[0]
	}

	cm := inst.Cost
	cycles := append([]gridmodel.Cycle(nil), cover...)
	edges := pairwiseConnections(cm, cycles)

	cycles, edges = greedyFreeMerges(cm, cycles, edges)
	if len(cycles) == 1 {
		return cycles[0]
	}

	prizes := NetPrize(inst, cycles)
	alive := selectSpanningSet(cycles, prizes, edges)

	return dfsMerge(cm, cycles, alive, edges)
}

// pairwiseConnections computes FindConnection for every unordered pair.
func pairwiseConnections(cm *gridmodel.CostModel, cycles []gridmodel.Cycle) map[[2]int]Connection {
	edges := make(map[[2]int]Connection)
	for i := 0; i < len(cycles); i++ {
		for j := i + 1; j < len(cycles); j++ {
			edges[[2]int{i, j}] = FindConnection(cm, cycles[i], cycles[j])
		}
	}

	return edges
}

func edgeCost(edges map[[2]int]Connection, i, j int) float64 {
	if i == j {
		return 0
	}
	if i > j {
		i, j = j, i
	}
	c, ok := edges[[2]int{i, j}]
	if !ok {
		return math.Inf(1)
	}

	return c.Cost
}

// greedyFreeMerges repeatedly contracts the cheapest remaining pairwise
// connection while it is negative: such a merge is strictly cheaper than
// leaving the two cycles separate, so there is no reason to defer it to
// the PCST selection stage.
func greedyFreeMerges(cm *gridmodel.CostModel, cycles []gridmodel.Cycle, edges map[[2]int]Connection) ([]gridmodel.Cycle, map[[2]int]Connection) {
	for {
		if len(cycles) == 1 {
			return cycles, edges
		}

		bi, bj, bestCost := -1, -1, 0.0
		for k, c := range edges {
			if c.Cost < bestCost {
				bi, bj, bestCost = k[0], k[1], c.Cost
			}
		}
		if bi == -1 {
			return cycles, edges
		}

		merged := MergeTwoCycles(cycles[bi], cycles[bj], edges[[2]int{bi, bj}])
		cycles, edges = contract(cm, cycles, edges, bi, bj, merged)
	}
}

// contract replaces cycles[i] and cycles[j] with merged, recomputing
// every connection involving the new cycle and renumbering the rest.
func contract(cm *gridmodel.CostModel, cycles []gridmodel.Cycle, edges map[[2]int]Connection, i, j int, merged gridmodel.Cycle) ([]gridmodel.Cycle, map[[2]int]Connection) {
	kept := make([]gridmodel.Cycle, 0, len(cycles)-1)
	kept = append(kept, merged)
	for k, c := range cycles {
		if k != i && k != j {
			kept = append(kept, c)
		}
	}

	return kept, pairwiseConnections(cm, kept)
}

// selectSpanningSet decides which cycles are worth including in the
// final tour: mandatory cycles (infinite net prize) are always kept;
// optional cycles are pruned one MST leaf at a time, choosing among the
// leaves whose net prize is less than the cost of the MST edge attaching
// them the one with the cheapest such edge, until no such leaf remains.
func selectSpanningSet(cycles []gridmodel.Cycle, prizes []float64, edges map[[2]int]Connection) []int {
	alive := make([]int, 0, len(cycles))
	for i := range cycles {
		if prizes[i] >= 0 || math.IsInf(prizes[i], 1) {
			alive = append(alive, i)
		}
	}
	if len(alive) == 0 {
		alive = []int{bestPrizeIndex(prizes)}
	}

	for len(alive) > 1 {
		mstEdges := mstOver(alive, edges)
		degree := make(map[int]int, len(alive))
		for _, e := range mstEdges {
			degree[alive[e[0]]]++
			degree[alive[e[1]]]++
		}

		leaf, leafEdgeCost, found := -1, math.Inf(1), false
		for _, e := range mstEdges {
			a, b := alive[e[0]], alive[e[1]]
			w := edgeCost(edges, a, b)
			if degree[a] == 1 && !math.IsInf(prizes[a], 1) && prizes[a] < w && w < leafEdgeCost {
				leaf, leafEdgeCost, found = a, w, true
			}
			if degree[b] == 1 && !math.IsInf(prizes[b], 1) && prizes[b] < w && w < leafEdgeCost {
				leaf, leafEdgeCost, found = b, w, true
			}
		}
		if !found {
			break
		}

		alive = removeValue(alive, leaf)
	}

	assertConnected(alive, edges)

	return alive
}

func bestPrizeIndex(prizes []float64) int {
	best := 0
	for i, p := range prizes {
		if p > prizes[best] {
			best = i
		}
	}

	return best
}

func removeValue(xs []int, v int) []int {
	out := make([]int, 0, len(xs)-1)
	for _, x := range xs {
		if x != v {
			out = append(out, x)
		}
	}

	return out
}

// mstOver returns a minimum spanning tree over alive (indices into the
// original cycle slice), expressed as index pairs into alive itself.
func mstOver(alive []int, edges map[[2]int]Connection) [][2]int {
	return primMST(len(alive), func(a, b int) float64 {
		return edgeCost(edges, alive[a], alive[b])
	})
}

// assertConnected verifies, via gonum's connected-components check, that
// the surviving cycle set forms a single component under the available
// connection edges — a sanity check on selectSpanningSet's pruning loop
// rather than a load-bearing computation, since an MST-derived set is
// connected by construction unless pruning breaks it.
func assertConnected(alive []int, edges map[[2]int]Connection) {
	if len(alive) <= 1 {
		return
	}

	g := simple.NewUndirectedGraph()
	for _, i := range alive {
		g.AddNode(simple.Node(int64(i)))
	}
	for _, e := range mstOver(alive, edges) {
		g.SetEdge(g.NewEdge(simple.Node(int64(alive[e[0]])), simple.Node(int64(alive[e[1]]))))
	}

	if len(topo.ConnectedComponents(g)) != 1 {
		panic("connector: spanning set is not connected")
	}
}

// dfsMerge walks the MST over alive in depth-first post-order from an
// arbitrary root, merging each child cycle into its parent's accumulator.
func dfsMerge(cm *gridmodel.CostModel, cycles []gridmodel.Cycle, alive []int, edges map[[2]int]Connection) gridmodel.Cycle {
	if len(alive) == 1 {
		return cycles[alive[0]]
	}

	mst := mstOver(alive, edges)
	adj := make(map[int][]int, len(alive))
	for _, e := range mst {
		adj[e[0]] = append(adj[e[0]], e[1])
		adj[e[1]] = append(adj[e[1]], e[0])
	}
	for k := range adj {
		sort.Ints(adj[k])
	}

	visited := make([]bool, len(alive))
	var walk func(u int) gridmodel.Cycle
	walk = func(u int) gridmodel.Cycle {
		visited[u] = true
		acc := cycles[alive[u]]
		for _, v := range adj[u] {
			if !visited[v] {
				child := walk(v)
				acc = MergeTwoCycles(acc, child, FindConnection(cm, acc, child))
			}
		}

		return acc
	}

	return walk(0)
}
