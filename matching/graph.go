package matching

import (
	"math"

	"github.com/covertour/pcpptc/gridmodel"
	"github.com/covertour/pcpptc/strips"
)

// Graph is the auxiliary weighted graph over every selected vertex's
// atomic-strip ends. Two kinds of edges exist: a skip edge between a
// strip's own two ends, weighted at the strip's penalty (so matching
// those two ends together means the strip goes unused), and a transition
// edge between ends of graph-adjacent vertices, weighted at the
// direction-aware travel cost between them. All other pairs cost +Inf.
type Graph struct {
	Ends []strips.End
	Cost [][]float64
}

// Build assembles the auxiliary graph from every vertex's selected strip
// set. cm provides both adjacency (via cm.Graph()) and the direction-aware
// turn costs used for transition edges.
func Build(vsets []strips.VertexStrips, cm *gridmodel.CostModel) *Graph {
	var ends []strips.End
	penalty := make(map[int]float64)
	for _, vs := range vsets {
		for _, s := range vs.Strips {
			penalty[s.ID] = s.Penalty
		}
		ends = append(ends, vs.Ends...)
	}

	n := len(ends)
	cost := make([][]float64, n)
	for i := range cost {
		cost[i] = make([]float64, n)
		for j := range cost[i] {
			cost[i][j] = math.Inf(1)
		}
	}

	stripEnds := make(map[int][2]int)
	stripSeen := make(map[int]bool)
	for i, e := range ends {
		pair := stripEnds[e.StripID]
		pair[e.Side] = i
		stripEnds[e.StripID] = pair
		stripSeen[e.StripID] = true
	}
	for id := range stripSeen {
		pair := stripEnds[id]
		w := penalty[id]
		cost[pair[0]][pair[1]] = w
		cost[pair[1]][pair[0]] = w
	}

	g := cm.Graph()
	for i, ei := range ends {
		for j := i + 1; j < n; j++ {
			ej := ends[j]
			if ei.StripID == ej.StripID {
				continue
			}
			if !g.IsNeighbor(ei.Vertex, ej.Vertex) {
				continue
			}
			w := cm.Distance(ei.Vertex, ej.Vertex) +
				cm.TurnAtDirection(ei.Vertex, ei.Direction, ej.Vertex) +
				cm.TurnFromDirection(ej.Vertex, ei.Vertex, ej.Direction)
			if w < cost[i][j] {
				cost[i][j] = w
				cost[j][i] = w
			}
		}
	}

	return &Graph{Ends: ends, Cost: cost}
}
