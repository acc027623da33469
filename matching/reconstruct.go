package matching

import (
	"errors"

	"github.com/covertour/pcpptc/gridmodel"
)

// ErrIncompleteMatching indicates pairs does not cover every end in g
// exactly once.
var ErrIncompleteMatching = errors.New("matching: pairs do not form a perfect matching over the graph's ends")

// Reconstruct walks the matched ends of g back into a cycle cover: from
// each unvisited end, alternately cross a matching edge (a travel hop
// between strips) and a strip's own skip edge (continuing straight
// through one vertex), collapsing each strip's two ends into the single
// vertex they share, until the walk returns to its start. A strip matched
// directly to its own partner denotes an unused strip and contributes no
// cycle.
func Reconstruct(g *Graph, pairs [][2]int) ([]gridmodel.Cycle, error) {
	n := len(g.Ends)
	matchOf := make([]int, n)
	for i := range matchOf {
		matchOf[i] = -1
	}
	for _, p := range pairs {
		if p[0] < 0 || p[0] >= n || p[1] < 0 || p[1] >= n {
			return nil, ErrIncompleteMatching
		}
		matchOf[p[0]] = p[1]
		matchOf[p[1]] = p[0]
	}
	for _, m := range matchOf {
		if m == -1 {
			return nil, ErrIncompleteMatching
		}
	}

	stripPartner := make([]int, n)
	stripEnds := make(map[int][2]int)
	for i, e := range g.Ends {
		pair := stripEnds[e.StripID]
		pair[e.Side] = i
		stripEnds[e.StripID] = pair
	}
	for _, pair := range stripEnds {
		stripPartner[pair[0]] = pair[1]
		stripPartner[pair[1]] = pair[0]
	}

	visited := make([]bool, n)
	var cycles []gridmodel.Cycle

	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}
		if matchOf[start] == stripPartner[start] {
			visited[start] = true
			visited[stripPartner[start]] = true
			continue
		}

		var verts []gridmodel.VertexHandle
		cur := start
		for {
			verts = append(verts, g.Ends[cur].Vertex)
			sp := stripPartner[cur]
			visited[cur] = true
			visited[sp] = true
			nxt := matchOf[sp]
			if nxt == start {
				break
			}
			cur = nxt
		}

		cycles = append(cycles, passagesFromVertices(verts))
	}

	return cycles, nil
}

func passagesFromVertices(verts []gridmodel.VertexHandle) gridmodel.Cycle {
	n := len(verts)
	passages := make([]gridmodel.Passage, n)
	for i, v := range verts {
		prev := verts[(i-1+n)%n]
		next := verts[(i+1)%n]
		passages[i] = gridmodel.NewPassage(v, prev, next)
	}

	return gridmodel.NewCycle(passages)
}
