package lp

import (
	"container/heap"
	"math"

	"github.com/covertour/pcpptc/fracsol"
	"github.com/covertour/pcpptc/simplex"
)

// bbNode is one branch-and-bound search node: the base model plus the
// extra passage-variable bound constraints accumulated along the path
// from the root, and its LP relaxation's result once solved.
type bbNode struct {
	extra     []simplex.Constraint
	result    simplex.Result
	objective float64
}

// bbQueue is a min-heap over bbNode ordered ascending by LP objective,
// giving best-first branch expansion order.
type bbQueue []*bbNode

func (q bbQueue) Len() int            { return len(q) }
func (q bbQueue) Less(i, j int) bool  { return q[i].objective < q[j].objective }
func (q bbQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *bbQueue) Push(x interface{}) { *q = append(*q, x.(*bbNode)) }
func (q *bbQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]

	return item
}

func fractionality(x float64) float64 {
	floor := math.Floor(x)
	ceil := math.Ceil(x)
	a, b := x-floor, ceil-x

	return math.Min(a, b)
}

// mostFractionalPassage scores every non-integral passage column by
// fractionality(x)·passage_cost·vertex_fractionality(v) and returns the
// column index of the highest-scoring one, or -1 if the solution is
// already integral on every passage column (penalty columns are never
// branched on: they are already bounded in [0,1] and any fractional
// value there simply reflects partial penalty payment, not a structural
// choice the matching stage needs resolved).
func (m *Model) mostFractionalPassage(values []float64) int {
	vertexFrac := make(map[int]float64, len(m.passages))
	for i, p := range m.passages {
		f := fractionality(values[i])
		if f > 1e-9 {
			vertexFrac[int(p.V)] += f
		}
	}

	best := -1
	var bestScore float64
	for i, p := range m.passages {
		f := fractionality(values[i])
		if f <= 1e-9 {
			continue
		}
		score := f * p.Cost(m.inst.Cost) * vertexFrac[int(p.V)]
		if best == -1 || score > bestScore {
			best, bestScore = i, score
		}
	}

	return best
}

func (m *Model) problemWithExtra(extra []simplex.Constraint) simplex.Problem {
	p := m.Problem
	p.AtLeasts = append(append([]simplex.Constraint(nil), m.Problem.AtLeasts...), extra...)

	return p
}

// upperBound returns an AtLeast constraint encoding x_col ≤ ub.
func (m *Model) upperBound(col int, ub float64) simplex.Constraint {
	coeffs := make([]float64, m.numVars())
	coeffs[col] = -1

	return simplex.Constraint{Coeffs: coeffs, RHS: -ub}
}

// lowerBound returns an AtLeast constraint encoding x_col ≥ lb.
func (m *Model) lowerBound(col int, lb float64) simplex.Constraint {
	coeffs := make([]float64, m.numVars())
	coeffs[col] = 1

	return simplex.Constraint{Coeffs: coeffs, RHS: lb}
}

// Integralize runs best-first branch-and-bound up to depth expansions (0
// disables it: the caller should use Solve directly).
// It is anytime: the best incumbent found so far — fractional if depth
// was exhausted before an integral node was reached — is always
// returned.
func (m *Model) Integralize(solver simplex.Solver, depth int) (*fracsol.Solution, float64, error) {
	root := &bbNode{}
	res, err := solver.Solve(m.problemWithExtra(root.extra))
	if err != nil {
		return nil, 0, err
	}
	root.result, root.objective = res, res.Objective

	q := &bbQueue{root}
	heap.Init(q)

	best := root
	for i := 0; i < depth && q.Len() > 0; i++ {
		node := heap.Pop(q).(*bbNode)
		best = node

		branchCol := m.mostFractionalPassage(node.result.Values)
		if branchCol == -1 {
			break // integral incumbent found
		}

		x := node.result.Values[branchCol]
		for _, child := range []*bbNode{
			{extra: append(append([]simplex.Constraint(nil), node.extra...), m.upperBound(branchCol, math.Floor(x)))},
			{extra: append(append([]simplex.Constraint(nil), node.extra...), m.lowerBound(branchCol, math.Ceil(x)))},
		} {
			res, err := solver.Solve(m.problemWithExtra(child.extra))
			if err != nil {
				continue // infeasible child: discard
			}
			child.result, child.objective = res, res.Objective
			heap.Push(q, child)
		}
	}

	sol := fracsol.New()
	for p, v := range m.solutionFromValues(best.result.Values) {
		if err := sol.Set(p, v); err != nil {
			return nil, 0, err
		}
	}

	return sol, best.objective, nil
}
