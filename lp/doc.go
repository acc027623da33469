// Package lp builds the fractional cycle-cover linear program from a
// gridmodel.Instance and hands it to a simplex.Solver, then offers an
// optional best-first branch-and-bound pass (Integralize) toward an
// integral solution.
//
// Variables are one continuous x_{a,v,b} per vertex passage plus one
// y_{v,i} ∈ [0,1] per "worth modeling" penalty entry. The objective sums
// passage touring cost and penalty cost; constraints enforce per-edge
// flow balance and per-vertex minimum coverage. See Model for the exact
// construction.
package lp
