// Package pcpptc orchestrates the full grid-solver pipeline: fractional
// relaxation and branch-and-bound integralization (package lp), turn-aware
// atomic-strip matching into a cycle cover (packages strips, matching),
// large-neighborhood local re-optimization (package lns), and cycle
// connection into a single closed tour (package connector).
package pcpptc
