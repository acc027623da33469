// Package simplex provides a generic linear-program solver: a dense
// two-phase primal simplex method with Bland's rule for anti-cycling.
//
// The problem shape is standard-form LP with equality and "at least"
// (≥) constraints over non-negative variables:
//
//	minimize   c·x
//	subject to Ax = b   (equalities)
//	           Gx ≥ h   (at-least constraints)
//	           x ≥ 0
//
// This is the shape package lp builds from a grid instance; simplex
// itself has no notion of passages, vertices, or coverage — it is a
// generic LP oracle, matched against the lp.Model only through the
// Problem/Result types.
package simplex
