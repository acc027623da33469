// Package connector joins a cycle cover's disjoint cycles into a single
// closed tour: pairwise connection costs between cycles are computed over
// a direction-aware shortest path tree, free (negative-cost) merges
// are applied greedily, and the remaining cycles are connected by
// prize-collecting Steiner tree selection before a final depth-first
// merge produces the tour.
package connector
