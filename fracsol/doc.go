// Package fracsol implements the fractional solution accumulator: a
// mapping from vertex passages to non-negative reals, with near-zero
// entries treated as absent. It favors a compact sorted-slice
// representation over a hash map, with an epsilon-aware lookup, in-place
// addition, and pointwise difference.
package fracsol
