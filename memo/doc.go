// Package memo provides bounded memoization for pure functions.
//
// If a function is pure, it is cacheable like a mathematical function — and
// the counting functions of combinatorics (binomials, factorials) are the
// textbook case. Func1 and Func2 wrap such a function so repeated calls with
// the same arguments are answered from a table instead of recomputed.
//
// The table is bounded by generation rotation rather than per-entry
// eviction: entries accumulate in an active generation, and when it reaches
// the size bound it becomes the fallback generation and a fresh one takes
// over. Lookups consult the active generation first, then the fallback, so
// hot keys survive one rotation while cold ones age out in bulk.
//
// WARNING: do not memoize impure functions (anything depending on time,
// randomness, or I/O).
package memo
