// Package enumerate provides combinatorial enumeration — cartesian products,
// power sets, combinations, and permutations — each in an eager and a lazy
// form over the same deterministic order.
//
// # Eager vs lazy
//
// The eager functions (Product, PowerSet, Combinations, Permutations)
// materialize the full result. Their memory cost scales with the size of the
// *output*, not the input: the product of five ten-element collections is
// 100_000 tuples. They fail fast with ErrSizeOverflow when the result size
// cannot even be represented, rather than hanging or wrapping around.
//
// The lazy variants (ProductSeq, PowerSetSeq, CombinationsSeq,
// PermutationsSeq) return iter.Seq producers that build one tuple per pull.
// Their working memory is one cursor position per input component,
// independent of the output size, so they are the right tool for early-exit
// searches over spaces too large to materialize. The product, power-set, and
// combination cursors are iterative, so call-stack depth does not grow with
// input size; permutations recurse one frame per element.
//
// For identical finite inputs, the eager and lazy forms of each operation
// produce identical tuples in identical order.
//
// # Ordering
//
// Product orders tuples like nested loops: the first component varies
// slowest, the last fastest. PowerSet uses the doubling order of the
// recursion "subsets without the head, then the same subsets with the head
// prepended" — which coincides, position for position, with enumerating
// boolean inclusion vectors through Product with absent ordered before
// present. For [0 1 2] both views give
//
//	(), (2), (1), (1 2), (0), (0 2), (0 1), (0 1 2)
//
// Nothing here mutates its input, and every yielded tuple is a fresh slice
// the caller may retain.
package enumerate
