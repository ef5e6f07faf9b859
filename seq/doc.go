// Package seq provides the lazy-sequence vocabulary used by the enumerate
// package, built on the standard iter.Seq range-over-func form.
//
// A lazy sequence here is a pull-based producer: nothing is computed until the
// consumer asks for the next element, and the consumer may stop at any point
// by breaking out of the range loop. Every combinator in this package
// propagates that early termination through the yield return value, so
// discarding a partially consumed sequence is always safe and never leaks —
// no combinator acquires an external resource.
//
// Ranging over an iter.Seq re-runs the producer from the start, so sequences
// built from these combinators are restartable as long as their source is.
//
// Materialization is where laziness meets danger: collecting an unbounded
// sequence never terminates. CollectBounded is the guard — it refuses to
// materialize past an explicit bound and fails with ErrUnbounded instead of
// hanging.
package seq
