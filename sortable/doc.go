// Package sortable defines the ordering contract used by the in-place sorts in
// [github.com/amp-labs/amp-sort/sorting] and ships wrapper types for the
// primitive element types they are benchmarked with.
//
// # Overview
//
// The [Sortable] interface combines equality and strict ordering. The sorting
// algorithms only ever call LessThan; Equals exists so that tests and the
// benchmark harness can compare elements under the same order.
//
// Ready-made implementations: [Float32] (the reference element), [Float64]
// and [Int].
//
// # Creating Custom Sortable Types
//
// Ordering a record by one key while carrying a payload is how the stability
// of a sort is observed:
//
//	type Tagged struct {
//	    Key float32
//	    Tag string
//	}
//
//	func (t Tagged) Equals(other Tagged) bool   { return t.Key == other.Key }
//	func (t Tagged) LessThan(other Tagged) bool { return t.Key < other.Key }
//
// A stable sort keeps records with equal keys in their input order.
//
// # Thread Safety
//
// The wrapper types are plain values. Sequences of them are owned by the
// caller and must not be shared with other goroutines while a sort runs.
package sortable
