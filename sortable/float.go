package sortable

// Float32 is the reference element type of the sorting library: an IEEE-754
// single precision value. NaN has no place in the total order, so sequences
// containing NaN are outside what the sorts promise to order.
//
// Example:
//
//	seq := []sortable.Float32{3, 1, 2}
//	sorting.QuickSort(seq)
//	// seq is now [1 2 3]
type Float32 float32

// Compile-time check that Float32 implements Sortable[Float32].
var _ Sortable[Float32] = (*Float32)(nil)

// Equals returns true if both values compare equal.
func (f Float32) Equals(other Float32) bool {
	return float32(f) == float32(other)
}

// LessThan returns true if this value is strictly smaller than the other.
func (f Float32) LessThan(other Float32) bool {
	return float32(f) < float32(other)
}

// Float64 is the double precision counterpart of Float32.
type Float64 float64

var _ Sortable[Float64] = (*Float64)(nil)

// Equals returns true if both values compare equal.
func (f Float64) Equals(other Float64) bool {
	return float64(f) == float64(other)
}

// LessThan returns true if this value is strictly smaller than the other.
func (f Float64) LessThan(other Float64) bool {
	return float64(f) < float64(other)
}
