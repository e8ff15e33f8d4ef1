package sortable

// Sortable is implemented by element types that carry a total order.
// Equals reports equality under that order and LessThan reports strict
// precedence. For every pair exactly one of a.LessThan(b), b.LessThan(a)
// and a.Equals(b) must hold.
type Sortable[T any] interface {
	Equals(other T) bool
	LessThan(other T) bool
}

// IsSorted reports whether seq is in non-decreasing order.
func IsSorted[T Sortable[T]](seq []T) bool {
	return IsSortedRange(seq, 0, len(seq))
}

// IsSortedRange reports whether seq[initial:final] is in non-decreasing order.
func IsSortedRange[T Sortable[T]](seq []T, initial, final int) bool {
	for i := initial + 1; i < final; i++ {
		if seq[i].LessThan(seq[i-1]) {
			return false
		}
	}

	return true
}
