package sorting

import (
	"github.com/amp-labs/amp-sort/assert"
	"github.com/amp-labs/amp-sort/sortable"
)

// MergeSort sorts seq in place with merge sort, switching to insertion sort
// below DefaultMergeCutoff.
func MergeSort[T sortable.Sortable[T]](seq []T) {
	mergeSortRange(seq, 0, len(seq), DefaultMergeCutoff)
}

// MergeSortRange sorts seq[initial:final] in place with merge sort, switching
// to insertion sort below DefaultMergeCutoff.
func MergeSortRange[T sortable.Sortable[T]](seq []T, initial, final int) {
	mergeSortRange(seq, initial, final, DefaultMergeCutoff)
}

// mergeSortRange copies both halves of the range into a temporary, sorts each
// half of the temporary recursively and merges them back into the range.
// The temporary is only referenced for the duration of the call, so the live
// auxiliary memory is bounded by the sum of the ranges on the recursion path,
// which is O(n).
func mergeSortRange[T sortable.Sortable[T]](seq []T, initial, final, cutoff int) {
	assert.ValidRange(len(seq), initial, final)
	assert.AtLeast("merge cutoff", cutoff, MinCutoff)

	if final-initial < cutoff {
		insertionSort(seq, initial, final)

		return
	}

	mid := initial + (final-initial)/2

	runs := make([]T, final-initial)
	copy(runs, seq[initial:final])

	left, right := runs[:mid-initial], runs[mid-initial:]

	mergeSortRange(left, 0, len(left), cutoff)
	mergeSortRange(right, 0, len(right), cutoff)

	merge(seq, initial, final, left, right)
}

// merge writes the sorted runs left and right into seq[initial:final], whose
// length must be len(left)+len(right). The right head is taken only when it is
// strictly smaller than the left head, so ties keep their input order.
func merge[T sortable.Sortable[T]](seq []T, initial, final int, left, right []T) {
	i, j := 0, 0

	for dst := initial; dst < final; dst++ {
		if j == len(right) || (i < len(left) && !right[j].LessThan(left[i])) {
			seq[dst] = left[i]
			i++
		} else {
			seq[dst] = right[j]
			j++
		}
	}
}
