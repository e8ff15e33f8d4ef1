package sorting

import (
	"github.com/amp-labs/amp-sort/assert"
	"github.com/amp-labs/amp-sort/sortable"
)

// InsertionSort sorts seq in place by insertion.
func InsertionSort[T sortable.Sortable[T]](seq []T) {
	insertionSort(seq, 0, len(seq))
}

// InsertionSortRange sorts seq[initial:final] in place by insertion. It is
// stable, runs in O(n) on sorted input and O(n^2) otherwise, and never
// allocates.
func InsertionSortRange[T sortable.Sortable[T]](seq []T, initial, final int) {
	assert.ValidRange(len(seq), initial, final)

	insertionSort(seq, initial, final)
}

// insertionSort is the unchecked body shared with the base cases of merge
// sort and quicksort. Each element is swapped left while it is strictly
// smaller than its neighbour, which keeps equal elements in order.
func insertionSort[T sortable.Sortable[T]](seq []T, initial, final int) {
	for i := initial + 1; i < final; i++ {
		for j := i; j > initial && seq[j].LessThan(seq[j-1]); j-- {
			seq[j], seq[j-1] = seq[j-1], seq[j]
		}
	}
}
