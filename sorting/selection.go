package sorting

import (
	"github.com/amp-labs/amp-sort/assert"
	"github.com/amp-labs/amp-sort/sortable"
)

// SelectionSort sorts seq in place with selection sort.
func SelectionSort[T sortable.Sortable[T]](seq []T) {
	SelectionSortRange(seq, 0, len(seq))
}

// SelectionSortRange sorts seq[initial:final] in place with selection sort.
// For every position it finds the first minimum of the unsorted tail and
// swaps it forward, so it performs at most n-1 swaps. The long-distance swap
// can reorder equal elements: the sort is not stable.
func SelectionSortRange[T sortable.Sortable[T]](seq []T, initial, final int) {
	assert.ValidRange(len(seq), initial, final)

	for i := initial; i < final-1; i++ {
		smallest := i

		for j := i + 1; j < final; j++ {
			if seq[j].LessThan(seq[smallest]) {
				smallest = j
			}
		}

		if smallest != i {
			seq[i], seq[smallest] = seq[smallest], seq[i]
		}
	}
}
