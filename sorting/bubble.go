package sorting

import (
	"github.com/amp-labs/amp-sort/assert"
	"github.com/amp-labs/amp-sort/sortable"
)

// BubbleSort sorts seq in place with bubble sort.
func BubbleSort[T sortable.Sortable[T]](seq []T) {
	BubbleSortRange(seq, 0, len(seq))
}

// BubbleSortRange sorts seq[initial:final] in place with bubble sort.
//
// Every pass walks from the end of the range back to the current left
// boundary, swapping adjacent pairs that are out of order, so the smallest
// remaining element settles at the boundary. Passes run for every boundary
// even when the previous pass swapped nothing: the measured cost is O(n^2)
// for every input, sorted or not.
func BubbleSortRange[T sortable.Sortable[T]](seq []T, initial, final int) {
	assert.ValidRange(len(seq), initial, final)

	for i := initial; i < final-1; i++ {
		for j := final - 1; j > i; j-- {
			if seq[j].LessThan(seq[j-1]) {
				seq[j], seq[j-1] = seq[j-1], seq[j]
			}
		}
	}
}
