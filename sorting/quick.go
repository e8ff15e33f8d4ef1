package sorting

import (
	"github.com/amp-labs/amp-sort/assert"
	"github.com/amp-labs/amp-sort/sortable"
)

// QuickSort sorts seq in place with quicksort, switching to insertion sort
// below DefaultQuickCutoff.
func QuickSort[T sortable.Sortable[T]](seq []T) {
	quickSortRange(seq, 0, len(seq), DefaultQuickCutoff)
}

// QuickSortRange sorts seq[initial:final] in place with quicksort, switching
// to insertion sort below DefaultQuickCutoff.
func QuickSortRange[T sortable.Sortable[T]](seq []T, initial, final int) {
	quickSortRange(seq, initial, final, DefaultQuickCutoff)
}

func quickSortRange[T sortable.Sortable[T]](seq []T, initial, final, cutoff int) {
	assert.ValidRange(len(seq), initial, final)
	assert.AtLeast("quick cutoff", cutoff, MinCutoff)

	if final-initial < cutoff {
		insertionSort(seq, initial, final)

		return
	}

	p := partition(seq, initial, final)

	quickSortRange(seq, initial, p, cutoff)
	quickSortRange(seq, p+1, final, cutoff)
}

// partition reorders seq[initial:final] around the pivot seq[initial] and
// returns the pivot's settled index p: everything in [initial, p) is <= the
// pivot and everything in (p, final) is > the pivot.
//
// The range must hold at least two elements. Only the first left scan checks
// its bound. Every later scan is stopped by an element the previous swap
// placed on the far side, and the right scan is stopped by the pivot itself
// at initial, so no cursor leaves the range.
func partition[T sortable.Sortable[T]](seq []T, initial, final int) int {
	assert.AtLeast("partition range length", final-initial, MinCutoff)

	pivot := seq[initial]

	left := initial + 1
	for left < final-1 && !pivot.LessThan(seq[left]) {
		left++
	}

	right := final - 1
	for pivot.LessThan(seq[right]) {
		right--
	}

	for left < right {
		seq[left], seq[right] = seq[right], seq[left]

		left++
		for !pivot.LessThan(seq[left]) {
			left++
		}

		right--
		for pivot.LessThan(seq[right]) {
			right--
		}
	}

	seq[initial], seq[right] = seq[right], seq[initial]

	return right
}
