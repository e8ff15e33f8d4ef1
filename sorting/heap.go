package sorting

import (
	"github.com/amp-labs/amp-sort/assert"
	"github.com/amp-labs/amp-sort/sortable"
)

// HeapSort sorts seq in place with heap sort.
func HeapSort[T sortable.Sortable[T]](seq []T) {
	heapSort(seq)
}

// HeapSortRange sorts seq[initial:final] in place with heap sort. The range
// is treated as its own zero-based heap.
func HeapSortRange[T sortable.Sortable[T]](seq []T, initial, final int) {
	assert.ValidRange(len(seq), initial, final)

	heapSort(seq[initial:final])
}

// heapSort builds a max-heap over the whole slice, then repeatedly swaps the
// root to the end of the shrinking heap.
func heapSort[T sortable.Sortable[T]](heap []T) {
	n := len(heap)

	for k := n/2 - 1; k >= 0; k-- {
		reheapify(heap, n, k)
	}

	for size := n - 1; size > 0; size-- {
		heap[0], heap[size] = heap[size], heap[0]
		reheapify(heap, size, 0)
	}
}

// reheapify sinks the value at index k of heap[:size] until neither child
// (2k+1, 2k+2) is larger. Children are moved up into the hole instead of
// swapped, and the sinking value is written once at its final slot.
// Afterwards the subtree rooted at k satisfies the max-heap property,
// provided both of k's subtrees already did.
func reheapify[T sortable.Sortable[T]](heap []T, size, k int) {
	sinking := heap[k]

	// k has at least one child while k < size/2.
	for k < size/2 {
		child := 2*k + 1
		if child+1 < size && heap[child].LessThan(heap[child+1]) {
			child++
		}

		if !sinking.LessThan(heap[child]) {
			break
		}

		heap[k] = heap[child]
		k = child
	}

	heap[k] = sinking
}
