package sorting

import (
	"math/rand/v2"
	"testing"

	"github.com/amp-labs/amp-sort/sortable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isMaxHeap reports whether heap[:size] has every parent >= its children.
func isMaxHeap[T sortable.Sortable[T]](heap []T, size int) bool {
	for child := 1; child < size; child++ {
		if heap[(child-1)/2].LessThan(heap[child]) {
			return false
		}
	}

	return true
}

func buildHeap[T sortable.Sortable[T]](heap []T) {
	for k := len(heap)/2 - 1; k >= 0; k-- {
		reheapify(heap, len(heap), k)
	}
}

func TestReheapify_BuildsMaxHeap(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(23, 29)) //nolint:gosec

	for _, n := range []int{1, 2, 3, 4, 5, 16, 17, 100, 513} {
		heap := randomFloats(rng, n, 64)
		expected := sortedCopy(heap)

		buildHeap(heap)

		require.True(t, isMaxHeap(heap, n), "n=%d", n)
		assert.Equal(t, expected[n-1], heap[0], "root must hold the maximum, n=%d", n)
	}
}

func TestReheapify_SinksReplacedRoot(t *testing.T) {
	t.Parallel()

	heap := []sortable.Float32{9, 7, 8, 3, 6, 5, 4, 1, 2}
	require.True(t, isMaxHeap(heap, len(heap)))

	heap[0] = 0
	reheapify(heap, len(heap), 0)

	assert.True(t, isMaxHeap(heap, len(heap)))
	assert.Equal(t, []sortable.Float32{8, 7, 5, 3, 6, 0, 4, 1, 2}, heap)
}

func TestReheapify_RespectsBound(t *testing.T) {
	t.Parallel()

	// The tail past the bound is already extracted and must not be pulled
	// back into the heap.
	heap := []sortable.Float32{1, 5, 4, 100, 200}

	reheapify(heap, 3, 0)

	assert.Equal(t, []sortable.Float32{5, 1, 4, 100, 200}, heap)
}

func TestReheapify_StopsOnEqualChild(t *testing.T) {
	t.Parallel()

	heap := []tagged{{key: 3, tag: "root"}, {key: 3, tag: "left"}, {key: 1, tag: "right"}}

	reheapify(heap, len(heap), 0)

	assert.Equal(t, "root", heap[0].tag)
}

func TestHeapSort_ExtractionOrder(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(31, 37)) //nolint:gosec
	heap := randomFloats(rng, 200, 1000)
	expected := sortedCopy(heap)

	buildHeap(heap)

	// Run the extraction phase by hand and check that the heap invariant holds
	// over the shrinking prefix after every step.
	for size := len(heap) - 1; size > 0; size-- {
		heap[0], heap[size] = heap[size], heap[0]
		reheapify(heap, size, 0)

		require.True(t, isMaxHeap(heap, size), "size=%d", size)
		require.True(t, sortable.IsSortedRange(heap, size, len(heap)), "size=%d", size)
	}

	assert.Equal(t, expected, heap)
}
