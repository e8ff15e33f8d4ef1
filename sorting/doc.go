// Package sorting implements six comparison-based, in-place sorting
// algorithms over caller-owned slices: bubble sort, selection sort, insertion
// sort, heap sort, merge sort and quicksort. They exist to be compared
// against each other, so each one is written the plain textbook way rather
// than tuned.
//
// # Entry Points
//
// Every algorithm has a whole-slice entry point and a range entry point:
//
//	sorting.QuickSort(seq)              // sorts seq[0:len(seq)]
//	sorting.QuickSortRange(seq, 10, 60) // sorts seq[10:60], leaves the rest alone
//
// Ranges are half-open. The slice carries the length; to sort only a prefix,
// pass seq[:n]. Empty and single element inputs are no-ops.
//
// # Hybrid Cutoffs
//
// Merge sort and quicksort hand ranges shorter than a cutoff to insertion
// sort. The package level functions use [DefaultMergeCutoff] (100) and
// [DefaultQuickCutoff] (50). A [Sorter] binds other cutoffs:
//
//	s, err := sorting.NewSorter[sortable.Float32](sorting.WithQuickCutoff(8))
//	if err != nil {
//	    return err
//	}
//	s.Quick(seq)
//
// # Guarantees
//
//	algorithm  stable  time (best / average / worst)   extra memory
//	insertion  yes     n / n^2 / n^2                   O(1)
//	bubble     yes     n^2 / n^2 / n^2                 O(1)
//	selection  no      n^2 / n^2 / n^2                 O(1)
//	heap       no      n log n                         O(1)
//	merge      yes     n log n                         O(n)
//	quick      no      n log n / n log n / n^2         O(log n) stack, O(n) worst
//
// Quicksort always takes the first element of a range as pivot, so sorted and
// reverse sorted inputs are its worst case.
//
// # Preconditions
//
// The sorts trust their caller. Ranges must satisfy
// 0 <= initial <= final <= len(seq) and elements must be totally ordered (no
// NaN). Range checks run as debug assertions from
// [github.com/amp-labs/amp-sort/assert] and disappear when building with the
// assertions_disabled tag.
//
// # Thread Safety
//
// All sorts are synchronous and share no state. A sort borrows its slice
// exclusively for the duration of the call.
package sorting
