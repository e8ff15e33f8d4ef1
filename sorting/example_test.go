package sorting_test

import (
	"fmt"

	"github.com/amp-labs/amp-sort/sortable"
	"github.com/amp-labs/amp-sort/sorting"
)

func ExampleQuickSort() {
	seq := []sortable.Float32{3.5, -1, 2, 2, 0}

	sorting.QuickSort(seq)

	fmt.Println(seq)
	// Output: [-1 0 2 2 3.5]
}

func ExampleMergeSortRange() {
	seq := []sortable.Int{9, 4, 3, 2, 1, 0}

	// Only the middle four elements are ordered.
	sorting.MergeSortRange(seq, 1, 5)

	fmt.Println(seq)
	// Output: [9 1 2 3 4 0]
}

func ExampleNewSorter() {
	sorter, err := sorting.NewSorter[sortable.Int](sorting.WithMergeCutoff(2))
	if err != nil {
		fmt.Println(err)

		return
	}

	seq := []sortable.Int{42, 7, 19, 3, 7}

	if err := sorter.Sort(sorting.Merge, seq); err != nil {
		fmt.Println(err)

		return
	}

	fmt.Println(seq)
	// Output: [3 7 7 19 42]
}

func ExampleParseAlgorithm() {
	alg, err := sorting.ParseAlgorithm("Heap")
	if err != nil {
		fmt.Println(err)

		return
	}

	fmt.Println(alg, alg.Stable())

	_, err = sorting.ParseAlgorithm("bogo")
	fmt.Println(err)
	// Output:
	// heap false
	// unknown sorting algorithm: "bogo"
}
