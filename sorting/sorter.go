package sorting

import (
	"fmt"

	"github.com/amp-labs/amp-sort/errors"
	"github.com/amp-labs/amp-sort/sortable"
)

// Sorter runs the sorts of this package with a fixed set of cutoffs. It holds
// no per-call state, so a single Sorter may be used from several goroutines
// as long as each call gets its own slice.
type Sorter[T sortable.Sortable[T]] struct {
	opts Options
}

// NewSorter returns a Sorter configured with the given options on top of
// DefaultOptions. It fails with ErrInvalidCutoff if a cutoff is below MinCutoff.
func NewSorter[T sortable.Sortable[T]](opts ...Option) (*Sorter[T], error) {
	options := DefaultOptions()

	for _, opt := range opts {
		opt(&options)
	}

	if err := options.Validate(); err != nil {
		return nil, err
	}

	return &Sorter[T]{opts: options}, nil
}

// Options returns the cutoffs this Sorter was built with.
func (s *Sorter[T]) Options() Options {
	return s.opts
}

// Sort sorts seq in place with the named algorithm.
func (s *Sorter[T]) Sort(alg Algorithm, seq []T) error {
	return s.SortRange(alg, seq, 0, len(seq))
}

// SortRange sorts seq[initial:final] in place with the named algorithm.
func (s *Sorter[T]) SortRange(alg Algorithm, seq []T, initial, final int) error {
	switch alg {
	case Bubble:
		BubbleSortRange(seq, initial, final)
	case Selection:
		SelectionSortRange(seq, initial, final)
	case Insertion:
		InsertionSortRange(seq, initial, final)
	case Heap:
		HeapSortRange(seq, initial, final)
	case Merge:
		s.MergeRange(seq, initial, final)
	case Quick:
		s.QuickRange(seq, initial, final)
	default:
		return fmt.Errorf("%w: %q", errors.ErrUnknownAlgorithm, string(alg))
	}

	return nil
}

// Merge merge sorts seq using this Sorter's merge cutoff.
func (s *Sorter[T]) Merge(seq []T) {
	s.MergeRange(seq, 0, len(seq))
}

// MergeRange merge sorts seq[initial:final] using this Sorter's merge cutoff.
func (s *Sorter[T]) MergeRange(seq []T, initial, final int) {
	mergeSortRange(seq, initial, final, s.opts.MergeCutoff)
}

// Quick quicksorts seq using this Sorter's quick cutoff.
func (s *Sorter[T]) Quick(seq []T) {
	s.QuickRange(seq, 0, len(seq))
}

// QuickRange quicksorts seq[initial:final] using this Sorter's quick cutoff.
func (s *Sorter[T]) QuickRange(seq []T, initial, final int) {
	quickSortRange(seq, initial, final, s.opts.QuickCutoff)
}
