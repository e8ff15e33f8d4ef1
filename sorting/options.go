package sorting

import (
	"fmt"

	"github.com/amp-labs/amp-sort/errors"
)

const (
	// DefaultMergeCutoff is the range length below which merge sort switches
	// to insertion sort.
	DefaultMergeCutoff = 100

	// DefaultQuickCutoff is the range length below which quicksort switches
	// to insertion sort.
	DefaultQuickCutoff = 50

	// MinCutoff is the smallest accepted cutoff. Merge sort can't split a
	// single element and partitioning needs a pivot plus one more element.
	MinCutoff = 2
)

// Options holds the hybrid cutoffs of the divide-and-conquer sorts.
type Options struct {
	MergeCutoff int
	QuickCutoff int
}

// Option is a functional option for configuring a Sorter.
type Option func(*Options)

// DefaultOptions returns the cutoffs used by the package level functions.
func DefaultOptions() Options {
	return Options{
		MergeCutoff: DefaultMergeCutoff,
		QuickCutoff: DefaultQuickCutoff,
	}
}

// WithMergeCutoff sets the range length below which merge sort delegates to
// insertion sort.
func WithMergeCutoff(cutoff int) Option {
	return func(o *Options) {
		o.MergeCutoff = cutoff
	}
}

// WithQuickCutoff sets the range length below which quicksort delegates to
// insertion sort.
func WithQuickCutoff(cutoff int) Option {
	return func(o *Options) {
		o.QuickCutoff = cutoff
	}
}

// Validate checks that both cutoffs are at least MinCutoff.
func (o Options) Validate() error {
	var errs errors.Collection

	if o.MergeCutoff < MinCutoff {
		errs.Add(fmt.Errorf("%w: merge cutoff %d is below %d", errors.ErrInvalidCutoff, o.MergeCutoff, MinCutoff))
	}

	if o.QuickCutoff < MinCutoff {
		errs.Add(fmt.Errorf("%w: quick cutoff %d is below %d", errors.ErrInvalidCutoff, o.QuickCutoff, MinCutoff))
	}

	return errs.GetError()
}
