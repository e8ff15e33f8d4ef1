// Package errors holds the sentinel errors shared by the sorting library and
// its benchmark harness, plus a small helper for reporting several problems at once.
package errors

import "errors"

var (
	// ErrUnknownAlgorithm is returned when a sort name doesn't match any algorithm.
	ErrUnknownAlgorithm = errors.New("unknown sorting algorithm")

	// ErrInvalidCutoff is returned when an insertion sort cutoff is below the
	// smallest value the divide-and-conquer sorts can terminate with.
	ErrInvalidCutoff = errors.New("invalid insertion sort cutoff")

	ErrInvalidSize    = errors.New("size must be positive")
	ErrInvalidSamples = errors.New("number of samples must be positive")
	ErrUnknownElement = errors.New("unknown element kind")
	ErrUnknownFormat  = errors.New("unknown report format")
	ErrNotSorted      = errors.New("output is not sorted")
	ErrNotPermutation = errors.New("output is not a permutation of the input")
)

// Collection accumulates errors so that validation code can report every
// problem it finds instead of stopping at the first one. It is not thread-safe.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// GetError returns nil for an empty collection, the error itself when only
// one was added, and an errors.Join of all of them otherwise.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
