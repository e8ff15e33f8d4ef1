package sorting

import (
	"fmt"
	"strings"

	"github.com/amp-labs/amp-sort/errors"
)

// Algorithm names one of the sorts in this package.
type Algorithm string

const (
	Bubble    Algorithm = "bubble"
	Selection Algorithm = "selection"
	Insertion Algorithm = "insertion"
	Heap      Algorithm = "heap"
	Merge     Algorithm = "merge"
	Quick     Algorithm = "quick"
)

// Algorithms returns every algorithm, quadratic sorts first.
func Algorithms() []Algorithm {
	return []Algorithm{Bubble, Selection, Insertion, Heap, Merge, Quick}
}

// ParseAlgorithm resolves a case-insensitive algorithm name.
func ParseAlgorithm(name string) (Algorithm, error) {
	alg := Algorithm(strings.ToLower(strings.TrimSpace(name)))
	if !alg.Valid() {
		return "", fmt.Errorf("%w: %q", errors.ErrUnknownAlgorithm, name)
	}

	return alg, nil
}

// Valid reports whether a names a known algorithm.
func (a Algorithm) Valid() bool {
	switch a {
	case Bubble, Selection, Insertion, Heap, Merge, Quick:
		return true
	default:
		return false
	}
}

// Stable reports whether the algorithm keeps equal elements in input order.
func (a Algorithm) Stable() bool {
	switch a {
	case Bubble, Insertion, Merge:
		return true
	default:
		return false
	}
}

// Quadratic reports whether the algorithm does O(n²) comparisons on
// typical input.
func (a Algorithm) Quadratic() bool {
	switch a {
	case Bubble, Selection, Insertion:
		return true
	default:
		return false
	}
}

func (a Algorithm) String() string {
	return string(a)
}
