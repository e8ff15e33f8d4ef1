package sorting

import (
	"cmp"
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/amp-labs/amp-sort/sortable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tagged orders by key only, so the tag and position reveal how a sort
// treated elements that compare equal.
type tagged struct {
	key float32
	tag string
	pos int
}

func (t tagged) Equals(other tagged) bool {
	return t.key == other.key
}

func (t tagged) LessThan(other tagged) bool {
	return t.key < other.key
}

type namedSort[T sortable.Sortable[T]] struct {
	alg  Algorithm
	sort func([]T)
}

func allSorts[T sortable.Sortable[T]]() []namedSort[T] {
	return []namedSort[T]{
		{alg: Bubble, sort: BubbleSort[T]},
		{alg: Selection, sort: SelectionSort[T]},
		{alg: Insertion, sort: InsertionSort[T]},
		{alg: Heap, sort: HeapSort[T]},
		{alg: Merge, sort: MergeSort[T]},
		{alg: Quick, sort: QuickSort[T]},
	}
}

func allRangeSorts[T sortable.Sortable[T]]() map[Algorithm]func([]T, int, int) {
	return map[Algorithm]func([]T, int, int){
		Bubble:    BubbleSortRange[T],
		Selection: SelectionSortRange[T],
		Insertion: InsertionSortRange[T],
		Heap:      HeapSortRange[T],
		Merge:     MergeSortRange[T],
		Quick:     QuickSortRange[T],
	}
}

func sortedCopy[T cmp.Ordered](seq []T) []T {
	out := slices.Clone(seq)
	slices.Sort(out)

	return out
}

func randomFloats(rng *rand.Rand, n int, distinct int32) []sortable.Float32 {
	seq := make([]sortable.Float32, n)
	for i := range seq {
		seq[i] = sortable.Float32(rng.Int32N(distinct))
	}

	return seq
}

func descending(n int) []sortable.Float32 {
	seq := make([]sortable.Float32, n)
	for i := range seq {
		seq[i] = sortable.Float32(n - i)
	}

	return seq
}

func ascending(n int) []sortable.Float32 {
	seq := make([]sortable.Float32, n)
	for i := range seq {
		seq[i] = sortable.Float32(i)
	}

	return seq
}

func TestSorts_Scenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    []sortable.Float32
		expected []sortable.Float32
	}{
		{name: "empty", input: []sortable.Float32{}, expected: []sortable.Float32{}},
		{name: "single element", input: []sortable.Float32{5}, expected: []sortable.Float32{5}},
		{name: "three elements", input: []sortable.Float32{3, 1, 2}, expected: []sortable.Float32{1, 2, 3}},
		{name: "pair of duplicates", input: []sortable.Float32{2, 2, 1, 1}, expected: []sortable.Float32{1, 1, 2, 2}},
		{name: "already sorted, above both cutoffs", input: ascending(200), expected: ascending(200)},
		{name: "strictly decreasing, between the cutoffs", input: descending(60), expected: sortedCopy(descending(60))},
		{name: "strictly decreasing, above both cutoffs", input: descending(250), expected: sortedCopy(descending(250))},
		{
			name:     "negative values and infinities",
			input:    []sortable.Float32{0, sortable.Float32(math.Inf(1)), -3.5, math.MaxFloat32, sortable.Float32(math.Inf(-1)), -3.5},
			expected: []sortable.Float32{sortable.Float32(math.Inf(-1)), -3.5, -3.5, 0, math.MaxFloat32, sortable.Float32(math.Inf(1))},
		},
	}

	for _, tt := range tests {
		for _, s := range allSorts[sortable.Float32]() {
			t.Run(tt.name+"/"+s.alg.String(), func(t *testing.T) {
				t.Parallel()

				seq := slices.Clone(tt.input)
				s.sort(seq)

				assert.Equal(t, tt.expected, seq)
			})
		}
	}
}

func TestSorts_RandomInputs(t *testing.T) {
	t.Parallel()

	sizes := []int{0, 1, 2, 3, 7, 48, 49, 50, 51, 99, 100, 101, 199, 200, 201, 257, 1000}

	for _, s := range allSorts[sortable.Float32]() {
		t.Run(s.alg.String(), func(t *testing.T) {
			t.Parallel()

			rng := rand.New(rand.NewPCG(1, uint64(len(s.alg)))) //nolint:gosec

			for _, n := range sizes {
				for _, distinct := range []int32{3, 1 << 20} {
					seq := randomFloats(rng, n, distinct)
					expected := sortedCopy(seq)

					s.sort(seq)

					require.Equal(t, expected, seq, "n=%d distinct=%d", n, distinct)
				}
			}
		})
	}
}

func TestSorts_Idempotent(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(7, 7)) //nolint:gosec
	input := randomFloats(rng, 300, 40)

	for _, s := range allSorts[sortable.Float32]() {
		t.Run(s.alg.String(), func(t *testing.T) {
			t.Parallel()

			once := slices.Clone(input)
			s.sort(once)

			twice := slices.Clone(once)
			s.sort(twice)

			assert.Equal(t, once, twice)
		})
	}
}

func TestSorts_OtherElementTypes(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(3, 5)) //nolint:gosec

	ints := make([]sortable.Int, 333)
	for i := range ints {
		ints[i] = sortable.Int(rng.IntN(2000) - 1000)
	}

	doubles := make([]sortable.Float64, 220)
	for i := range doubles {
		doubles[i] = sortable.Float64(rng.NormFloat64())
	}

	for _, s := range allSorts[sortable.Int]() {
		seq := slices.Clone(ints)
		s.sort(seq)
		assert.Equal(t, sortedCopy(ints), seq, s.alg.String())
	}

	for _, s := range allSorts[sortable.Float64]() {
		seq := slices.Clone(doubles)
		s.sort(seq)
		assert.Equal(t, sortedCopy(doubles), seq, s.alg.String())
	}
}

func TestStableSorts_KeepTiesInInputOrder(t *testing.T) {
	t.Parallel()

	input := []tagged{{key: 2, tag: "a"}, {key: 2, tag: "b"}, {key: 1, tag: "c"}, {key: 1, tag: "d"}}

	for _, s := range allSorts[tagged]() {
		if !s.alg.Stable() {
			continue
		}

		t.Run(s.alg.String(), func(t *testing.T) {
			t.Parallel()

			seq := slices.Clone(input)
			s.sort(seq)

			tags := make([]string, len(seq))
			for i, e := range seq {
				tags[i] = e.tag
			}

			assert.Equal(t, []string{"c", "d", "a", "b"}, tags)
		})
	}
}

func TestSorts_TaggedRandomInputs(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(11, 13)) //nolint:gosec

	input := make([]tagged, 450)
	for i := range input {
		input[i] = tagged{key: float32(rng.IntN(12)), pos: i}
	}

	stable := slices.Clone(input)
	slices.SortStableFunc(stable, func(a, b tagged) int {
		return cmp.Compare(a.key, b.key)
	})

	for _, s := range allSorts[tagged]() {
		t.Run(s.alg.String(), func(t *testing.T) {
			t.Parallel()

			seq := slices.Clone(input)
			s.sort(seq)

			if s.alg.Stable() {
				assert.Equal(t, stable, seq)

				return
			}

			// Unstable sorts still order the keys and keep every element.
			assert.True(t, sortable.IsSorted(seq))

			positions := make([]int, len(seq))
			for i, e := range seq {
				positions[i] = e.pos
			}

			slices.Sort(positions)

			for i, p := range positions {
				require.Equal(t, i, p)
			}
		})
	}
}

func TestRangeSorts_OnlyTouchTheRange(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(17, 19)) //nolint:gosec
	input := randomFloats(rng, 320, 1000)

	const initial, final = 37, 291

	for alg, sortRange := range allRangeSorts[sortable.Float32]() {
		t.Run(alg.String(), func(t *testing.T) {
			t.Parallel()

			seq := slices.Clone(input)
			sortRange(seq, initial, final)

			assert.Equal(t, input[:initial], seq[:initial])
			assert.Equal(t, input[final:], seq[final:])
			assert.Equal(t, sortedCopy(input[initial:final]), seq[initial:final])
		})
	}
}

func TestRangeSorts_EmptyRange(t *testing.T) {
	t.Parallel()

	input := []sortable.Float32{4, 3, 2, 1}

	for alg, sortRange := range allRangeSorts[sortable.Float32]() {
		seq := slices.Clone(input)
		sortRange(seq, 2, 2)

		assert.Equal(t, input, seq, alg.String())
	}
}

// Every sequence of length 0..6 over the values {0, 1, 2}, sorted with the
// smallest cutoffs so that partition and merge run on ranges of two and three
// elements, where a pivot is always an extreme of its range.
func TestSorts_ExhaustiveSmallInputs(t *testing.T) {
	t.Parallel()

	sorter, err := NewSorter[sortable.Float32](WithMergeCutoff(MinCutoff), WithQuickCutoff(MinCutoff))
	require.NoError(t, err)

	for n := 0; n <= 6; n++ {
		total := int(math.Pow(3, float64(n)))

		for code := range total {
			input := make([]sortable.Float32, n)

			for i, c := 0, code; i < n; i, c = i+1, c/3 {
				input[i] = sortable.Float32(c % 3)
			}

			expected := sortedCopy(input)

			for _, alg := range Algorithms() {
				seq := slices.Clone(input)
				require.NoError(t, sorter.Sort(alg, seq))
				require.Equal(t, expected, seq, "%s %v", alg, input)
			}
		}
	}
}
