package sortable

// Int orders machine integers. The benchmark harness sorts it when asked for
// the int element kind, and its exact comparisons make it the easiest type
// for checking sub-range results by hand.
type Int int

var _ Sortable[Int] = (*Int)(nil)

// Equals reports whether both integers are the same.
func (i Int) Equals(other Int) bool {
	return i == other
}

// LessThan reports whether i sorts before other.
func (i Int) LessThan(other Int) bool {
	return i < other
}
