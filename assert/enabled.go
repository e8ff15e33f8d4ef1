//go:build !assertions_disabled

package assert

import "fmt"

// Enabled reports whether assertions are compiled in.
const Enabled = true

// True asserts that the given value is true.
// If the assertion fails, it panics with a message.
// The optional args can be used to provide a formatted panic message:
// - If the first arg is a string, it's used as a format string with remaining args.
// - Otherwise, all args are included in the panic message.
func True(value bool, args ...any) {
	if value {
		return
	}

	panic(failure(args))
}

// False asserts that the given value is false.
// The optional args are passed to True and follow the same formatting rules.
func False(value bool, args ...any) {
	True(!value, args...)
}

// ValidRange asserts that [initial, final) is a well-formed range over a
// sequence of the given length, i.e. 0 <= initial <= final <= length.
// It takes no variadic arguments so that a passing check costs nothing
// beyond the comparisons.
func ValidRange(length, initial, final int) {
	if 0 <= initial && initial <= final && final <= length {
		return
	}

	panic(fmt.Sprintf("invalid range [%d, %d) over %d elements", initial, final, length))
}

// AtLeast asserts that value >= minimum. The name identifies the checked
// quantity in the panic message.
func AtLeast(name string, value, minimum int) {
	if value >= minimum {
		return
	}

	panic(fmt.Sprintf("%s is %d, want at least %d", name, value, minimum))
}
