//go:build assertions_disabled

package assert

// Enabled reports whether assertions are compiled in.
const Enabled = false

// True is a no-op when built with the assertions_disabled tag.
func True(value bool, args ...any) {
	// Intentionally left blank
}

// False is a no-op when built with the assertions_disabled tag.
func False(value bool, args ...any) {
	// Intentionally left blank
}

// ValidRange is a no-op when built with the assertions_disabled tag.
func ValidRange(length, initial, final int) {
	// Intentionally left blank
}

// AtLeast is a no-op when built with the assertions_disabled tag.
func AtLeast(name string, value, minimum int) {
	// Intentionally left blank
}
