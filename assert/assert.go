// Package assert provides debug assertions for invariants that callers are
// trusted to uphold. Assertions panic when violated. Building with the
// assertions_disabled tag turns every assertion into a no-op, which is how
// timing runs should be built.
package assert

import "fmt"

// failure builds the panic message for a failed assertion.
// - If the first arg is a string, it's used as a format string with remaining args.
// - Otherwise, all args are included in the message.
func failure(args []any) string {
	if len(args) == 0 {
		return "assertion failed"
	}

	if format, ok := args[0].(string); ok {
		return fmt.Sprintf(format, args[1:]...)
	}

	return fmt.Sprintf("assertion failed: %v", args)
}
