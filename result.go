package scicalc

import (
	"fmt"
	"strconv"
)

// Result is the value of an evaluated expression: a number, or a boolean when
// the whole expression was a single call to a boolean function.
type Result struct {
	// X is the numeric value. Booleans are 1 for true and 0 for false.
	X float64
	// Bool is whether the result is a boolean.
	Bool bool
}

// Truth interprets the result as a boolean.
func (r Result) Truth() bool {
	return r.X != 0
}

// String formats booleans as true or false and numbers in the shortest
// representation that round-trips.
func (r Result) String() string {
	if r.Bool {
		return strconv.FormatBool(r.Truth())
	}
	return strconv.FormatFloat(r.X, 'g', -1, 64)
}

// Format implements fmt.Formatter. Booleans always print as true or false;
// numbers use the verb as for a float64.
func (r Result) Format(f fmt.State, verb rune) {
	if r.Bool || verb == 'v' || verb == 's' {
		fmt.Fprint(f, r.String())
		return
	}
	fmt.Fprintf(f, fmt.FormatString(f, verb), r.X)
}
