package numeric

import "golang.org/x/exp/constraints"

// Number is the union every numeric capability set is carved from.
type Number interface {
	constraints.Integer | constraints.Float
}

// Domain is the capability set of a function's input variable: totally
// ordered (except NaN for floats), supports subtraction and a unit
// increment.
type Domain interface {
	constraints.Integer | constraints.Float
}

// Range is the capability set of a function's output variable: addition,
// subtraction, multiplication, division and a zero value.
type Range interface {
	constraints.Integer | constraints.Float
}

// IsFloat reports whether T is a floating-point type.
// Complexity: O(1).
func IsFloat[T Number]() bool {
	var one T = 1

	return one/2 != 0
}

// IsNaN reports whether v is a floating-point NaN. Always false for integers.
func IsNaN[T Number](v T) bool {
	return v != v
}
