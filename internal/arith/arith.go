// Package arith provides the small signed integer division helpers
// the row-size window computations need (spec.md §4.5/§4.6). Both
// functions assume a positive divisor, which always holds here since
// row coefficients are validated to be positive.
package arith

// CeilDiv returns ceil(dividend / divisor) for divisor > 0.
func CeilDiv(dividend, divisor int32) int32 {
	if dividend >= 0 {
		return (dividend + divisor - 1) / divisor
	}

	return -((-dividend) / divisor)
}

// FloorDiv returns floor(dividend / divisor) for divisor > 0.
func FloorDiv(dividend, divisor int32) int32 {
	if dividend >= 0 {
		return dividend / divisor
	}

	return -((divisor - dividend - 1) / divisor)
}
