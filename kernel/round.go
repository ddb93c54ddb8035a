package kernel

import "math"

// RoundMode selects how ties at the rounding boundary resolve.
type RoundMode int

// Rounding modes.
const (
	// RoundHalfEven resolves ties toward the nearest even digit
	// (banker's rounding), the statistically unbiased default.
	RoundHalfEven RoundMode = iota
	// RoundHalfUp resolves ties away from zero.
	RoundHalfUp
)

// String returns the name of the rounding mode.
func (m RoundMode) String() string {
	switch m {
	case RoundHalfEven:
		return "half_even"
	case RoundHalfUp:
		return "half_up"
	}
	return "unknown"
}

// Round rounds each entry to the given number of decimal places under
// mode. Negative decimals round to the left of the decimal point.
func Round(values []float64, decimals int, mode RoundMode) []float64 {
	scale := math.Pow10(decimals)
	out := make([]float64, len(values))
	for i, v := range values {
		switch mode {
		case RoundHalfUp:
			out[i] = math.Round(v*scale) / scale
		default:
			out[i] = math.RoundToEven(v*scale) / scale
		}
	}
	return out
}
