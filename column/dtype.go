package column

import "math"

// DType identifies the element type of a Column.
type DType int

// Supported element types.
const (
	Int32 DType = iota
	Int64
	Uint32
	Uint64
	Float32
	Float64
	Bool
)

// String returns the name of the element type.
func (d DType) String() string {
	switch d {
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint32:
		return "uint32"
	case Uint64:
		return "uint64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Bool:
		return "bool"
	}
	return "unknown"
}

// IsFloating reports whether the element type is a floating-point type.
// Only floating columns can carry NaN entries.
func (d DType) IsFloating() bool {
	return d == Float32 || d == Float64
}

// SentinelFor returns the undefined-result sentinel for the given element
// type. Engines return it for statistically undefined outcomes (empty
// input, too few samples, zero-variance denominators); callers test for it
// with math.IsNaN. For Float32 columns the value is the float32 NaN
// widened to float64, which is still NaN under math.IsNaN.
func SentinelFor(d DType) float64 {
	if d == Float32 {
		return float64(float32(math.NaN()))
	}
	return math.NaN()
}
