package kernel

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Sum returns the sum of xs. An empty slice sums to 0.
func Sum(xs []float64) float64 {
	return floats.Sum(xs)
}

// Prod returns the product of xs. An empty slice multiplies to 1.
func Prod(xs []float64) float64 {
	return floats.Prod(xs)
}

// Min returns the minimum of xs, or NaN if xs is empty.
func Min(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	return floats.Min(xs)
}

// Max returns the maximum of xs, or NaN if xs is empty.
func Max(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	return floats.Max(xs)
}

// CentralMomentSum returns the unnormalized p-th central moment sum
// Σ (xᵢ−mu)^p. Callers divide by whatever count their statistic calls for.
func CentralMomentSum(xs []float64, mu float64, p int) float64 {
	sum := 0.0
	for _, x := range xs {
		d := x - mu
		switch p {
		case 1:
			sum += d
		case 2:
			sum += d * d
		case 3:
			sum += d * d * d
		case 4:
			d2 := d * d
			sum += d2 * d2
		default:
			sum += math.Pow(d, float64(p))
		}
	}
	return sum
}

// CrossMomentSum returns Σ (aᵢ−ma)·(bᵢ−mb) over the paired entries.
//
// Panics if the slices differ in length.
func CrossMomentSum(a, b []float64, ma, mb float64) float64 {
	if len(a) != len(b) {
		panic("kernel: slice length mismatch")
	}
	sum := 0.0
	for i := range a {
		sum += (a[i] - ma) * (b[i] - mb)
	}
	return sum
}
