package stats

import (
	"math"

	"github.com/veldran/colstat/column"
	"github.com/veldran/colstat/kernel"
)

// Skew returns the bias-corrected sample skewness of the valid entries.
//
// NaN entries are treated as nulls and dropped before gating. Fewer than
// 3 valid entries yield the undefined sentinel; a zero population
// variance (all entries identical) yields an exact 0.
func Skew(c *column.Column, skipNulls bool) float64 {
	if c.Len() == 0 || canReturnNaN(c, skipNulls) {
		return column.SentinelFor(c.DType())
	}
	cleaned := c.NaNsToNulls().DropNulls()
	if cleaned.Len() < 3 {
		return column.SentinelFor(c.DType())
	}

	n := float64(cleaned.Len())
	xs := cleaned.ValidValues()
	mu := kernel.Sum(xs) / n
	m3 := kernel.CentralMomentSum(xs, mu, 3) / n
	m2 := VarianceOpts(cleaned, ReduceOptions{SkipNulls: true, DDof: 0})

	if m2 == 0 {
		return 0
	}

	coef := math.Sqrt(n*(n-1)) / (n - 2)
	return coef * m3 / math.Pow(m2, 1.5)
}

// Kurtosis returns the excess kurtosis of the valid entries with the
// small-sample bias correction.
//
// NaN entries are treated as nulls and dropped before gating. Fewer than
// 4 valid entries yield the undefined sentinel; a zero sample variance
// yields an exact 0.
func Kurtosis(c *column.Column, skipNulls bool) float64 {
	if c.Len() == 0 || canReturnNaN(c, skipNulls) {
		return column.SentinelFor(c.DType())
	}
	cleaned := c.NaNsToNulls().DropNulls()
	if cleaned.Len() < 4 {
		return column.SentinelFor(c.DType())
	}

	n := float64(cleaned.Len())
	xs := cleaned.ValidValues()
	mu := kernel.Sum(xs) / n
	// m4 stays an unnormalized sum; dividing it by V² below relies on the
	// ddof=1 divisor inside V cancelling the factors of n. Keep the
	// arrangement as is: algebraically equivalent forms round differently.
	m4 := kernel.CentralMomentSum(xs, mu, 4)
	v := VarianceOpts(cleaned, ReduceOptions{SkipNulls: true, DDof: 1})

	if v == 0 {
		return 0
	}

	term1a := n * (n + 1) / ((n - 1) * (n - 2) * (n - 3))
	term1b := m4 / (v * v)
	term2 := (n - 1) * (n - 1) / ((n - 2) * (n - 3))
	return term1a*term1b - 3*term2
}

// canReturnNaN reports whether the skip-null policy forces an undefined
// result: nulls are present and the caller asked not to skip them.
func canReturnNaN(c *column.Column, skipNulls bool) bool {
	return !skipNulls && c.HasNulls()
}
