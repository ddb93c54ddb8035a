package stats

import (
	"math"

	"github.com/veldran/colstat/column"
	"github.com/veldran/colstat/kernel"
)

// ReduceOptions controls the null and sample-count policy of a reduction.
type ReduceOptions struct {
	// SkipNulls excludes null entries before computing. When false, any
	// null in the column makes the result the undefined sentinel.
	SkipNulls bool
	// MinCount is the minimum number of valid entries required; below it
	// the result is the undefined sentinel.
	MinCount int
	// DDof is the degrees-of-freedom adjustment for variance and standard
	// deviation; the divisor is (n − DDof).
	DDof int
}

// DefaultReduceOptions returns the defaults: skip nulls, no minimum
// count, sample statistics (ddof = 1).
func DefaultReduceOptions() ReduceOptions {
	return ReduceOptions{SkipNulls: true, DDof: 1}
}

// Mean returns the arithmetic mean under the default options.
func Mean(c *column.Column) float64 {
	return MeanOpts(c, DefaultReduceOptions())
}

// MeanOpts returns the arithmetic mean of the valid entries under opts.
func MeanOpts(c *column.Column, opts ReduceOptions) float64 {
	xs, ok := gatherValid(c, opts)
	if !ok {
		return column.SentinelFor(c.DType())
	}
	return kernel.Sum(xs) / float64(len(xs))
}

// Variance returns the sample variance (ddof = 1) under the default
// options.
func Variance(c *column.Column) float64 {
	return VarianceOpts(c, DefaultReduceOptions())
}

// VarianceOpts returns the variance of the valid entries under opts,
// dividing the squared-deviation sum by (n − DDof). A non-positive
// divisor yields the undefined sentinel.
func VarianceOpts(c *column.Column, opts ReduceOptions) float64 {
	xs, ok := gatherValid(c, opts)
	if !ok {
		return column.SentinelFor(c.DType())
	}
	n := len(xs)
	div := n - opts.DDof
	if div <= 0 {
		return column.SentinelFor(c.DType())
	}
	mu := kernel.Sum(xs) / float64(n)
	return kernel.CentralMomentSum(xs, mu, 2) / float64(div)
}

// Std returns the sample standard deviation (ddof = 1) under the default
// options.
func Std(c *column.Column) float64 {
	return StdOpts(c, DefaultReduceOptions())
}

// StdOpts returns the square root of VarianceOpts.
func StdOpts(c *column.Column, opts ReduceOptions) float64 {
	return math.Sqrt(VarianceOpts(c, opts))
}

// gatherValid applies the skip-null and min-count policy, returning the
// entries a reduction runs over. ok is false when the policy resolves the
// reduction to the undefined sentinel.
func gatherValid(c *column.Column, opts ReduceOptions) ([]float64, bool) {
	if !opts.SkipNulls && c.HasNulls() {
		return nil, false
	}
	xs := c.ValidValues()
	if len(xs) == 0 || len(xs) < opts.MinCount {
		return nil, false
	}
	return xs, true
}
