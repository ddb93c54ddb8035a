package stats

import (
	"fmt"

	"github.com/veldran/colstat/column"
	"github.com/veldran/colstat/kernel"
)

// Quantile returns the q-th quantile (0 ≤ q ≤ 1) of the valid entries
// under the given interpolation policy. A probability outside [0, 1] is
// rejected with an error before any computation; an empty column yields
// the undefined sentinel.
//
// When exact is true the quantile is computed by exact order-statistic
// interpolation; the approximate path is not implemented and exact is
// used regardless.
func Quantile(c *column.Column, q float64, interp kernel.Interpolation, exact bool) (float64, error) {
	res, err := Quantiles(c, []float64{q}, interp, exact)
	if err != nil {
		return 0, err
	}
	if !res.IsValid(0) {
		return column.SentinelFor(c.DType()), nil
	}
	return res.Value(0), nil
}

// Quantiles returns one quantile per probability in qs as a Float64
// column. Probabilities with no defined order statistic (empty input)
// come back as null entries.
func Quantiles(c *column.Column, qs []float64, interp kernel.Interpolation, exact bool) (*column.Column, error) {
	for _, q := range qs {
		if q < 0 || q > 1 {
			return nil, fmt.Errorf("stats: quantile probabilities should all be in the interval [0, 1], got %v", q)
		}
	}

	// Sort the full column with nulls first, then slice off the leading
	// null positions so only valid entries remain in ascending order.
	perm := kernel.SortPermutation(c.Values(), c.Validity(), true)
	perm = perm[c.NullCount():]
	sorted := make([]float64, len(perm))
	for i, p := range perm {
		sorted[i] = c.Value(p)
	}

	vals, valid := kernel.OrderStatistics(sorted, qs, interp)
	return column.NewNullable(column.Float64, vals, valid), nil
}

// Median returns the median of the valid entries. When skipNulls is
// false and the column has nulls, the result is the undefined sentinel.
//
// Interpolation is pinned to linear so a future default change elsewhere
// cannot silently alter median semantics.
func Median(c *column.Column, skipNulls bool) float64 {
	if canReturnNaN(c, skipNulls) {
		return column.SentinelFor(c.DType())
	}
	v, err := Quantile(c, 0.5, kernel.InterpLinear, true)
	if err != nil {
		// unreachable: 0.5 is always in range
		return column.SentinelFor(c.DType())
	}
	return v
}
