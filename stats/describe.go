package stats

import (
	"github.com/veldran/colstat/column"
	"github.com/veldran/colstat/kernel"
)

// Summary holds the standard descriptive statistics of a column's valid
// entries. Fields other than Count are the undefined sentinel when the
// column has no valid entries (Std additionally requires two).
type Summary struct {
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// Describe returns count, mean, standard deviation, minimum, quartiles,
// and maximum of the valid entries, skipping nulls throughout.
func Describe(c *column.Column) Summary {
	xs := c.ValidValues()
	s := Summary{
		Count: len(xs),
		Mean:  Mean(c),
		Std:   Std(c),
		Min:   kernel.Min(xs),
		Max:   kernel.Max(xs),
	}
	// quartile probabilities are fixed, so the range check cannot fail
	qs, _ := Quantiles(c, []float64{0.25, 0.5, 0.75}, kernel.InterpLinear, true)
	for i, dst := range []*float64{&s.Q1, &s.Median, &s.Q3} {
		if qs.IsValid(i) {
			*dst = qs.Value(i)
		} else {
			*dst = column.SentinelFor(c.DType())
		}
	}
	return s
}
