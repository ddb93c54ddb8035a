package stats

import (
	"math"

	"github.com/veldran/colstat/column"
	"github.com/veldran/colstat/kernel"
)

// Cov returns the sample covariance (ddof = 1) of two aligned columns.
// Alignment (same length, same conceptual index) is the caller's
// responsibility. Either column being empty, or both holding exactly one
// entry, yields the undefined sentinel.
//
// The deviation-product sum runs over the positions where both entries
// are valid; the divisor is the full length minus one.
func Cov(a, b *column.Column) float64 {
	if a.Len() == 0 || b.Len() == 0 || (a.Len() == 1 && b.Len() == 1) {
		return column.SentinelFor(a.DType())
	}

	ma, mb := Mean(a), Mean(b)
	av, bv := pairedValid(a, b)
	sum := kernel.CrossMomentSum(av, bv, ma, mb)
	return sum / float64(a.Len()-1)
}

// Corr returns the Pearson correlation of two aligned columns. Either
// column being empty, a zero or undefined covariance, or a zero standard
// deviation on either side yields the undefined sentinel.
func Corr(a, b *column.Column) float64 {
	if a.Len() == 0 || b.Len() == 0 {
		return column.SentinelFor(a.DType())
	}

	cov := Cov(a, b)
	stdA, stdB := Std(a), Std(b)

	if cov == 0 || math.IsNaN(cov) || stdA == 0 || stdB == 0 {
		return column.SentinelFor(a.DType())
	}
	return cov / stdA / stdB
}

// pairedValid gathers the aligned values at positions where both columns
// are valid, up to the shorter length.
func pairedValid(a, b *column.Column) ([]float64, []float64) {
	n := a.Len()
	if b.Len() < n {
		n = b.Len()
	}
	av := make([]float64, 0, n)
	bv := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if a.IsValid(i) && b.IsValid(i) {
			av = append(av, a.Value(i))
			bv = append(bv, b.Value(i))
		}
	}
	return av, bv
}
