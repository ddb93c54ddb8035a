package kernel

import (
	"math"
	"sort"
)

// Interpolation selects how an order statistic is computed when the
// requested rank falls between two sorted samples.
type Interpolation int

// Interpolation policies.
const (
	InterpLinear Interpolation = iota
	InterpLower
	InterpHigher
	InterpNearest
	InterpMidpoint
)

// String returns the name of the interpolation policy.
func (ip Interpolation) String() string {
	switch ip {
	case InterpLinear:
		return "linear"
	case InterpLower:
		return "lower"
	case InterpHigher:
		return "higher"
	case InterpNearest:
		return "nearest"
	case InterpMidpoint:
		return "midpoint"
	}
	return "unknown"
}

// SortPermutation returns the positions of values in stable ascending
// order. Null entries (valid[i] == false) group at the front when
// nullsFirst is true, otherwise at the back. NaN entries sort after every
// non-NaN valid entry. A nil valid slice marks every entry valid.
//
// Panics if valid is non-nil and its length differs from values.
func SortPermutation(values []float64, valid []bool, nullsFirst bool) []int {
	if valid != nil && len(valid) != len(values) {
		panic("kernel: slice length mismatch")
	}
	perm := make([]int, len(values))
	for i := range perm {
		perm[i] = i
	}
	isNull := func(i int) bool { return valid != nil && !valid[i] }
	sort.SliceStable(perm, func(i, j int) bool {
		pi, pj := perm[i], perm[j]
		ni, nj := isNull(pi), isNull(pj)
		if ni || nj {
			if ni == nj {
				return false
			}
			return ni == nullsFirst
		}
		vi, vj := values[pi], values[pj]
		if math.IsNaN(vj) {
			return !math.IsNaN(vi)
		}
		if math.IsNaN(vi) {
			return false
		}
		return vi < vj
	})
	return perm
}

// OrderStatistic extracts the q-th quantile (0 ≤ q ≤ 1) from sorted,
// an ascending buffer of valid samples, under the given interpolation
// policy. The rank is q·(n−1). Returns (NaN, false) when sorted is empty.
func OrderStatistic(sorted []float64, q float64, interp Interpolation) (float64, bool) {
	n := len(sorted)
	if n == 0 {
		return math.NaN(), false
	}
	pos := q * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))

	switch interp {
	case InterpLower:
		return sorted[lo], true
	case InterpHigher:
		return sorted[hi], true
	case InterpNearest:
		return sorted[int(math.RoundToEven(pos))], true
	case InterpMidpoint:
		return (sorted[lo] + sorted[hi]) / 2, true
	default: // linear
		if lo == hi {
			return sorted[lo], true
		}
		frac := pos - float64(lo)
		return sorted[lo] + frac*(sorted[hi]-sorted[lo]), true
	}
}

// OrderStatistics extracts one order statistic per probability in qs.
// The second slice flags which results are present; on an empty input
// every result is absent.
func OrderStatistics(sorted []float64, qs []float64, interp Interpolation) ([]float64, []bool) {
	out := make([]float64, len(qs))
	ok := make([]bool, len(qs))
	for i, q := range qs {
		out[i], ok[i] = OrderStatistic(sorted, q, interp)
	}
	return out, ok
}
