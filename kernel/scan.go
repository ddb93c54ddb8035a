package kernel

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// ScanOp selects the associative operator of a prefix scan.
type ScanOp int

// Prefix scan operators.
const (
	ScanSum ScanOp = iota
	ScanProd
	ScanMin
	ScanMax
)

// Scan computes an inclusive prefix scan of values under op. Null entries
// (valid[i] == false) stay null in the output and are skipped by the
// accumulation, so entries after a null keep accumulating from the last
// valid prefix. A nil valid slice marks every entry valid, in which case
// sum and product scans run as dense gonum cumulations.
//
// Panics if valid is non-nil and its length differs from values.
func Scan(op ScanOp, values []float64, valid []bool) ([]float64, []bool) {
	if valid != nil && len(valid) != len(values) {
		panic("kernel: slice length mismatch")
	}
	outValid := make([]bool, len(values))
	for i := range outValid {
		outValid[i] = valid == nil || valid[i]
	}

	if valid == nil {
		switch op {
		case ScanSum:
			return floats.CumSum(make([]float64, len(values)), values), outValid
		case ScanProd:
			return floats.CumProd(make([]float64, len(values)), values), outValid
		}
	}

	out := make([]float64, len(values))
	acc := 0.0
	started := false
	for i, v := range values {
		if !outValid[i] {
			out[i] = math.NaN()
			continue
		}
		if !started {
			acc = v
			started = true
		} else {
			switch op {
			case ScanSum:
				acc += v
			case ScanProd:
				acc *= v
			case ScanMin:
				if v < acc {
					acc = v
				}
			case ScanMax:
				if v > acc {
					acc = v
				}
			}
		}
		out[i] = acc
	}
	return out, outValid
}
