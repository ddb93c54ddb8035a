package stats

import (
	"github.com/veldran/colstat/column"
	"github.com/veldran/colstat/kernel"
)

// ScanOp selects the cumulative operation of Scan.
type ScanOp int

// Cumulative operations.
const (
	CumSum ScanOp = iota
	CumProd
	CumMin
	CumMax
)

// String returns the name of the cumulative operation.
func (op ScanOp) String() string {
	switch op {
	case CumSum:
		return "cumsum"
	case CumProd:
		return "cumprod"
	case CumMin:
		return "cummin"
	case CumMax:
		return "cummax"
	}
	return "unknown"
}

// Scan returns a column of the same length where entry i is the running
// reduction of entries [0..i] under op. Null entries stay null and are
// skipped by the accumulation. The result carries the input's element
// type forward, except that bool columns promote to int64 under sum and
// product scans.
func Scan(op ScanOp, c *column.Column) *column.Column {
	vals, valid := kernel.Scan(kernelScanOp(op), c.Values(), c.Validity())

	dtype := c.DType()
	if dtype == column.Bool && (op == CumSum || op == CumProd) {
		dtype = column.Int64
	}
	return column.NewNullable(dtype, vals, valid)
}

func kernelScanOp(op ScanOp) kernel.ScanOp {
	switch op {
	case CumProd:
		return kernel.ScanProd
	case CumMin:
		return kernel.ScanMin
	case CumMax:
		return kernel.ScanMax
	default:
		return kernel.ScanSum
	}
}
