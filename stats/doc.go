// Package stats provides reductions, moments, order statistics, pairwise
// statistics, prefix scans, and rounding over validity-aware columns.
//
// Every operation is a pure function of its inputs: columns are never
// mutated, no state survives a call, and statistically undefined outcomes
// (empty input, too few samples, zero-variance denominators) resolve to
// the element type's undefined-result sentinel rather than an error. The
// single error condition in the package is a quantile probability outside
// [0, 1], rejected before any computation begins.
//
// # Reductions
//
// Mean, variance, and standard deviation take a skip-null policy, a
// minimum valid-entry count, and a degrees-of-freedom adjustment:
//
//	col := column.New(column.Float64, []float64{1, 2, 3, 4, 5})
//	m := stats.Mean(col)  // 3.0
//	v := stats.VarianceOpts(col, stats.ReduceOptions{
//		SkipNulls: true,
//		DDof:      1,
//	})                    // 2.5
//
// # Order statistics
//
//	q, err := stats.Quantile(col, 0.25, kernel.InterpLinear, true)  // 2.0
//	med := stats.Median(col, true)                                  // 3.0
//
// # Higher moments and pairwise statistics
//
//	sk := stats.Skew(col, true)
//	ku := stats.Kurtosis(col, true)
//	cv := stats.Cov(a, b)
//	r := stats.Corr(a, b)
//
// # Scans and rounding
//
//	cum := stats.Scan(stats.CumSum, col)
//	rounded := stats.Round(col, 2, kernel.RoundHalfEven)
package stats
