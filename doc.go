// Package colstat provides columnar numerical statistics over
// validity-aware sequences.
//
// Colstat computes reductions (mean, variance, standard deviation),
// higher moments (skewness, excess kurtosis), order statistics
// (quantiles, median), pairwise statistics (covariance, Pearson
// correlation), prefix scans (cumulative sum/product/min/max), and
// decimal rounding over columns of numeric data that may contain null
// (missing) entries.
//
// # Features
//
//   - Null-aware semantics: skip-null policy, minimum-count gating, and
//     NaN-to-null cleaning before higher moments
//   - Undefined outcomes resolve to a type-appropriate NaN sentinel,
//     never an error; degenerate constant inputs resolve to an exact 0
//   - Quantiles under five interpolation policies (linear, lower,
//     higher, nearest, midpoint)
//   - Round-half-even and round-half-up decimal rounding
//   - Pure value transforms: inputs are never mutated
//
// # Quick Start
//
// Reduce a column:
//
//	col := column.New(column.Float64, []float64{1, 2, 3, 4, 5})
//	m := stats.Mean(col)          // 3.0
//	v := stats.Variance(col)      // 2.5
//	med := stats.Median(col, true)
//
// Columns with nulls:
//
//	col := column.NewNullable(column.Float64,
//		[]float64{1, 2, 0, 4, 5},
//		[]bool{true, true, false, true, true})
//	m := stats.Mean(col)  // 3.0 over the 4 valid entries
//
// # Packages
//
// The library is organized into the following packages:
//
//   - column: validity-aware numeric sequences and element-type tags
//   - kernel: bulk compute primitives (reductions, sort permutations,
//     order statistics, prefix scans, rounding)
//   - stats: the statistics engines layered on top
package colstat
