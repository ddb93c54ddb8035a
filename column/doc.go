// Package column provides the validity-aware numeric sequence consumed by
// the statistics engines.
//
// A Column pairs a buffer of numeric entries with a parallel validity
// indicator: every entry is either valid (has a value) or null (missing).
// Columns are immutable once built; every transform returns a freshly
// allocated Column and never aliases the input.
//
// # Element types
//
// The element type of a Column is a closed tag (DType). The tag governs
// the undefined-result sentinel callers receive for statistically
// undefined outcomes:
//
//	col := column.New(column.Float64, []float64{1, 2, 3})
//	nan := column.SentinelFor(col.DType())  // math.IsNaN(nan) == true
//
// # Null handling
//
// Cleaning pipelines are expressed as chained pure transforms:
//
//	cleaned := col.NaNsToNulls().DropNulls()
package column
