package stats

import (
	"github.com/veldran/colstat/column"
	"github.com/veldran/colstat/kernel"
)

// Round rounds each valid entry to the given number of decimal places
// under mode, preserving the column's element type and validity.
func Round(c *column.Column, decimals int, mode kernel.RoundMode) *column.Column {
	vals := kernel.Round(c.Values(), decimals, mode)
	return column.NewNullable(c.DType(), vals, c.Validity())
}
