package column

import "math"

// Column is an ordered collection of same-typed numeric entries, each
// valid or null. Entries are held as float64 regardless of element type;
// the DType tag carries the semantic type (bool entries are 0 or 1).
//
// Columns are read-only after construction. Transforms return new Columns.
type Column struct {
	dtype  DType
	values []float64
	valid  []bool
	nulls  int
}

// New creates a Column with every entry valid. The values slice is copied.
func New(dtype DType, values []float64) *Column {
	vals := make([]float64, len(values))
	copy(vals, values)
	valid := make([]bool, len(values))
	for i := range valid {
		valid[i] = true
	}
	return &Column{dtype: dtype, values: vals, valid: valid}
}

// NewNullable creates a Column with an explicit validity slice. A nil
// valid slice marks every entry valid. Both slices are copied.
//
// Panics if valid is non-nil and its length differs from values.
func NewNullable(dtype DType, values []float64, valid []bool) *Column {
	if valid == nil {
		return New(dtype, values)
	}
	if len(valid) != len(values) {
		panic("column: values and valid length mismatch")
	}
	vals := make([]float64, len(values))
	copy(vals, values)
	vld := make([]bool, len(valid))
	copy(vld, valid)
	nulls := 0
	for _, ok := range vld {
		if !ok {
			nulls++
		}
	}
	return &Column{dtype: dtype, values: vals, valid: vld, nulls: nulls}
}

// Len returns the number of entries, valid and null.
func (c *Column) Len() int {
	return len(c.values)
}

// DType returns the element type tag.
func (c *Column) DType() DType {
	return c.dtype
}

// NullCount returns the number of null entries.
func (c *Column) NullCount() int {
	return c.nulls
}

// HasNulls reports whether any entry is null.
func (c *Column) HasNulls() bool {
	return c.nulls > 0
}

// IsValid reports whether entry i is valid.
func (c *Column) IsValid(i int) bool {
	return c.valid[i]
}

// Value returns entry i. The value of a null entry is unspecified.
func (c *Column) Value(i int) float64 {
	return c.values[i]
}

// Values returns a copy of the value buffer, including null positions.
func (c *Column) Values() []float64 {
	vals := make([]float64, len(c.values))
	copy(vals, c.values)
	return vals
}

// Validity returns a copy of the validity slice.
func (c *Column) Validity() []bool {
	vld := make([]bool, len(c.valid))
	copy(vld, c.valid)
	return vld
}

// ValidValues returns the values of the valid entries, in order.
func (c *Column) ValidValues() []float64 {
	out := make([]float64, 0, len(c.values)-c.nulls)
	for i, v := range c.values {
		if c.valid[i] {
			out = append(out, v)
		}
	}
	return out
}

// NaNsToNulls returns a Column where floating NaN entries are marked null.
// Non-floating columns come back as a plain copy.
func (c *Column) NaNsToNulls() *Column {
	if !c.dtype.IsFloating() {
		return NewNullable(c.dtype, c.values, c.valid)
	}
	valid := make([]bool, len(c.valid))
	copy(valid, c.valid)
	for i, v := range c.values {
		if valid[i] && math.IsNaN(v) {
			valid[i] = false
		}
	}
	return NewNullable(c.dtype, c.values, valid)
}

// DropNulls returns a Column containing only the valid entries.
func (c *Column) DropNulls() *Column {
	return New(c.dtype, c.ValidValues())
}
