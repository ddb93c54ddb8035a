package column

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAllValid(t *testing.T) {
	c := New(Float64, []float64{1, 2, 3})

	assert.Equal(t, 3, c.Len())
	assert.Equal(t, 0, c.NullCount())
	assert.False(t, c.HasNulls())
	assert.Equal(t, Float64, c.DType())
	for i := 0; i < c.Len(); i++ {
		assert.True(t, c.IsValid(i))
	}
}

func TestNewCopiesInput(t *testing.T) {
	src := []float64{1, 2, 3}
	c := New(Int64, src)
	src[0] = 99

	assert.Equal(t, 1.0, c.Value(0), "column must not alias the caller's slice")
}

func TestNewNullable(t *testing.T) {
	c := NewNullable(Float64, []float64{1, 2, 0, 4}, []bool{true, true, false, true})

	assert.Equal(t, 4, c.Len())
	assert.Equal(t, 1, c.NullCount())
	assert.True(t, c.HasNulls())
	assert.False(t, c.IsValid(2))
	assert.Equal(t, []float64{1, 2, 4}, c.ValidValues())
}

func TestNewNullableNilValidity(t *testing.T) {
	c := NewNullable(Int32, []float64{1, 2}, nil)

	assert.Equal(t, 0, c.NullCount())
	assert.True(t, c.IsValid(1))
}

func TestNewNullableLengthMismatchPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewNullable(Float64, []float64{1, 2, 3}, []bool{true})
	})
}

func TestNaNsToNulls(t *testing.T) {
	c := New(Float64, []float64{1, math.NaN(), 3})
	cleaned := c.NaNsToNulls()

	assert.Equal(t, 1, cleaned.NullCount())
	assert.False(t, cleaned.IsValid(1))
	// input untouched
	assert.Equal(t, 0, c.NullCount())
}

func TestNaNsToNullsNonFloating(t *testing.T) {
	c := New(Int64, []float64{1, 2, 3})
	cleaned := c.NaNsToNulls()

	assert.Equal(t, 0, cleaned.NullCount())
	assert.Equal(t, Int64, cleaned.DType())
}

func TestDropNulls(t *testing.T) {
	c := NewNullable(Float64, []float64{1, 0, 3, 0}, []bool{true, false, true, false})
	dropped := c.DropNulls()

	require.Equal(t, 2, dropped.Len())
	assert.Equal(t, 0, dropped.NullCount())
	assert.Equal(t, []float64{1, 3}, dropped.ValidValues())
	assert.Equal(t, Float64, dropped.DType())
}

func TestCleaningPipeline(t *testing.T) {
	c := NewNullable(Float64,
		[]float64{1, math.NaN(), 0, 4},
		[]bool{true, true, false, true})
	cleaned := c.NaNsToNulls().DropNulls()

	assert.Equal(t, []float64{1, 4}, cleaned.ValidValues())
	assert.Equal(t, 4, c.Len(), "pipeline must not mutate the source")
	assert.Equal(t, 1, c.NullCount())
}

func TestValuesAndValidityAreCopies(t *testing.T) {
	c := NewNullable(Float64, []float64{1, 2}, []bool{true, false})

	vals := c.Values()
	vals[0] = 99
	vld := c.Validity()
	vld[1] = true

	assert.Equal(t, 1.0, c.Value(0))
	assert.False(t, c.IsValid(1))
}

func TestSentinelFor(t *testing.T) {
	for _, dt := range []DType{Int32, Int64, Uint32, Uint64, Float32, Float64, Bool} {
		assert.True(t, math.IsNaN(SentinelFor(dt)), "sentinel for %s must be NaN", dt)
	}
}

func TestDTypeString(t *testing.T) {
	assert.Equal(t, "float64", Float64.String())
	assert.Equal(t, "bool", Bool.String())
	assert.True(t, Float32.IsFloating())
	assert.False(t, Int64.IsFloating())
}
