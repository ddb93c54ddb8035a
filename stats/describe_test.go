package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/veldran/colstat/column"
)

func TestDescribeDense(t *testing.T) {
	s := Describe(dense15())

	assert.Equal(t, 5, s.Count)
	assert.InDelta(t, 3.0, s.Mean, 1e-12)
	assert.InDelta(t, math.Sqrt(2.5), s.Std, 1e-12)
	assert.Equal(t, 1.0, s.Min)
	assert.InDelta(t, 2.0, s.Q1, 1e-12)
	assert.InDelta(t, 3.0, s.Median, 1e-12)
	assert.InDelta(t, 4.0, s.Q3, 1e-12)
	assert.Equal(t, 5.0, s.Max)
}

func TestDescribeSkipsNulls(t *testing.T) {
	s := Describe(sparse15())

	assert.Equal(t, 4, s.Count)
	assert.InDelta(t, 3.0, s.Mean, 1e-12)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 5.0, s.Max)
}

func TestDescribeEmpty(t *testing.T) {
	s := Describe(column.New(column.Float64, nil))

	assert.Equal(t, 0, s.Count)
	assert.True(t, math.IsNaN(s.Mean))
	assert.True(t, math.IsNaN(s.Std))
	assert.True(t, math.IsNaN(s.Min))
	assert.True(t, math.IsNaN(s.Q1))
	assert.True(t, math.IsNaN(s.Median))
	assert.True(t, math.IsNaN(s.Q3))
	assert.True(t, math.IsNaN(s.Max))
}
