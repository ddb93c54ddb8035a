package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/veldran/colstat/column"
)

func TestCovMatchesVariance(t *testing.T) {
	a := column.New(column.Float64, []float64{1, 2, 3})
	b := column.New(column.Float64, []float64{1, 2, 3})

	assert.InDelta(t, 1.0, Cov(a, b), 1e-12)
	assert.InDelta(t, Variance(a), Cov(a, b), 1e-12)
}

func TestCovNegative(t *testing.T) {
	a := column.New(column.Float64, []float64{1, 2, 3})
	b := column.New(column.Float64, []float64{3, 2, 1})

	assert.InDelta(t, -1.0, Cov(a, b), 1e-12)
}

func TestCovEmpty(t *testing.T) {
	empty := column.New(column.Float64, nil)
	a := column.New(column.Float64, []float64{1, 2})

	assert.True(t, math.IsNaN(Cov(empty, a)))
	assert.True(t, math.IsNaN(Cov(a, empty)))
}

func TestCovSingleEntries(t *testing.T) {
	a := column.New(column.Float64, []float64{5})
	b := column.New(column.Float64, []float64{5})

	assert.True(t, math.IsNaN(Cov(a, b)), "1-and-1 length guard")
}

func TestCorrSelf(t *testing.T) {
	a := column.New(column.Float64, []float64{1, 2, 3, 4, 5})

	assert.InDelta(t, 1.0, Corr(a, a), 1e-12)
}

func TestCorrPerfectlyAnticorrelated(t *testing.T) {
	a := column.New(column.Float64, []float64{1, 2, 3})
	b := column.New(column.Float64, []float64{6, 4, 2})

	assert.InDelta(t, -1.0, Corr(a, b), 1e-12)
}

func TestCorrConstantSideIsUndefined(t *testing.T) {
	a := column.New(column.Float64, []float64{1, 2, 3})
	b := column.New(column.Float64, []float64{4, 4, 4})

	assert.True(t, math.IsNaN(Corr(a, b)), "zero std on one side")
}

func TestCorrEmpty(t *testing.T) {
	empty := column.New(column.Float64, nil)
	a := column.New(column.Float64, []float64{1, 2})

	assert.True(t, math.IsNaN(Corr(empty, a)))
	assert.True(t, math.IsNaN(Corr(a, empty)))
}

func TestCorrZeroCovarianceIsUndefined(t *testing.T) {
	a := column.New(column.Float64, []float64{1, 2, 1, 2})
	b := column.New(column.Float64, []float64{1, 1, 2, 2})

	assert.True(t, math.IsNaN(Corr(a, b)))
}

func TestCovSkipsNullPairs(t *testing.T) {
	a := column.NewNullable(column.Float64,
		[]float64{1, 2, 0, 4},
		[]bool{true, true, false, true})
	b := column.New(column.Float64, []float64{2, 4, 6, 8})

	got := Cov(a, b)
	assert.False(t, math.IsNaN(got))
	// deviation products only over the 3 valid pairs, divisor len-1
	assert.Greater(t, got, 0.0)
}
