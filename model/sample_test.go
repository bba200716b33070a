package model

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uyouii/uutest/common"
)

func TestNewSample_SortsCopy(t *testing.T) {
	input := []float64{3, 1, 2, 2}
	sample, err := NewSample(input)
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 2, 2, 3}, sample.Values())
	assert.Equal(t, []float64{3, 1, 2, 2}, input)
	assert.Equal(t, 4, sample.Len())
	assert.Equal(t, 1.0, sample.Min())
	assert.Equal(t, 3.0, sample.Max())
}

func TestNewSample_RejectsMalformedInput(t *testing.T) {
	_, err := NewSample(nil)
	assert.True(t, errors.Is(err, common.ErrorEmptySample))

	_, err = NewSample([]float64{1, math.NaN()})
	assert.True(t, errors.Is(err, common.ErrorInvalidValue))
	assert.Contains(t, err.Error(), "index 1")

	_, err = NewSample([]float64{math.Inf(1)})
	assert.True(t, errors.Is(err, common.ErrorInvalidValue))
}

func TestSample_Between(t *testing.T) {
	sample, err := NewSample([]float64{5, 1, 3, 3, 4, 2})
	require.NoError(t, err)

	assert.Equal(t, []float64{2, 3, 3, 4}, sample.Between(2, 4))
	assert.Equal(t, []float64{3, 3}, sample.Between(2.5, 3))
	assert.Equal(t, []float64{1, 2, 3, 3, 4, 5}, sample.Between(-10, 10))
	assert.Empty(t, sample.Between(3.1, 3.9))
	assert.Empty(t, sample.Between(4, 2))
}

func TestSample_Count(t *testing.T) {
	sample, err := NewSample([]float64{1, 2, 2, 3, 4})
	require.NoError(t, err)

	assert.Equal(t, 1, sample.Count(1, 2, false))
	assert.Equal(t, 3, sample.Count(1, 2, true))
	assert.Equal(t, 2, sample.Count(3, 4, true))
	assert.Equal(t, 0, sample.Count(5, 6, true))
}

func TestSample_NilIsEmpty(t *testing.T) {
	var sample *Sample
	assert.True(t, sample.IsEmpty())
	assert.Equal(t, "valueCount: 0", sample.DebugString())
}

func TestUUModel_Unimodal(t *testing.T) {
	var m *UUModel
	assert.False(t, m.Unimodal())
	assert.False(t, (&UUModel{}).Unimodal())
	assert.True(t, (&UUModel{Breakpoints: []float64{0, 1}}).Unimodal())
	assert.Equal(t, 2.0, Interval{Start: 1, End: 3}.Width())
}
