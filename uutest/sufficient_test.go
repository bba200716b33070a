package uutest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uyouii/uutest/model"
)

func integerSample(t *testing.T, lo, hi int) *model.Sample {
	values := []float64{}
	for v := lo; v <= hi; v++ {
		values = append(values, float64(v))
	}
	sample, err := model.NewSample(values)
	require.NoError(t, err)
	return sample
}

func TestSufficiencySearch_FastPath(t *testing.T) {
	s := NewSufficiencySearch(integerSample(t, 0, 10), rangeTest(func(lo, hi float64, n int) bool { return true }))

	res, ok, err := s.Find(context.Background(), []float64{0, 2, 4, 6, 8, 10})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []float64{0, 10}, res)
}

func TestSufficiencySearch_ShortInput(t *testing.T) {
	s := NewSufficiencySearch(integerSample(t, 0, 10), nil)

	res, ok, err := s.Find(context.Background(), []float64{4})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []float64{4}, res)
}

func TestSufficiencySearch_KeepsUniformGaps(t *testing.T) {
	test := rangeTest(func(lo, hi float64, n int) bool { return hi-lo <= 2 })
	s := NewSufficiencySearch(integerSample(t, 0, 10), test)

	p := []float64{0, 2, 4, 6, 8, 10}
	res, ok, err := s.Find(context.Background(), p)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, p, res)
}

func TestSufficiencySearch_RepairsWithForwardSearch(t *testing.T) {
	test := rangeTest(func(lo, hi float64, n int) bool {
		return hi-lo <= 4 && !(lo == 4 && hi == 6)
	})
	s := NewSufficiencySearch(integerSample(t, 0, 10), test)

	res, ok, err := s.Find(context.Background(), []float64{0, 2, 4, 6, 8, 10})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []float64{0, 2, 4, 8, 10}, res)
}

func TestSufficiencySearch_RepairsWithBackwardSearch(t *testing.T) {
	test := rangeTest(func(lo, hi float64, n int) bool {
		return hi-lo <= 4 && lo != 4
	})
	s := NewSufficiencySearch(integerSample(t, 0, 10), test)

	res, ok, err := s.Find(context.Background(), []float64{0, 2, 4, 6, 8, 10})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []float64{0, 2, 6, 8, 10}, res)
}

func TestSufficiencySearch_Exhausted(t *testing.T) {
	test := rangeTest(func(lo, hi float64, n int) bool { return n <= 1 })
	s := NewSufficiencySearch(integerSample(t, 0, 10), test)

	res, ok, err := s.Find(context.Background(), []float64{0, 2, 4})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, res)
}

func TestSufficiencySearch_HonoursCancellation(t *testing.T) {
	test := rangeTest(func(lo, hi float64, n int) bool { return hi-lo <= 2 })
	s := NewSufficiencySearch(integerSample(t, 0, 10), test)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, ok, err := s.Find(ctx, []float64{0, 2, 4, 6, 8, 10})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, ok)
}

func TestForwardSearch(t *testing.T) {
	test := rangeTest(func(lo, hi float64, n int) bool { return hi >= 8 })
	s := NewSufficiencySearch(integerSample(t, 0, 10), test)
	p := []float64{0, 2, 4, 6, 8, 10}

	next, ok := s.ForwardSearch(p, 2)
	assert.True(t, ok)
	assert.Equal(t, 8.0, next)

	// the direct neighbour is never considered
	next, ok = s.ForwardSearch(p, 6)
	assert.True(t, ok)
	assert.Equal(t, 10.0, next)

	_, ok = s.ForwardSearch(p, 8)
	assert.False(t, ok)
	_, ok = s.ForwardSearch(p, 10)
	assert.False(t, ok)
	_, ok = s.ForwardSearch(p, 3)
	assert.False(t, ok)
}

func TestBackwardSearch(t *testing.T) {
	test := rangeTest(func(lo, hi float64, n int) bool { return lo <= 2 })
	s := NewSufficiencySearch(integerSample(t, 0, 10), test)

	// the last accepted point is dropped before testing
	res, ok := s.BackwardSearch([]float64{0, 2, 4, 6}, 8)
	assert.True(t, ok)
	assert.Equal(t, []float64{0, 2, 8}, res)

	res, ok = s.BackwardSearch([]float64{0, 1, 2}, 8)
	assert.True(t, ok)
	assert.Equal(t, []float64{0, 1, 8}, res)

	_, ok = s.BackwardSearch([]float64{0}, 8)
	assert.False(t, ok)

	never := NewSufficiencySearch(integerSample(t, 0, 10), rangeTest(func(lo, hi float64, n int) bool { return false }))
	_, ok = never.BackwardSearch([]float64{0, 2, 4}, 6)
	assert.False(t, ok)
}
