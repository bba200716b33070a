package model

import (
	"fmt"
	"math"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/uyouii/uutest/common"
)

// Sample is an ascending copy of a one-dimensional data set. It is never
// modified after NewSample returns.
type Sample struct {
	values []float64
}

func NewSample(values []float64) (*Sample, error) {
	if len(values) == 0 {
		return nil, common.ErrorEmptySample
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errors.Wrapf(common.ErrorInvalidValue, "value %v at index %d", v, i)
		}
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return &Sample{values: sorted}, nil
}

// Values returns the sorted values. The slice is shared and must not be
// modified.
func (s *Sample) Values() []float64 {
	return s.values
}

func (s *Sample) Len() int {
	if s == nil {
		return 0
	}
	return len(s.values)
}

func (s *Sample) IsEmpty() bool {
	return s.Len() == 0
}

func (s *Sample) Min() float64 {
	return s.values[0]
}

func (s *Sample) Max() float64 {
	return s.values[len(s.values)-1]
}

// Between returns the values v with lo <= v <= hi, sharing the backing
// array of the sample.
func (s *Sample) Between(lo, hi float64) []float64 {
	if s.IsEmpty() || lo > hi {
		return nil
	}
	lower, upper := s.index(lo, false), s.index(hi, true)
	return s.values[lower:upper]
}

// Count returns the number of values in [lo, hi), or [lo, hi] when closed
// is set.
func (s *Sample) Count(lo, hi float64, closed bool) int {
	if s.IsEmpty() || lo > hi {
		return 0
	}
	return s.index(hi, closed) - s.index(lo, false)
}

// index returns the first position whose value is >= x, or > x when after
// is set.
func (s *Sample) index(x float64, after bool) int {
	if after {
		return sort.Search(len(s.values), func(i int) bool { return s.values[i] > x })
	}
	return sort.SearchFloat64s(s.values, x)
}

func (s *Sample) DebugString() string {
	if s.IsEmpty() {
		return "valueCount: 0"
	}
	return fmt.Sprintf("valueCount: %v, min: %v, max: %v", s.Len(), s.Min(), s.Max())
}
