package uutest

import (
	"math"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/uyouii/uutest/common"
	"github.com/uyouii/uutest/model"
)

// FitModel turns breakpoints into a unimodal-uniform model of sample: one
// interval per pair of consecutive breakpoints, weighted by the fraction of
// the sample in [start, end). The last interval is closed on both ends. A
// single breakpoint yields one zero-width interval, and no breakpoints an
// empty model.
func FitModel(sample []float64, breakpoints []float64) (*model.UUModel, error) {
	s, err := model.NewSample(sample)
	if err != nil {
		return nil, errors.Wrap(err, "fit model")
	}
	for i, b := range breakpoints {
		if math.IsNaN(b) || math.IsInf(b, 0) {
			return nil, errors.Wrapf(common.ErrorInvalidValue, "breakpoint %v at index %d", b, i)
		}
	}

	res := &model.UUModel{}
	if len(breakpoints) == 0 {
		return res, nil
	}

	res.Breakpoints = append([]float64(nil), breakpoints...)
	sort.Float64s(res.Breakpoints)

	if len(res.Breakpoints) == 1 {
		res.Intervals = []model.Interval{{Start: res.Breakpoints[0], End: res.Breakpoints[0]}}
	} else {
		res.Intervals = make([]model.Interval, len(res.Breakpoints)-1)
		for i := range res.Intervals {
			res.Intervals[i] = model.Interval{Start: res.Breakpoints[i], End: res.Breakpoints[i+1]}
		}
	}

	res.Weights = make([]float64, len(res.Intervals))
	n := float64(s.Len())
	for i, interval := range res.Intervals {
		closed := i == len(res.Intervals)-1
		res.Weights[i] = float64(s.Count(interval.Start, interval.End, closed)) / n
	}
	return res, nil
}
