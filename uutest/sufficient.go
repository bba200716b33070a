package uutest

import (
	"context"
	"sort"

	"github.com/uyouii/uutest/model"
)

// SufficiencySearch coarsens a convex or concave breakpoint sequence until
// every gap between consecutive breakpoints holds a uniform sub-sample.
type SufficiencySearch struct {
	sample *model.Sample
	test   UniformityTest
}

func NewSufficiencySearch(sample *model.Sample, test UniformityTest) *SufficiencySearch {
	if test == nil {
		test = NewKSUniformityTest(DefaultAlpha)
	}
	return &SufficiencySearch{sample: sample, test: test}
}

// Find returns a sub-sequence of p that starts and ends at p's endpoints and
// whose gaps are all uniform. p must be ascending. The boolean is false when
// neither forward nor backward search can repair a failing gap.
func (s *SufficiencySearch) Find(ctx context.Context, p []float64) ([]float64, bool, error) {
	if len(p) < 2 {
		return append([]float64(nil), p...), true, nil
	}
	first, last := p[0], p[len(p)-1]
	if s.uniform(first, last) {
		return []float64{first, last}, true, nil
	}

	accepted := []float64{first}
	for accepted[len(accepted)-1] < last {
		if err := ctx.Err(); err != nil {
			return nil, false, err
		}

		eL := accepted[len(accepted)-1]
		eR := p[sort.Search(len(p), func(i int) bool { return p[i] > eL })]
		if s.uniform(eL, eR) {
			accepted = append(accepted, eR)
			continue
		}

		if next, ok := s.ForwardSearch(p, eL); ok {
			accepted = append(accepted, next)
			continue
		}

		shorter, ok := s.BackwardSearch(accepted, eR)
		if !ok {
			return nil, false, nil
		}
		accepted = shorter
	}
	return accepted, true, nil
}

func (s *SufficiencySearch) uniform(lo, hi float64) bool {
	return s.test.Test(s.sample.Between(lo, hi)).Uniform
}
