package uutest

import "sort"

// ForwardSearch looks for the first point of p at least two positions after
// eL such that the gap [eL, p[k]] is uniform, skipping the point that made
// the direct gap fail.
func (s *SufficiencySearch) ForwardSearch(p []float64, eL float64) (float64, bool) {
	idx := sort.SearchFloat64s(p, eL)
	if idx == len(p) || p[idx] != eL || idx+1 >= len(p) {
		return 0, false
	}
	for k := idx + 2; k < len(p); k++ {
		if s.uniform(eL, p[k]) {
			return p[k], true
		}
	}
	return 0, false
}

// BackwardSearch drops accepted breakpoints from the tail, most recent
// first, until the gap from the new last breakpoint to eR is uniform. It
// returns the shortened sequence with eR appended.
func (s *SufficiencySearch) BackwardSearch(accepted []float64, eR float64) ([]float64, bool) {
	for n := len(accepted) - 1; n >= 1; n-- {
		if s.uniform(accepted[n-1], eR) {
			res := make([]float64, n, n+1)
			copy(res, accepted[:n])
			return append(res, eR), true
		}
	}
	return nil, false
}
