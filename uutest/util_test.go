package uutest

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

func normalSample(seed uint64, n int, mu, sigma float64) []float64 {
	dist := distuv.Normal{Mu: mu, Sigma: sigma, Src: rand.NewSource(seed)}
	res := make([]float64, n)
	for i := range res {
		res[i] = dist.Rand()
	}
	return res
}

func uniformSample(seed uint64, n int, lo, hi float64) []float64 {
	dist := distuv.Uniform{Min: lo, Max: hi, Src: rand.NewSource(seed)}
	res := make([]float64, n)
	for i := range res {
		res[i] = dist.Rand()
	}
	return res
}

// bimodalSample draws n points from each of two unit-variance normals
// whose means are gap apart.
func bimodalSample(seed uint64, n int, gap float64) []float64 {
	return append(normalSample(seed, n, 0, 1), normalSample(seed+1000, n, gap, 1)...)
}

// rangeTest is a UniformityTest driven by the sub-sample's range.
type rangeTest func(lo, hi float64, n int) bool

func (f rangeTest) Test(x []float64) UniformityResult {
	if len(x) == 0 {
		return UniformityResult{Uniform: true}
	}
	return UniformityResult{Uniform: f(x[0], x[len(x)-1], len(x))}
}

// rejectRanges is a rangeTest that rejects exactly the sub-samples spanning
// one of the given [min, max] ranges.
func rejectRanges(ranges ...[2]float64) rangeTest {
	return func(lo, hi float64, n int) bool {
		for _, r := range ranges {
			if lo == r[0] && hi == r[1] {
				return false
			}
		}
		return true
	}
}
