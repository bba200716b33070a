package uutest

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// UniformityResult is the outcome of a uniformity test. P, Statistic and
// CriticalValue are NaN when the test was decided without computing them.
type UniformityResult struct {
	// Uniform reports whether the sub-sample is consistent with a uniform
	// distribution on its own range.
	Uniform bool

	// P is the p-value of the test.
	P float64

	// Statistic is the value of the test statistic.
	Statistic float64

	// CriticalValue is an approximate critical value of the statistic at
	// the test's significance level. It does not affect Uniform.
	CriticalValue float64
}

// A UniformityTest decides whether a sub-sample is consistent with a
// uniform distribution on [min(x), max(x)].
type UniformityTest interface {
	Test(x []float64) UniformityResult
}

// KSUniformityTest is a one-sample Kolmogorov-Smirnov test against the
// uniform distribution fitted to the sub-sample's own minimum and maximum.
//
// Fitting the support from the sub-sample biases the test toward
// acceptance, most visibly for small sub-samples.
type KSUniformityTest struct {
	Alpha float64
}

func NewKSUniformityTest(alpha float64) *KSUniformityTest {
	if alpha <= 0 || alpha >= 1 {
		alpha = DefaultAlpha
	}
	return &KSUniformityTest{Alpha: alpha}
}

func (t *KSUniformityTest) Test(x []float64) UniformityResult {
	n := len(x)
	if n <= 1 {
		return UniformityResult{Uniform: true, P: math.NaN(), Statistic: math.NaN(), CriticalValue: math.NaN()}
	}
	if !sort.Float64sAreSorted(x) {
		x = append([]float64(nil), x...)
		sort.Float64s(x)
	}

	alpha := t.Alpha
	cv := math.Sqrt(-0.5*math.Log(alpha/2)) / math.Sqrt(float64(n))

	lo, hi := floats.Min(x), floats.Max(x)
	if lo == hi {
		return UniformityResult{Uniform: true, P: 1, Statistic: 0, CriticalValue: cv}
	}

	dist := distuv.Uniform{Min: lo, Max: hi}
	d := ksStatistic(x, dist.CDF)
	p := kolmogorovPValue(n, d)

	return UniformityResult{
		Uniform:       p > alpha,
		P:             p,
		Statistic:     d,
		CriticalValue: cv,
	}
}

// ksStatistic returns sup |F_n(x) - cdf(x)| for the sorted sample x.
func ksStatistic(x []float64, cdf func(float64) float64) float64 {
	n := float64(len(x))
	d := 0.0
	for i, v := range x {
		f := cdf(v)
		d = math.Max(d, math.Max(float64(i+1)/n-f, f-float64(i)/n))
	}
	return d
}

// kolmogorovPValue returns P(D_n >= d) using the limiting Kolmogorov
// distribution with Stephens' correction for finite n.
func kolmogorovPValue(n int, d float64) float64 {
	sqrtN := math.Sqrt(float64(n))
	lambda := (sqrtN + 0.12 + 0.11/sqrtN) * d
	return kolmogorovQ(lambda)
}

// kolmogorovQ is the survival function of the Kolmogorov distribution,
// Q(λ) = 2 Σ (-1)^(k-1) exp(-2k²λ²).
func kolmogorovQ(lambda float64) float64 {
	if lambda < 0.2 {
		return 1
	}
	a2 := -2 * lambda * lambda
	sign := 2.0
	sum, prev := 0.0, 0.0
	for k := 1; k <= 100; k++ {
		term := sign * math.Exp(a2*float64(k*k))
		sum += term
		if math.Abs(term) <= 1e-10*prev || math.Abs(term) <= 1e-16*math.Abs(sum) {
			return math.Min(math.Max(sum, 0), 1)
		}
		sign = -sign
		prev = math.Abs(term)
	}
	// the series only fails to converge for tiny lambda
	return 1
}
