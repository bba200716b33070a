package uutest

import (
	"math"
	"slices"
	"sort"

	"github.com/uyouii/uutest/model"
	"github.com/uyouii/uutest/utils"
	"gonum.org/v1/gonum/floats"
)

// EvaluateCDF returns the CDF of the piecewise uniform model at x. The CDF
// is 0 below the first breakpoint, 1 above the last one and linear within
// each interval. Zero-width intervals are point masses.
func EvaluateCDF(x float64, intervals []model.Interval, weights []float64) float64 {
	if len(intervals) == 0 || len(intervals) != len(weights) {
		return math.NaN()
	}
	if x < intervals[0].Start {
		return 0
	}
	if x > intervals[len(intervals)-1].End {
		return 1
	}

	mass := 0.0
	for j, interval := range intervals {
		if x >= interval.Start && x <= interval.End {
			if interval.Width() == 0 {
				return mass + weights[j]
			}
			return mass + weights[j]*(x-interval.Start)/interval.Width()
		}
		mass += weights[j]
	}
	// x lies in a gap between intervals
	return mass
}

// EvaluatePDF returns the density of the piecewise uniform model at x.
// Intervals are closed-open except the last one. A zero-width interval has
// an infinite density at its point.
func EvaluatePDF(x float64, intervals []model.Interval, weights []float64) float64 {
	if len(intervals) == 0 || len(intervals) != len(weights) {
		return math.NaN()
	}
	last := len(intervals) - 1
	for j, interval := range intervals {
		if x < interval.Start {
			continue
		}
		if x < interval.End || (j == last && x == interval.End) {
			if interval.Width() == 0 {
				return math.Inf(1)
			}
			return weights[j] / interval.Width()
		}
	}
	return 0
}

// EvaluateCDFEach evaluates the model's CDF at every value of x in
// ascending order and returns the values alongside the sorted x.
func EvaluateCDFEach(x []float64, m *model.UUModel) ([]float64, []float64) {
	return evaluateEach(x, m, EvaluateCDF)
}

// EvaluatePDFEach is EvaluateCDFEach for the density.
func EvaluatePDFEach(x []float64, m *model.UUModel) ([]float64, []float64) {
	return evaluateEach(x, m, EvaluatePDF)
}

func evaluateEach(x []float64, m *model.UUModel,
	f func(float64, []model.Interval, []float64) float64) ([]float64, []float64) {
	sorted := append([]float64(nil), x...)
	sort.Float64s(sorted)
	y := make([]float64, len(sorted))
	for i, v := range sorted {
		y[i] = f(v, m.Intervals, m.Weights)
	}
	return y, sorted
}

// CdfGrid evaluates the model's CDF on gridSize equally spaced points
// between the first and the last breakpoint.
func CdfGrid(m *model.UUModel, gridSize int) []model.Cdf {
	res := []model.Cdf{}
	for _, x := range modelGrid(m, gridSize) {
		res = append(res, model.Cdf{X: x, Value: EvaluateCDF(x, m.Intervals, m.Weights)})
	}
	return res
}

// DensityGrid evaluates the model's density like CdfGrid.
func DensityGrid(m *model.UUModel, gridSize int) []model.Density {
	res := []model.Density{}
	for _, x := range modelGrid(m, gridSize) {
		res = append(res, model.Density{X: x, Value: EvaluatePDF(x, m.Intervals, m.Weights)})
	}
	return res
}

func modelGrid(m *model.UUModel, gridSize int) []float64 {
	if !m.Unimodal() {
		return nil
	}
	if gridSize <= 0 {
		gridSize = DefaultGridSize
	}
	grid := utils.Linspace(floats.Min(m.Breakpoints), floats.Max(m.Breakpoints), gridSize)

	// keep the breakpoints so the steps of the density are exact
	grid = append(grid, m.Breakpoints...)
	slices.Sort(grid)
	return slices.Compact(grid)
}

// Quantile returns the value at which the model's CDF reaches p.
func Quantile(m *model.UUModel, p float64) *model.QuantileValue {
	if !m.Unimodal() || len(m.Intervals) != len(m.Weights) {
		return nil
	}
	first, last := m.Intervals[0], m.Intervals[len(m.Intervals)-1]
	if p <= 0 {
		return &model.QuantileValue{Quantile: p, Value: first.Start}
	}
	if p >= 1 {
		return &model.QuantileValue{Quantile: p, Value: last.End}
	}

	mass := 0.0
	for j, interval := range m.Intervals {
		upper := mass + m.Weights[j]
		if upper >= p && m.Weights[j] > 0 {
			value := interval.Start + interval.Width()*(p-mass)/m.Weights[j]
			return &model.QuantileValue{Quantile: p, Value: value}
		}
		mass = upper
	}
	return &model.QuantileValue{Quantile: p, Value: last.End}
}
