package model

import "fmt"

// Interval is a closed-open range [Start, End) of a fitted model. The last
// interval of a model is closed on both ends.
type Interval struct {
	Start float64 `json:"s"`
	End   float64 `json:"e"`
}

func (i Interval) Width() float64 {
	return i.End - i.Start
}

// UUModel is a fitted unimodal-uniform model: a piecewise uniform density
// over consecutive breakpoints.
type UUModel struct {
	Breakpoints []float64  `json:"breakpoints,omitempty"`
	Intervals   []Interval `json:"intervals,omitempty"`
	Weights     []float64  `json:"weights,omitempty"`
}

func (m *UUModel) Unimodal() bool {
	return m != nil && len(m.Breakpoints) > 0
}

func (m *UUModel) DebugString() string {
	if m == nil {
		return "<nil>"
	}
	return fmt.Sprintf("breakpoints: %v, intervals: %v, weights: %v",
		len(m.Breakpoints), len(m.Intervals), m.Weights)
}

type Density struct {
	X     float64
	Value float64
}

type Cdf struct {
	X     float64
	Value float64
}

type QuantileValue struct {
	Value    float64 `json:"v,omitempty"`
	Quantile float64 `json:"q,omitempty"`
}
