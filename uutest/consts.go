package uutest

const (
	// DefaultAlpha is the significance level of the uniformity test.
	DefaultAlpha = 0.01

	// DefaultMaxDepth bounds the recursion on the intermediate interval.
	DefaultMaxDepth = 512

	// DefaultGridSize is the number of points used by CdfGrid and
	// DensityGrid when no size is given.
	DefaultGridSize = 200
)

// Config tunes the decomposition. Zero values are replaced by defaults.
type Config struct {
	// Alpha is the significance level of the default uniformity test.
	Alpha float64

	// BinCount is the number of histogram bins used to build the empirical
	// CDF of a sub-sample. If BinCount is 0, the sub-sample size is used.
	BinCount int

	// MaxDepth bounds how often the intermediate interval is split.
	MaxDepth int

	// Parallel evaluates the candidate decompositions of one level
	// concurrently. The result is the same as the sequential search.
	Parallel bool

	// Test replaces the Kolmogorov-Smirnov uniformity test.
	Test UniformityTest
}

func (c *Config) withDefaults() Config {
	res := Config{}
	if c != nil {
		res = *c
	}
	if res.Alpha <= 0 || res.Alpha >= 1 {
		res.Alpha = DefaultAlpha
	}
	if res.BinCount < 0 {
		res.BinCount = 0
	}
	if res.MaxDepth <= 0 {
		res.MaxDepth = DefaultMaxDepth
	}
	if res.Test == nil {
		res.Test = NewKSUniformityTest(res.Alpha)
	}
	return res
}
