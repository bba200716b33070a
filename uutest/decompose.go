package uutest

import (
	"context"
	"runtime"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/uyouii/uutest/common"
	"github.com/uyouii/uutest/model"
	"github.com/uyouii/uutest/utils"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Decomposition is the result of the UU recursion. Breakpoints is empty when
// the sample was found to be multimodal.
type Decomposition struct {
	Convex       []float64
	Intermediate []float64
	Concave      []float64
	Breakpoints  []float64

	// Depth is the deepest recursion level reached by the search.
	Depth int
	// UniformityTests counts the uniformity tests run by the search.
	UniformityTests int64
}

func (d *Decomposition) Unimodal() bool {
	return d != nil && len(d.Breakpoints) > 0
}

// partition is the working state of one branch of the recursion. It is
// never modified in place; extend returns a new value.
type partition struct {
	convex       []float64
	intermediate []float64
	concave      []float64
}

func (p partition) extend(convex, intermediate, concave []float64) partition {
	return partition{
		convex:       slices.Concat(p.convex, convex),
		intermediate: slices.Clone(intermediate),
		concave:      slices.Concat(p.concave, concave),
	}
}

func (p partition) breakpoints() []float64 {
	res := slices.Concat(p.convex, p.intermediate, p.concave)
	slices.Sort(res)
	return slices.Compact(res)
}

// Decomposer runs the UU test: it splits the empirical CDF into convex,
// intermediate and concave parts and recurses on the intermediate part
// until it is uniform.
type Decomposer struct {
	cfg Config
}

func NewDecomposer(cfg *Config) *Decomposer {
	return &Decomposer{cfg: cfg.withDefaults()}
}

// UUTest reports the breakpoints of a unimodal-uniform model of sample using
// the default configuration. An empty result means the sample is
// multimodal.
func UUTest(ctx context.Context, sample []float64) ([]float64, error) {
	res, err := NewDecomposer(nil).Decompose(ctx, sample)
	if err != nil {
		return nil, err
	}
	return res.Breakpoints, nil
}

// run is the state of a single Decompose call.
type run struct {
	*Decomposer
	sample *model.Sample
	search *SufficiencySearch
	tests  atomic.Int64
	depth  atomic.Int64
	logger *zap.Logger
}

func (d *Decomposer) newRun(sample *model.Sample, logger *zap.Logger) *run {
	r := &run{Decomposer: d, sample: sample, logger: logger}
	r.search = NewSufficiencySearch(sample, r)
	return r
}

func (r *run) Test(x []float64) UniformityResult {
	r.tests.Add(1)
	return r.cfg.Test.Test(x)
}

func (d *Decomposer) Decompose(ctx context.Context, values []float64) (*Decomposition, error) {
	logger := utils.GetLogger(ctx)

	sample, err := model.NewSample(values)
	if err != nil {
		logger.Error("invalid sample", zap.Error(err))
		return nil, err
	}

	r := d.newRun(sample, logger)

	start := time.Now()
	initial := partition{intermediate: []float64{sample.Min(), sample.Max()}}
	state, ok, err := r.decompose(ctx, initial, 0)
	if err != nil {
		logger.Error("decomposition aborted", zap.Error(err), zap.String("sample", sample.DebugString()))
		return nil, err
	}

	res := &Decomposition{
		Depth:           int(r.depth.Load()),
		UniformityTests: r.tests.Load(),
	}
	if ok {
		res.Convex = state.convex
		res.Intermediate = state.intermediate
		res.Concave = state.concave
		res.Breakpoints = state.breakpoints()
	}

	logger.Info("UU test done", zap.Bool("unimodal", ok), zap.Int("breakpoints", len(res.Breakpoints)),
		zap.Int("depth", res.Depth), zap.Int64("uniformityTests", res.UniformityTests),
		zap.Duration("elapsed", time.Since(start)))
	return res, nil
}

func (r *run) decompose(ctx context.Context, state partition, depth int) (partition, bool, error) {
	if err := ctx.Err(); err != nil {
		return partition{}, false, err
	}
	if depth > r.cfg.MaxDepth {
		return partition{}, false, errors.Wrapf(common.ErrorDepthExceeded, "depth %d", depth)
	}
	for {
		cur := r.depth.Load()
		if int64(depth) <= cur || r.depth.CompareAndSwap(cur, int64(depth)) {
			break
		}
	}

	lo, hi := state.intermediate[0], state.intermediate[1]
	sub := r.sample.Between(lo, hi)
	if r.Test(sub).Uniform {
		return state, true, nil
	}

	hulls := ExtractHulls(sub, r.cfg.BinCount)
	sets := BuildConsistentSets(hulls.GCMX(), hulls.LCMX())
	r.logger.Debug("split intermediate interval", zap.Int("depth", depth),
		zap.Float64s("interval", state.intermediate), zap.Int("points", len(sub)),
		zap.Int("candidates", len(sets)))

	return r.tryCandidates(ctx, state, sets, depth)
}

// tryCandidates returns the extension of state by the first candidate, in
// order, that decomposes. Each candidate starts from state.
func (r *run) tryCandidates(ctx context.Context, state partition, sets []ConsistentSet, depth int) (partition, bool, error) {
	if r.cfg.Parallel && len(sets) > 1 {
		return r.tryParallel(ctx, state, sets, depth)
	}
	for _, set := range sets {
		next, ok, err := r.tryCandidate(ctx, state, set, depth)
		if err != nil {
			return partition{}, false, err
		}
		if ok {
			return next, true, nil
		}
	}
	return partition{}, false, nil
}

// tryCandidate extends state with one consistent set and recurses on the
// resulting intermediate interval, if any.
func (r *run) tryCandidate(ctx context.Context, state partition, set ConsistentSet, depth int) (partition, bool, error) {
	points := set.Points
	var next partition

	switch pos := set.Crossover(); {
	case pos > 0:
		convex, ok, err := r.search.Find(ctx, points[:pos])
		if err != nil || !ok {
			return partition{}, false, err
		}
		concave, ok, err := r.search.Find(ctx, points[pos:])
		if err != nil || !ok {
			return partition{}, false, err
		}
		next = state.extend(convex, points[pos-1:pos+1], concave)
	case pos == 0:
		concave, ok, err := r.search.Find(ctx, points)
		if err != nil || !ok {
			return partition{}, false, err
		}
		next = state.extend(nil, nil, concave)
	default:
		convex, ok, err := r.search.Find(ctx, points)
		if err != nil || !ok {
			return partition{}, false, err
		}
		next = state.extend(convex, nil, nil)
	}

	if len(next.intermediate) == 0 {
		return next, true, nil
	}
	if slices.Equal(next.intermediate, state.intermediate) {
		// the hulls did not narrow the interval down
		return partition{}, false, nil
	}
	return r.decompose(ctx, next, depth+1)
}

// tryParallel evaluates all candidates concurrently. A candidate that
// succeeds or fails with an error cancels the candidates after it, and the
// outcome of the lowest such candidate is returned, as in the sequential
// search.
func (r *run) tryParallel(ctx context.Context, state partition, sets []ConsistentSet, depth int) (partition, bool, error) {
	ctxs := make([]context.Context, len(sets))
	cancels := make([]context.CancelFunc, len(sets))
	for i := range sets {
		ctxs[i], cancels[i] = context.WithCancel(ctx)
	}
	defer func() {
		for _, cancel := range cancels {
			cancel()
		}
	}()

	results := make([]partition, len(sets))
	oks := make([]bool, len(sets))
	errs := make([]error, len(sets))

	var mu sync.Mutex
	decided := len(sets)

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, set := range sets {
		g.Go(func() error {
			if err := ctxs[i].Err(); err != nil {
				errs[i] = err
				return nil
			}
			results[i], oks[i], errs[i] = r.tryCandidate(ctxs[i], state, set, depth)
			if !oks[i] && errs[i] == nil {
				return nil
			}

			mu.Lock()
			defer mu.Unlock()
			if i < decided {
				decided = i
				for j := i + 1; j < len(sets); j++ {
					cancels[j]()
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	for i := range sets {
		if errs[i] != nil {
			return partition{}, false, errs[i]
		}
		if oks[i] {
			return results[i], true, nil
		}
	}
	return partition{}, false, nil
}
