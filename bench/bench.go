package bench

import (
	"fmt"
	"math"
	"time"
)

const (
	DefaultSampleSize      = 100
	DefaultWarmUp          = 100 * time.Millisecond
	DefaultMeasurementTime = 5 * time.Second
)

// ID names one benchmark within a group: a function name and the input size
// parameter it runs with.
type ID struct {
	Function  string
	Parameter int
}

// NewID returns the ID of function fn run with parameter param.
func NewID(fn string, param int) ID {
	return ID{Function: fn, Parameter: param}
}

// String returns the ID as "function/parameter".
func (id ID) String() string {
	return fmt.Sprintf("%s/%d", id.Function, id.Parameter)
}

// GoName returns the ID in Go benchmark name form, "function/size=parameter".
func (id ID) GoName() string {
	return fmt.Sprintf("%s/size=%d", id.Function, id.Parameter)
}

// Result is the outcome of one registered benchmark.
type Result struct {
	Group string
	ID    ID
	// Iters is the number of iterations timed per sample.
	Iters int
	// Samples holds the mean nanoseconds per iteration of every sample, in
	// the order they were taken.
	Samples []float64
	Stats   Stats
}

// Option configures a Group.
type Option func(*Group)

// WithSampleSize sets the number of samples taken per benchmark. Values below
// 2 are raised to 2, the minimum for a variance.
func WithSampleSize(n int) Option {
	return func(g *Group) { g.sampleSize = max(n, 2) }
}

// WithWarmUp sets how long each benchmark runs before sampling starts.
func WithWarmUp(d time.Duration) Option {
	return func(g *Group) { g.warmUp = d }
}

// WithMeasurementTime sets the target total time of all samples of one
// benchmark.
func WithMeasurementTime(d time.Duration) Option {
	return func(g *Group) { g.measurement = d }
}

// WithClock replaces time.Now. A clock that never advances ends the warm-up
// after a bounded number of batches.
func WithClock(now func() time.Time) Option {
	return func(g *Group) { g.now = now }
}

// Group is a named collection of benchmarks sharing one sampling
// configuration. It is not safe for concurrent use; benchmarks run one after
// the other.
type Group struct {
	name        string
	sampleSize  int
	warmUp      time.Duration
	measurement time.Duration
	now         func() time.Time
	results     []*Result
}

// NewGroup returns an empty group.
func NewGroup(name string, opts ...Option) *Group {
	g := &Group{
		name:        name,
		sampleSize:  DefaultSampleSize,
		warmUp:      DefaultWarmUp,
		measurement: DefaultMeasurementTime,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Name returns the group name.
func (g *Group) Name() string { return g.name }

// SampleSize returns the number of samples taken per benchmark.
func (g *Group) SampleSize() int { return g.sampleSize }

// Results returns the results in registration order.
func (g *Group) Results() []*Result { return g.results }

// Bench warms up fn, times it SampleSize times and appends the result to the
// group.
func (g *Group) Bench(id ID, fn func()) *Result {
	iters := g.itersPerSample(g.estimate(fn))

	samples := make([]float64, g.sampleSize)
	for i := range samples {
		samples[i] = float64(g.run(fn, iters).Nanoseconds()) / float64(iters)
	}

	r := &Result{
		Group:   g.name,
		ID:      id,
		Iters:   iters,
		Samples: samples,
		Stats:   Summarize(samples),
	}
	g.results = append(g.results, r)
	return r
}

// maxIdleBatch is the largest warm-up batch run while the clock has not
// advanced at all; past it the clock is taken to be stopped.
const maxIdleBatch = 1 << 20

// estimate runs fn in doubling batches until the warm-up time has elapsed
// and returns the observed nanoseconds per iteration.
func (g *Group) estimate(fn func()) float64 {
	var (
		total time.Duration
		n     int
	)
	for iters := 1; ; iters *= 2 {
		total += g.run(fn, iters)
		n += iters
		if total >= g.warmUp || iters >= 1<<30 || (total == 0 && iters >= maxIdleBatch) {
			break
		}
	}
	return float64(total.Nanoseconds()) / float64(n)
}

func (g *Group) itersPerSample(perIter float64) int {
	target := float64(g.measurement.Nanoseconds()) / float64(g.sampleSize)
	if perIter <= 0 {
		perIter = 1
	}
	iters := math.Round(target / perIter)
	if iters < 1 || math.IsNaN(iters) {
		return 1
	}
	return int(min(iters, 1<<30))
}

func (g *Group) run(fn func(), iters int) time.Duration {
	start := g.now()
	for range iters {
		fn()
	}
	return g.now().Sub(start)
}
