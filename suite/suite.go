// Package suite drives the quantifier benchmarks. It compiles the six
// patterns and generates the two inputs once, then times each pattern against
// each input in four groups:
//
//	capturing regexes that succeed       FindStringSubmatch on the quoted payload
//	capturing regexes that fail          FindStringSubmatch on the unterminated payload
//	non-capturing regexes that succeed   MatchString on the quoted payload
//	non-capturing regexes that fail      MatchString on the unterminated payload
//
// Each group holds one benchmark per quantifier variant: normal, possessive
// and non-greedy. The non-capturing groups are the control: they isolate the
// cost of capture extraction from the cost of the quantifier strategy.
package suite

import (
	"context"
	"fmt"
	"math/rand/v2"

	"go.dw1.io/regexbench/bench"
	"go.dw1.io/regexbench/config"
	"go.dw1.io/regexbench/fixture"
	"go.dw1.io/regexbench/pattern"
	"go.dw1.io/regexbench/regexp"
)

// GroupSpec defines one measurement group.
type GroupSpec struct {
	Name     string
	Family   pattern.Family
	Succeeds bool
}

// Groups lists the measurement groups in execution order.
var Groups = [...]GroupSpec{
	{Name: "capturing regexes that succeed", Family: pattern.Capturing, Succeeds: true},
	{Name: "capturing regexes that fail", Family: pattern.Capturing, Succeeds: false},
	{Name: "non-capturing regexes that succeed", Family: pattern.NonCapturing, Succeeds: true},
	{Name: "non-capturing regexes that fail", Family: pattern.NonCapturing, Succeeds: false},
}

// Results of the timed calls are stored here so they cannot be optimized
// away.
var (
	sinkCaptures []string
	sinkMatched  bool
)

// Driver holds the compiled patterns and fixtures of one run. They are
// read-only once New returns.
type Driver struct {
	cfg      config.Config
	seed     uint64
	patterns *pattern.Set
	fixtures *fixture.Fixtures
	filter   *regexp.Regexp
}

// New compiles the patterns and builds the fixtures described by cfg. A
// pattern that fails to compile is reported by name.
func New(cfg config.Config) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	d := &Driver{cfg: cfg, seed: cfg.Seed}
	if d.seed == 0 {
		d.seed = rand.Uint64() | 1
	}

	var err error
	if d.patterns, err = pattern.Compile(cfg.Delimiter); err != nil {
		return nil, fmt.Errorf("suite: %w", err)
	}
	if d.fixtures, err = fixture.NewSeeded(d.seed, cfg.Size, cfg.Delimiter); err != nil {
		return nil, fmt.Errorf("suite: %w", err)
	}
	if cfg.Filter != "" {
		if d.filter, err = regexp.Compile(cfg.Filter); err != nil {
			return nil, fmt.Errorf("suite: filter: %w", err)
		}
	}

	return d, nil
}

// MustNew is like New but panics on error. The suite cannot run without its
// patterns, so a compile failure is a programming error.
func MustNew(cfg config.Config) *Driver {
	d, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return d
}

// Config returns the validated configuration of the run.
func (d *Driver) Config() config.Config { return d.cfg }

// Seed returns the payload seed, the random one picked by New when the
// configuration left it zero.
func (d *Driver) Seed() uint64 { return d.seed }

// Patterns returns the compiled pattern set.
func (d *Driver) Patterns() *pattern.Set { return d.patterns }

// Fixtures returns the generated inputs.
func (d *Driver) Fixtures() *fixture.Fixtures { return d.fixtures }

// Input returns the fixture timed by the group: the quoted payload for groups
// that succeed, the unterminated one otherwise.
func (d *Driver) Input(gs GroupSpec) string {
	if gs.Succeeds {
		return d.fixtures.Match
	}
	return d.fixtures.NoMatch
}

// Op returns the timed operation of variant v in the group: capture
// extraction for the capturing family, a boolean match test for the control.
func (d *Driver) Op(gs GroupSpec, v pattern.Variant) func() {
	re := d.patterns.Get(gs.Family, v)
	input := d.Input(gs)

	if gs.Family == pattern.Capturing {
		return func() { sinkCaptures = re.FindStringSubmatch(input) }
	}
	return func() { sinkMatched = re.MatchString(input) }
}

// ID returns the benchmark ID of variant v.
func (d *Driver) ID(v pattern.Variant) bench.ID {
	return bench.NewID(v.String(), d.fixtures.Size())
}

// Selected reports whether the filter admits benchmark id of the group.
func (d *Driver) Selected(gs GroupSpec, id bench.ID) bool {
	return d.filter == nil || d.filter.MatchString(gs.Name+"/"+id.String())
}

// Run times every selected benchmark and returns the groups in execution
// order; groups whose benchmarks were all filtered out are omitted. observe,
// if not nil, is called after each benchmark.
//
// The context is checked between benchmarks only, never inside a timed
// region. On cancellation Run returns the groups completed so far together
// with the context error.
func (d *Driver) Run(ctx context.Context, observe func(*bench.Result)) ([]*bench.Group, error) {
	opts := []bench.Option{
		bench.WithSampleSize(d.cfg.SampleSize),
		bench.WithWarmUp(d.cfg.WarmUp),
		bench.WithMeasurementTime(d.cfg.MeasurementTime),
	}

	var groups []*bench.Group
	for _, gs := range Groups {
		g := bench.NewGroup(gs.Name, opts...)
		for _, v := range pattern.Variants {
			id := d.ID(v)
			if !d.Selected(gs, id) {
				continue
			}
			if err := ctx.Err(); err != nil {
				return appendNonEmpty(groups, g), err
			}

			r := g.Bench(id, d.Op(gs, v))
			if observe != nil {
				observe(r)
			}
		}
		groups = appendNonEmpty(groups, g)
	}

	return groups, nil
}

func appendNonEmpty(groups []*bench.Group, g *bench.Group) []*bench.Group {
	if len(g.Results()) == 0 {
		return groups
	}
	return append(groups, g)
}
