// Package config holds the settings of a benchmark run: defaults equal to the
// fixed constants of the suite, optionally overridden from the environment and
// then from command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/spf13/cast"
	"go.dw1.io/safemath"

	"go.dw1.io/regexbench/bench"
	"go.dw1.io/regexbench/regexp"
)

const (
	DefaultSize       = 500
	DefaultSampleSize = 10_000
	DefaultDelimiter  = '\''
)

// Environment variables read by FromEnv.
const (
	EnvSize            = "REGEXBENCH_SIZE"
	EnvSamples         = "REGEXBENCH_SAMPLES"
	EnvDelimiter       = "REGEXBENCH_DELIMITER"
	EnvSeed            = "REGEXBENCH_SEED"
	EnvWarmUp          = "REGEXBENCH_WARMUP"
	EnvMeasurementTime = "REGEXBENCH_MEASUREMENT_TIME"
	EnvFilter          = "REGEXBENCH_FILTER"
)

// Config describes one run of the suite.
type Config struct {
	// Size is the payload length of the input fixtures.
	Size int
	// SampleSize is the number of timed samples per benchmark.
	SampleSize int
	// Delimiter quotes the payload.
	Delimiter rune
	// Seed seeds the payload generator. Zero picks a random seed.
	Seed uint64
	// WarmUp is how long each benchmark runs before sampling.
	WarmUp time.Duration
	// MeasurementTime is the target duration of all samples of a benchmark.
	MeasurementTime time.Duration
	// Filter, if set, is a regular expression selecting benchmarks by their
	// "group/variant/size" name.
	Filter string
}

// Default returns the configuration of the reference run.
func Default() Config {
	return Config{
		Size:            DefaultSize,
		SampleSize:      DefaultSampleSize,
		Delimiter:       DefaultDelimiter,
		WarmUp:          bench.DefaultWarmUp,
		MeasurementTime: bench.DefaultMeasurementTime,
	}
}

// FromEnv overlays the variables found by lookup on c. lookup has the
// signature of os.LookupEnv.
func FromEnv(c Config, lookup func(string) (string, bool)) (Config, error) {
	var errs []error

	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get(EnvSize); ok {
		n, err := toInt(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvSize, err))
		}
		c.Size = n
	}
	if v, ok := get(EnvSamples); ok {
		n, err := toInt(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvSamples, err))
		}
		c.SampleSize = n
	}
	if v, ok := get(EnvDelimiter); ok {
		r, err := ParseDelimiter(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvDelimiter, err))
		}
		c.Delimiter = r
	}
	if v, ok := get(EnvSeed); ok {
		seed, err := cast.ToUint64E(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvSeed, err))
		}
		c.Seed = seed
	}
	if v, ok := get(EnvWarmUp); ok {
		d, err := cast.ToDurationE(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvWarmUp, err))
		}
		c.WarmUp = d
	}
	if v, ok := get(EnvMeasurementTime); ok {
		d, err := cast.ToDurationE(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvMeasurementTime, err))
		}
		c.MeasurementTime = d
	}
	if v, ok := get(EnvFilter); ok {
		c.Filter = v
	}

	if err := errors.Join(errs...); err != nil {
		return c, fmt.Errorf("config: %w", err)
	}
	return c, nil
}

// toInt parses a non-negative integer that fits in an int.
func toInt(v string) (int, error) {
	u, err := cast.ToUint64E(v)
	if err != nil {
		return 0, err
	}
	return safemath.ConvertAny[int](u)
}

// ParseDelimiter parses a delimiter given as a one-character string.
func ParseDelimiter(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("delimiter %q must be a single character", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// Validate reports every invalid field of c.
func (c Config) Validate() error {
	var errs []error

	if c.Size < 1 {
		errs = append(errs, fmt.Errorf("size must be at least 1, got %d", c.Size))
	}
	if c.SampleSize < 2 {
		errs = append(errs, fmt.Errorf("sample size must be at least 2, got %d", c.SampleSize))
	}
	if !validDelimiter(c.Delimiter) {
		errs = append(errs, fmt.Errorf("delimiter %q must be ASCII punctuation or a symbol", c.Delimiter))
	}
	if c.WarmUp <= 0 {
		errs = append(errs, fmt.Errorf("warm-up must be positive, got %s", c.WarmUp))
	}
	if c.MeasurementTime <= 0 {
		errs = append(errs, fmt.Errorf("measurement time must be positive, got %s", c.MeasurementTime))
	}
	if c.Filter != "" {
		if _, err := regexp.Compile(c.Filter); err != nil {
			errs = append(errs, fmt.Errorf("filter: %w", err))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func validDelimiter(r rune) bool {
	return r <= unicode.MaxASCII && (unicode.IsPunct(r) || unicode.IsSymbol(r))
}
