package config

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestDefault(t *testing.T) {
	c := Default()
	if c.Size != 500 || c.SampleSize != 10_000 || c.Delimiter != '\'' || c.Seed != 0 {
		t.Fatalf("Default() = %+v", c)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("Default().Validate() returned error: %v", err)
	}
}

func TestFromEnv(t *testing.T) {
	env := map[string]string{
		EnvSize:            "1024",
		EnvSamples:         " 200 ",
		EnvDelimiter:       `"`,
		EnvSeed:            "42",
		EnvWarmUp:          "10ms",
		EnvMeasurementTime: "2s",
		EnvFilter:          "possessive",
	}

	got, err := FromEnv(Default(), lookupFrom(env))
	if err != nil {
		t.Fatalf("FromEnv returned error: %v", err)
	}

	want := Config{
		Size:            1024,
		SampleSize:      200,
		Delimiter:       '"',
		Seed:            42,
		WarmUp:          10 * time.Millisecond,
		MeasurementTime: 2 * time.Second,
		Filter:          "possessive",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("FromEnv (-want +got):\n%s", diff)
	}
}

func TestFromEnvKeepsUnset(t *testing.T) {
	got, err := FromEnv(Default(), lookupFrom(map[string]string{EnvSize: "  "}))
	if err != nil {
		t.Fatalf("FromEnv returned error: %v", err)
	}
	if diff := cmp.Diff(Default(), got); diff != "" {
		t.Fatalf("FromEnv with blank values (-want +got):\n%s", diff)
	}
}

func TestFromEnvErrors(t *testing.T) {
	env := map[string]string{
		EnvSize:      "-5",
		EnvSamples:   "many",
		EnvDelimiter: "''",
		EnvSeed:      "x",
		EnvWarmUp:    "soon",
	}

	_, err := FromEnv(Default(), lookupFrom(env))
	if err == nil {
		t.Fatalf("FromEnv: expected error")
	}
	for _, key := range []string{EnvSize, EnvSamples, EnvDelimiter, EnvSeed, EnvWarmUp} {
		if !strings.Contains(err.Error(), key) {
			t.Fatalf("error %q does not mention %s", err, key)
		}
	}
}

func TestValidate(t *testing.T) {
	c := Config{
		Size:            0,
		SampleSize:      1,
		Delimiter:       'a',
		WarmUp:          0,
		MeasurementTime: -time.Second,
		Filter:          "(",
	}

	err := c.Validate()
	if err == nil {
		t.Fatalf("Validate: expected error")
	}
	for _, part := range []string{"size", "sample size", "delimiter", "warm-up", "measurement time", "filter"} {
		if !strings.Contains(err.Error(), part) {
			t.Fatalf("error %q does not mention %s", err, part)
		}
	}
}

func TestValidDelimiter(t *testing.T) {
	for _, r := range []rune{'\'', '"', '|', '^', '\\', '#', '`'} {
		if !validDelimiter(r) {
			t.Fatalf("validDelimiter(%q) = false", r)
		}
	}
	for _, r := range []rune{'a', 'Z', '5', ' ', '\n', '«', 'é'} {
		if validDelimiter(r) {
			t.Fatalf("validDelimiter(%q) = true", r)
		}
	}
}

func TestParseDelimiter(t *testing.T) {
	if r, err := ParseDelimiter("|"); err != nil || r != '|' {
		t.Fatalf("ParseDelimiter(%q) = %q, %v", "|", r, err)
	}
	for _, s := range []string{"", "ab"} {
		if _, err := ParseDelimiter(s); err == nil {
			t.Fatalf("ParseDelimiter(%q): expected error", s)
		}
	}
}
