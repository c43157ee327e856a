// Package report renders the results of a suite run as a human-readable
// summary, in the Go benchmark format understood by benchstat, or as JSON.
package report

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"go.dw1.io/regexbench/bench"
	"go.dw1.io/regexbench/suite"
)

// Format selects a renderer.
type Format string

const (
	FormatText     Format = "text"
	FormatBenchFmt Format = "benchfmt"
	FormatJSON     Format = "json"
)

// Formats lists the supported formats.
var Formats = []Format{FormatText, FormatBenchFmt, FormatJSON}

// ParseFormat returns the Format named s.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == strings.ToLower(s) {
			return f, nil
		}
	}
	return "", fmt.Errorf("report: unknown format %q", s)
}

// Meta describes the inputs of a run.
type Meta struct {
	Package     string `json:"package"`
	GOOS        string `json:"goos"`
	GOARCH      string `json:"goarch"`
	Size        int    `json:"size"`
	SampleSize  int    `json:"sample_size"`
	Delimiter   string `json:"delimiter"`
	Seed        uint64 `json:"seed"`
	Fingerprint string `json:"fingerprint"`
}

// NewMeta describes the run of d.
func NewMeta(d *suite.Driver) Meta {
	return Meta{
		Package:     "go.dw1.io/regexbench/suite",
		GOOS:        runtime.GOOS,
		GOARCH:      runtime.GOARCH,
		Size:        d.Fixtures().Size(),
		SampleSize:  d.Config().SampleSize,
		Delimiter:   string(d.Patterns().Delimiter()),
		Seed:        d.Seed(),
		Fingerprint: fmt.Sprintf("%016x", d.Fixtures().Fingerprint()),
	}
}

// Write renders groups in format f.
func Write(w io.Writer, f Format, groups []*bench.Group, meta Meta) error {
	switch f {
	case FormatText:
		return Text(w, groups, meta)
	case FormatBenchFmt:
		return BenchFmt(w, groups, meta)
	case FormatJSON:
		return JSON(w, groups, meta)
	default:
		return fmt.Errorf("report: unknown format %q", f)
	}
}
