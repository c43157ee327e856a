package report

import (
	"fmt"
	"io"
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/perf/benchfmt"

	"go.dw1.io/regexbench/bench"
)

// BenchFmt writes every sample as one line of the Go benchmark format, named
// the way "go test -bench" names the suite's sub-benchmarks:
//
//	BenchmarkRegex/capturing_regexes_that_succeed/normal/size=500-8  3912  1034.2 ns/op
//
// The run metadata goes into file configuration keys, so the output feeds
// benchstat directly and runs with different seeds stay distinguishable.
func BenchFmt(w io.Writer, groups []*bench.Group, meta Meta) error {
	bw := benchfmt.NewWriter(w)

	cfg := []benchfmt.Config{
		{Key: "goos", Value: []byte(meta.GOOS), File: true},
		{Key: "goarch", Value: []byte(meta.GOARCH), File: true},
		{Key: "pkg", Value: []byte(meta.Package), File: true},
		{Key: "size", Value: []byte(strconv.Itoa(meta.Size)), File: true},
		{Key: "seed", Value: []byte(strconv.FormatUint(meta.Seed, 10)), File: true},
		{Key: "fingerprint", Value: []byte(meta.Fingerprint), File: true},
	}

	procs := runtime.GOMAXPROCS(0)
	for _, g := range groups {
		for _, r := range g.Results() {
			name := benchfmt.Name(fmt.Sprintf("Regex/%s/%s-%d", subName(g.Name()), r.ID.GoName(), procs))
			for _, ns := range r.Samples {
				res := &benchfmt.Result{
					Config: cfg,
					Name:   name,
					Iters:  r.Iters,
					Values: []benchfmt.Value{{Value: ns, Unit: "ns/op"}},
				}
				if err := bw.Write(res); err != nil {
					return fmt.Errorf("report: %w", err)
				}
			}
		}
	}

	return nil
}

// subName rewrites a group name the way testing.B.Run does for sub-benchmark
// names.
func subName(name string) string {
	return strings.ReplaceAll(name, " ", "_")
}
