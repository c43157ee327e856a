package report

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"

	"go.dw1.io/regexbench/bench"
)

const indent = "                        "

// Text writes a criterion-style summary of every result:
//
//	capturing regexes that succeed/normal/500
//	                        time:   [1.0312 µs 1.0340 µs 1.0371 µs]
//	                        mean:   1.0402 µs ± 41.310 ns  (variance 1706.5 ns²)
//	Found 83 outliers among 10000 measurements (0.83%)
//	  71 (0.71%) high mild
//	  12 (0.12%) high severe
//
// The time interval is the median with its 95% confidence bounds.
func Text(w io.Writer, groups []*bench.Group, meta Meta) error {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "payload: %d bytes, delimiter %q, seed %d, fingerprint %s\n",
		meta.Size, meta.Delimiter, meta.Seed, meta.Fingerprint)

	for _, g := range groups {
		for _, r := range g.Results() {
			buf.WriteByte('\n')
			writeResult(&buf, r)
		}
	}

	_, err := w.Write(buf.Bytes())
	return err
}

func writeResult(buf *bytes.Buffer, r *bench.Result) {
	st := r.Stats

	fmt.Fprintf(buf, "%s/%s\n", r.Group, r.ID)
	fmt.Fprintf(buf, "%stime:   [%s %s %s]\n", indent, formatNs(st.Lo), formatNs(st.Median), formatNs(st.Hi))
	fmt.Fprintf(buf, "%smean:   %s ± %s  (variance %s ns²)\n", indent,
		formatNs(st.Mean), formatNs(st.StdDev), strconv.FormatFloat(st.Variance, 'g', 5, 64))

	o := st.Outliers
	if o.Total() == 0 {
		return
	}

	fmt.Fprintf(buf, "Found %d outliers among %d measurements (%s)\n", o.Total(), st.N, percent(o.Total(), st.N))
	for _, c := range []struct {
		n    int
		kind string
	}{
		{o.LowSevere, "low severe"},
		{o.LowMild, "low mild"},
		{o.HighMild, "high mild"},
		{o.HighSevere, "high severe"},
	} {
		if c.n > 0 {
			fmt.Fprintf(buf, "  %d (%s) %s\n", c.n, percent(c.n, st.N), c.kind)
		}
	}
}

func percent(n, total int) string {
	return strconv.FormatFloat(100*float64(n)/float64(total), 'f', 2, 64) + "%"
}

// formatNs formats a duration given in nanoseconds with five significant
// digits and a unit from ps to s.
func formatNs(ns float64) string {
	units := []struct {
		scale float64
		name  string
	}{
		{1e9, "s"},
		{1e6, "ms"},
		{1e3, "µs"},
		{1, "ns"},
		{1e-3, "ps"},
	}

	for _, u := range units {
		if math.Abs(ns) >= u.scale || u.name == "ps" {
			return sigFigs(ns/u.scale) + " " + u.name
		}
	}
	panic("unreachable")
}

// sigFigs formats v with five significant digits, keeping trailing zeros.
func sigFigs(v float64) string {
	a := math.Abs(v)
	switch {
	case a >= 1000:
		return strconv.FormatFloat(v, 'f', 1, 64)
	case a >= 100:
		return strconv.FormatFloat(v, 'f', 2, 64)
	case a >= 10:
		return strconv.FormatFloat(v, 'f', 3, 64)
	default:
		return strconv.FormatFloat(v, 'f', 4, 64)
	}
}
