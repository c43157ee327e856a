package bench

import (
	"math"
	"slices"

	"golang.org/x/perf/benchmath"
)

// Confidence is the confidence level of the reported median interval.
const Confidence = 0.95

// Stats summarizes the samples of one benchmark. Times are nanoseconds per
// iteration.
type Stats struct {
	N        int
	Mean     float64
	Variance float64
	StdDev   float64
	Min      float64
	Max      float64

	// Median and its confidence interval [Lo, Hi]. A bound the samples are
	// too few to estimate is replaced by Min or Max.
	Median float64
	Lo     float64
	Hi     float64

	Outliers Outliers
}

// Outliers counts samples outside Tukey's fences: mild beyond 1.5 IQR from
// the quartiles, severe beyond 3 IQR. Severe outliers are not counted as mild.
type Outliers struct {
	LowSevere  int
	LowMild    int
	HighMild   int
	HighSevere int
}

// Total returns the number of outliers of any kind.
func (o Outliers) Total() int {
	return o.LowSevere + o.LowMild + o.HighMild + o.HighSevere
}

// Summarize computes the statistics of samples. samples is not modified.
func Summarize(samples []float64) Stats {
	n := len(samples)
	if n == 0 {
		return Stats{}
	}

	sorted := slices.Clone(samples)
	slices.Sort(sorted)

	st := Stats{N: n, Min: sorted[0], Max: sorted[n-1]}

	var sum float64
	for _, v := range sorted {
		sum += v
	}
	st.Mean = sum / float64(n)

	if n > 1 {
		var sq float64
		for _, v := range sorted {
			d := v - st.Mean
			sq += d * d
		}
		st.Variance = sq / float64(n-1)
		st.StdDev = math.Sqrt(st.Variance)
	}

	summary := benchmath.AssumeNothing.Summary(benchmath.NewSample(sorted, &benchmath.DefaultThresholds), Confidence)
	st.Median, st.Lo, st.Hi = summary.Center, summary.Lo, summary.Hi
	// Below six samples the interval is unbounded on one or both sides.
	if math.IsInf(st.Lo, 0) || math.IsNaN(st.Lo) {
		st.Lo = st.Min
	}
	if math.IsInf(st.Hi, 0) || math.IsNaN(st.Hi) {
		st.Hi = st.Max
	}

	st.Outliers = classify(sorted)
	return st
}

func classify(sorted []float64) Outliers {
	q1, q3 := quantile(sorted, 0.25), quantile(sorted, 0.75)
	iqr := q3 - q1
	lowSevere, lowMild := q1-3*iqr, q1-1.5*iqr
	highMild, highSevere := q3+1.5*iqr, q3+3*iqr

	var o Outliers
	for _, v := range sorted {
		switch {
		case v < lowSevere:
			o.LowSevere++
		case v < lowMild:
			o.LowMild++
		case v > highSevere:
			o.HighSevere++
		case v > highMild:
			o.HighMild++
		}
	}
	return o
}

// quantile interpolates linearly between the closest ranks of sorted.
func quantile(sorted []float64, q float64) float64 {
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	return sorted[lo] + (pos-float64(lo))*(sorted[hi]-sorted[lo])
}
