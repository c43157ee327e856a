// Package bench is a small sampling harness in the style of criterion.rs.
//
// A [Group] has a name and a sample count. Each function registered with
// [Group.Bench] is warmed up, then timed SampleSize times; every sample runs
// the function a fixed number of iterations chosen from the warm-up estimate,
// and records the mean time per iteration. [Summarize] turns the samples into
// [Stats]: mean, variance, a median with its confidence interval computed by
// [benchmath], and outliers classified with Tukey's fences.
//
// Unlike testing.B, the sample count is explicit and every sample is kept, so
// the distribution, not only the mean, can be reported.
//
// [benchmath]: https://pkg.go.dev/golang.org/x/perf/benchmath
package bench
