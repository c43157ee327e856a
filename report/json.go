package report

import (
	"fmt"
	"io"

	"go.dw1.io/regexbench/bench"
	"go.dw1.io/regexbench/json"
)

// Document is the JSON report. Times are nanoseconds per iteration; raw
// samples are left out.
type Document struct {
	Meta   Meta        `json:"meta"`
	Groups []GroupJSON `json:"groups"`
}

type GroupJSON struct {
	Name       string       `json:"name"`
	SampleSize int          `json:"sample_size"`
	Results    []ResultJSON `json:"results"`
}

type ResultJSON struct {
	ID       string       `json:"id"`
	Function string       `json:"function"`
	Size     int          `json:"size"`
	Iters    int          `json:"iters"`
	Stats    StatsJSON    `json:"stats"`
	Outliers OutliersJSON `json:"outliers"`
}

type StatsJSON struct {
	N        int     `json:"n"`
	Mean     float64 `json:"mean_ns"`
	Variance float64 `json:"variance_ns2"`
	StdDev   float64 `json:"stddev_ns"`
	Min      float64 `json:"min_ns"`
	Max      float64 `json:"max_ns"`
	Median   float64 `json:"median_ns"`
	Lo       float64 `json:"median_lo_ns"`
	Hi       float64 `json:"median_hi_ns"`
}

type OutliersJSON struct {
	LowSevere  int `json:"low_severe"`
	LowMild    int `json:"low_mild"`
	HighMild   int `json:"high_mild"`
	HighSevere int `json:"high_severe"`
}

// NewDocument converts groups into a Document.
func NewDocument(groups []*bench.Group, meta Meta) Document {
	doc := Document{Meta: meta, Groups: make([]GroupJSON, 0, len(groups))}

	for _, g := range groups {
		gj := GroupJSON{Name: g.Name(), SampleSize: g.SampleSize()}
		for _, r := range g.Results() {
			st := r.Stats
			gj.Results = append(gj.Results, ResultJSON{
				ID:       r.ID.String(),
				Function: r.ID.Function,
				Size:     r.ID.Parameter,
				Iters:    r.Iters,
				Stats: StatsJSON{
					N:        st.N,
					Mean:     st.Mean,
					Variance: st.Variance,
					StdDev:   st.StdDev,
					Min:      st.Min,
					Max:      st.Max,
					Median:   st.Median,
					Lo:       st.Lo,
					Hi:       st.Hi,
				},
				Outliers: OutliersJSON(st.Outliers),
			})
		}
		doc.Groups = append(doc.Groups, gj)
	}

	return doc
}

// JSON writes the Document of groups as indented JSON.
func JSON(w io.Writer, groups []*bench.Group, meta Meta) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(NewDocument(groups, meta)); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	return nil
}
