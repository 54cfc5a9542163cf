package report

import (
	"time"

	"goeda/domain/core"
	"goeda/domain/schema"
)

// Variant is the analysis category a column is routed to
type Variant string

const (
	VariantNumeric     Variant = "numeric"
	VariantCategorical Variant = "categorical"
	VariantDatetime    Variant = "datetime"
	VariantText        Variant = "text"
	VariantMissing     Variant = "missing"
)

// OutcomeStatus records what schema enforcement did to one column
type OutcomeStatus string

const (
	// StatusCastOK means the declared cast succeeded for at least one value
	StatusCastOK OutcomeStatus = "cast_ok"
	// StatusCastFailed means no value survived the declared cast
	StatusCastFailed OutcomeStatus = "cast_failed"
	// StatusLeftAsIs means the column was passed through untouched
	StatusLeftAsIs OutcomeStatus = "left_as_is"
	// StatusInferred means no schema entry existed and the type was inferred
	StatusInferred OutcomeStatus = "inferred"
	// StatusUnmatched means the schema declared a column the dataset lacks
	StatusUnmatched OutcomeStatus = "unmatched"
)

// EnforcementOutcome is the per-column record of a schema enforcement pass.
// Every declared column and every dataset column produces exactly one.
type EnforcementOutcome struct {
	Column      string           `json:"column"`
	Declared    schema.FieldType `json:"declared,omitempty"` // empty when no schema entry
	Resolved    schema.FieldType `json:"resolved,omitempty"` // type the column carries after the pass
	Status      OutcomeStatus    `json:"status"`
	Reason      string           `json:"reason,omitempty"`
	Missing     int              `json:"missing"`       // missing values in the column after the pass
	OutOfSet    int              `json:"out_of_set"`    // categorical values outside the allowed set
	OutOfBounds int              `json:"out_of_bounds"` // numeric values outside declared bounds
}

// EnforcementReport aggregates the outcomes of one enforcement pass,
// dataset columns first in dataset order, unmatched schema entries last.
type EnforcementReport struct {
	SchemaSource string               `json:"schema_source"`
	Outcomes     []EnforcementOutcome `json:"outcomes"`
}

// Outcome returns the outcome recorded for a column, if any
func (r *EnforcementReport) Outcome(column string) (EnforcementOutcome, bool) {
	for _, o := range r.Outcomes {
		if o.Column == column {
			return o, true
		}
	}
	return EnforcementOutcome{}, false
}

// ChartKind names a visualization an external renderer can draw
type ChartKind string

const (
	ChartHistogram ChartKind = "histogram"
	ChartBoxPlot   ChartKind = "box_plot"
	ChartBar       ChartKind = "bar"
	ChartTimeTrend ChartKind = "time_trend"
	ChartWordCloud ChartKind = "word_cloud"
)

// VizRequest names a chart kind and carries the minimal data needed to
// draw it. Rendering is left to the consumer; the engine never touches
// pixels or files.
type VizRequest struct {
	Kind      ChartKind      `json:"kind"`
	Column    string         `json:"column"`
	Histogram *HistogramData `json:"histogram,omitempty"`
	Box       *BoxData       `json:"box,omitempty"`
	Bar       *BarData       `json:"bar,omitempty"`
	Trend     *TrendData     `json:"trend,omitempty"`
	Cloud     *CloudData     `json:"cloud,omitempty"`
}

// HistogramData carries bin edges and per-bin counts
type HistogramData struct {
	BinEdges []float64 `json:"bin_edges"` // len = len(Counts)+1
	Counts   []int     `json:"counts"`
}

// BoxData carries the five-number summary plus outlier values
type BoxData struct {
	Min      float64   `json:"min"`
	Q1       float64   `json:"q1"`
	Median   float64   `json:"median"`
	Q3       float64   `json:"q3"`
	Max      float64   `json:"max"`
	Outliers []float64 `json:"outliers"`
}

// CategoryCount is one entry of an ordered frequency table
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// BarData carries ordered labels and their counts
type BarData struct {
	Labels []string `json:"labels"`
	Counts []int    `json:"counts"`
}

// TrendData carries per-bucket record counts over time
type TrendData struct {
	Buckets []time.Time `json:"buckets"`
	Counts  []int       `json:"counts"`
}

// CloudData carries weighted terms for a word cloud
type CloudData struct {
	Terms   []string `json:"terms"`
	Weights []int    `json:"weights"`
}

// AnalysisResult is the uniform record every analyzer produces for one
// column. Statistics carries a fixed key set per variant: the same keys
// appear for every column of that variant, degenerate input included.
type AnalysisResult struct {
	Column     string                 `json:"column"`
	Variant    Variant                `json:"variant"`
	Statistics map[string]interface{} `json:"statistics"`
	Visuals    []VizRequest           `json:"visuals"`
	Narrative  string                 `json:"narrative"`
}

// PageKind discriminates report pages
type PageKind string

const (
	PageTitle    PageKind = "title"
	PageSchema   PageKind = "schema"
	PageAnalysis PageKind = "analysis"
)

// TitleContent is the first page of every report
type TitleContent struct {
	Dataset      string                  `json:"dataset"`
	Rows         int                     `json:"rows"`
	Columns      int                     `json:"columns"`
	SchemaSource string                  `json:"schema_source"`
	Fingerprint  core.DatasetFingerprint `json:"fingerprint"`
	GeneratedAt  core.Timestamp          `json:"generated_at"`
}

// Page is one page of the report document. Exactly one of the content
// pointers is set, matching Kind.
type Page struct {
	Kind     PageKind           `json:"kind"`
	Title    *TitleContent      `json:"title,omitempty"`
	Schema   *EnforcementReport `json:"schema,omitempty"`
	Analysis *AnalysisResult    `json:"analysis,omitempty"`
}

// Document is the ordered page sequence handed to an external exporter:
// title page, schema enforcement page, then one analysis page per column
// in dataset order. Page count is always 2 + len(analysis pages).
type Document struct {
	ID        core.DocumentID `json:"id"`
	CreatedAt core.Timestamp  `json:"created_at"`
	Pages     []Page          `json:"pages"`
}

// AnalysisPages returns the analysis pages in order
func (d *Document) AnalysisPages() []*AnalysisResult {
	var out []*AnalysisResult
	for _, p := range d.Pages {
		if p.Kind == PageAnalysis && p.Analysis != nil {
			out = append(out, p.Analysis)
		}
	}
	return out
}
