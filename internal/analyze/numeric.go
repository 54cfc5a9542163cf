package analyze

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"goeda/domain/report"
	"goeda/domain/table"
	"goeda/internal/coerce"
)

// Numeric computes summary statistics for a numeric column and requests a
// histogram and a box plot. Degenerate input (single value, constant
// column) yields zero-variance fields set to zero, never an error.
func Numeric(col table.Column) report.AnalysisResult {
	xs := numericValues(col)
	missing := col.Len() - len(xs)

	statistics := map[string]interface{}{
		"count":       len(xs),
		"missing":     missing,
		"mean":        0.0,
		"median":      0.0,
		"std_dev":     0.0,
		"min":         0.0,
		"max":         0.0,
		"q1":          0.0,
		"q3":          0.0,
		"outliers":    0,
		"skewness":    0.0,
		"kurtosis":    0.0,
		"normality_p": 0.0,
	}

	if len(xs) == 0 {
		return report.AnalysisResult{
			Column:     col.Name,
			Variant:    report.VariantNumeric,
			Statistics: statistics,
			Visuals:    []report.VizRequest{},
			Narrative:  fmt.Sprintf("%s: no numeric values to summarize", col.Name),
		}
	}

	mean, _ := stats.Mean(xs)
	median, _ := stats.Median(xs)
	stdDev, _ := stats.StandardDeviation(xs)
	min, _ := stats.Min(xs)
	max, _ := stats.Max(xs)
	q1, q3 := quartiles(xs)

	outliers := detectOutliers(xs, q1, q3)
	skewness := calculateSkewness(xs, mean, stdDev)
	kurtosis := calculateKurtosis(xs, mean, stdDev)
	normalityP := testNormality(xs, skewness, kurtosis)

	statistics["mean"] = mean
	statistics["median"] = median
	statistics["std_dev"] = stdDev
	statistics["min"] = min
	statistics["max"] = max
	statistics["q1"] = q1
	statistics["q3"] = q3
	statistics["outliers"] = len(outliers)
	statistics["skewness"] = skewness
	statistics["kurtosis"] = kurtosis
	statistics["normality_p"] = normalityP

	binEdges, binCounts := histogram(xs, min, max)

	visuals := []report.VizRequest{
		{
			Kind:      report.ChartHistogram,
			Column:    col.Name,
			Histogram: &report.HistogramData{BinEdges: binEdges, Counts: binCounts},
		},
		{
			Kind:   report.ChartBoxPlot,
			Column: col.Name,
			Box: &report.BoxData{
				Min:      min,
				Q1:       q1,
				Median:   median,
				Q3:       q3,
				Max:      max,
				Outliers: outliers,
			},
		},
	}

	narrative := fmt.Sprintf(
		"%s: %d numeric values (%d missing), mean %.4g, median %.4g, range [%.4g, %.4g], %d outliers flagged",
		col.Name, len(xs), missing, mean, median, min, max, len(outliers),
	)

	return report.AnalysisResult{
		Column:     col.Name,
		Variant:    report.VariantNumeric,
		Statistics: statistics,
		Visuals:    visuals,
		Narrative:  narrative,
	}
}

// numericValues extracts floats from a column, parsing string values the
// enforcer never cast (inference-routed columns).
func numericValues(col table.Column) []float64 {
	xs := make([]float64, 0, col.Len())
	for _, v := range col.NonMissing() {
		if v.IsNumeric() {
			xs = append(xs, v.AsFloat64())
			continue
		}
		if n, ok := coerce.TryNumeric(v.String()); ok {
			xs = append(xs, n)
		}
	}
	return xs
}

func quartiles(xs []float64) (q1, q3 float64) {
	if len(xs) == 1 {
		return xs[0], xs[0]
	}
	q1, _ = stats.Percentile(xs, 25)
	q3, _ = stats.Percentile(xs, 75)
	return q1, q3
}

// detectOutliers returns the values outside [Q1 - 1.5*IQR, Q3 + 1.5*IQR]
func detectOutliers(xs []float64, q1, q3 float64) []float64 {
	iqr := q3 - q1
	lowerBound := q1 - 1.5*iqr
	upperBound := q3 + 1.5*iqr

	outliers := []float64{}
	for _, x := range xs {
		if x < lowerBound || x > upperBound {
			outliers = append(outliers, x)
		}
	}
	return outliers
}

// histogram bins values into at most 20 equal-width bins
func histogram(xs []float64, min, max float64) ([]float64, []int) {
	numBins := 20
	if len(xs) < numBins {
		numBins = len(xs)
	}
	if numBins < 1 {
		numBins = 1
	}

	if max == min {
		// Constant column: a single bin holds everything.
		return []float64{min, max}, []int{len(xs)}
	}

	width := (max - min) / float64(numBins)
	edges := make([]float64, numBins+1)
	for i := range edges {
		edges[i] = min + width*float64(i)
	}
	edges[numBins] = max

	counts := make([]int, numBins)
	for _, x := range xs {
		idx := int((x - min) / width)
		if idx >= numBins {
			idx = numBins - 1
		}
		counts[idx]++
	}
	return edges, counts
}

// calculateSkewness computes the adjusted Fisher-Pearson coefficient
func calculateSkewness(xs []float64, mean, stdDev float64) float64 {
	if len(xs) < 3 || stdDev == 0 {
		return 0
	}

	n := float64(len(xs))
	sumCubedDeviations := 0.0
	for _, x := range xs {
		deviation := (x - mean) / stdDev
		sumCubedDeviations += deviation * deviation * deviation
	}

	skewness := sumCubedDeviations / n
	correction := math.Sqrt(n*(n-1)) / (n - 2)
	return skewness * correction
}

// calculateKurtosis computes sample total kurtosis (normal = 3)
func calculateKurtosis(xs []float64, mean, stdDev float64) float64 {
	if len(xs) < 4 || stdDev == 0 {
		return 0
	}

	n := float64(len(xs))
	sumFourthDeviations := 0.0
	for _, x := range xs {
		deviation := (x - mean) / stdDev
		sumFourthDeviations += deviation * deviation * deviation * deviation
	}

	kurtosis := sumFourthDeviations / n
	if n > 3 {
		correction := (n - 1) / ((n - 2) * (n - 3))
		kurtosis = kurtosis*correction + 6/(n+1)
	}
	return kurtosis + 3
}

// testNormality approximates a Jarque-Bera style p-value from skewness and
// excess kurtosis using a chi-squared distribution with 2 degrees of
// freedom.
func testNormality(xs []float64, skewness, kurtosis float64) float64 {
	if len(xs) < 3 {
		return 1.0
	}

	excess := kurtosis - 3
	testStat := math.Abs(skewness) + math.Abs(excess)/2

	chiDist := distuv.ChiSquared{K: 2}
	p := 1 - chiDist.CDF(testStat*testStat)
	if math.IsNaN(p) {
		return 0
	}
	return p
}
