package analyze

import (
	"fmt"
	"sort"
	"time"

	"goeda/domain/report"
	"goeda/domain/table"
	"goeda/internal/coerce"
)

var weekdayOrder = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

var monthOrder = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Datetime computes the time range and period distribution of a datetime
// column and requests a time-trend line chart. Granularity picks the
// period bucket: "weekday" or "month".
func Datetime(col table.Column, granularity string) report.AnalysisResult {
	times := timestampValues(col)
	missing := col.Len() - len(times)

	statistics := map[string]interface{}{
		"count":          len(times),
		"missing":        missing,
		"min":            time.Time{},
		"max":            time.Time{},
		"span_days":      0.0,
		"busiest_period": "N/A",
		"period_counts":  map[string]int{},
	}

	if len(times) == 0 {
		return report.AnalysisResult{
			Column:     col.Name,
			Variant:    report.VariantDatetime,
			Statistics: statistics,
			Visuals:    []report.VizRequest{},
			Narrative:  fmt.Sprintf("%s: no parseable dates", col.Name),
		}
	}

	minT, maxT := times[0], times[0]
	for _, t := range times[1:] {
		if t.Before(minT) {
			minT = t
		}
		if t.After(maxT) {
			maxT = t
		}
	}
	spanDays := maxT.Sub(minT).Hours() / 24

	periodCounts, busiest := bucketPeriods(times, granularity)

	statistics["min"] = minT
	statistics["max"] = maxT
	statistics["span_days"] = spanDays
	statistics["busiest_period"] = busiest
	statistics["period_counts"] = periodCounts

	buckets, counts := dailyTrend(times)
	visuals := []report.VizRequest{
		{
			Kind:   report.ChartTimeTrend,
			Column: col.Name,
			Trend:  &report.TrendData{Buckets: buckets, Counts: counts},
		},
	}

	narrative := fmt.Sprintf(
		"%s: %d dates (%d missing) from %s to %s spanning %.1f days, busiest %s: %s",
		col.Name, len(times), missing,
		minT.Format("2006-01-02"), maxT.Format("2006-01-02"),
		spanDays, granularity, busiest,
	)

	return report.AnalysisResult{
		Column:     col.Name,
		Variant:    report.VariantDatetime,
		Statistics: statistics,
		Visuals:    visuals,
		Narrative:  narrative,
	}
}

// timestampValues extracts times from a column, parsing string values the
// enforcer never cast.
func timestampValues(col table.Column) []time.Time {
	times := make([]time.Time, 0, col.Len())
	for _, v := range col.NonMissing() {
		if v.IsTimestamp() {
			times = append(times, v.AsTime())
			continue
		}
		if t, ok := coerce.TryDatetime(v.String(), ""); ok {
			times = append(times, t)
		}
	}
	return times
}

// bucketPeriods counts values per weekday or month and returns the busiest
// bucket, ties broken by calendar order.
func bucketPeriods(times []time.Time, granularity string) (map[string]int, string) {
	counts := make(map[string]int)
	for _, t := range times {
		switch granularity {
		case "month":
			counts[t.Month().String()]++
		default:
			counts[t.Weekday().String()]++
		}
	}

	order := weekdayOrder
	if granularity == "month" {
		order = monthOrder
	}

	busiest := "N/A"
	best := 0
	for _, period := range order {
		if counts[period] > best {
			best = counts[period]
			busiest = period
		}
	}
	return counts, busiest
}

// dailyTrend counts records per calendar day, ordered by day
func dailyTrend(times []time.Time) ([]time.Time, []int) {
	byDay := make(map[time.Time]int)
	for _, t := range times {
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		byDay[day]++
	}

	buckets := make([]time.Time, 0, len(byDay))
	for day := range byDay {
		buckets = append(buckets, day)
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Before(buckets[j]) })

	counts := make([]int, len(buckets))
	for i, day := range buckets {
		counts[i] = byDay[day]
	}
	return buckets, counts
}
