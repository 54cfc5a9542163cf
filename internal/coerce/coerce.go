package coerce

import (
	"math"
	"strconv"
	"strings"
	"time"

	"goeda/domain/table"
)

// dateFormats are tried in order when no format is declared
var dateFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
	"2006/01/02",
	"02-Jan-2006",
}

// DateFormats returns the auto-detection format list, declared format first
func DateFormats(declared string) []string {
	if declared == "" {
		return dateFormats
	}
	out := make([]string, 0, len(dateFormats)+1)
	out = append(out, declared)
	out = append(out, dateFormats...)
	return out
}

// TryNumeric attempts to parse a string as a number with tolerant rules:
// currency symbols, thousands separators, percent signs, and parenthesized
// negatives are all accepted.
func TryNumeric(strVal string) (float64, bool) {
	cleanVal := strings.TrimSpace(strVal)
	if cleanVal == "" {
		return 0, false
	}

	// Parentheses mark negative numbers: (123) -> -123
	isNegative := false
	if strings.HasPrefix(cleanVal, "(") && strings.HasSuffix(cleanVal, ")") {
		cleanVal = strings.TrimPrefix(cleanVal, "(")
		cleanVal = strings.TrimSuffix(cleanVal, ")")
		isNegative = true
	}

	for _, symbol := range []string{"$", "€", "£", "¥", "%"} {
		cleanVal = strings.ReplaceAll(cleanVal, symbol, "")
	}
	cleanVal = strings.TrimSpace(cleanVal)

	// Commas and spaces act as thousands separators
	cleanVal = strings.ReplaceAll(cleanVal, ",", "")
	cleanVal = strings.ReplaceAll(cleanVal, " ", "")

	if isNegative {
		cleanVal = "-" + cleanVal
	}

	val, err := strconv.ParseFloat(cleanVal, 64)
	if err != nil || math.IsInf(val, 0) || math.IsNaN(val) {
		return 0, false
	}
	return val, true
}

// TryBoolean attempts to parse a string as a boolean token
func TryBoolean(strVal string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(strVal)) {
	case "true", "1", "yes", "y", "on":
		return true, true
	case "false", "0", "no", "n", "off":
		return false, true
	}
	return false, false
}

// TryDatetime attempts to parse a string against the declared format, then
// the auto-detection list
func TryDatetime(strVal, declared string) (time.Time, bool) {
	strVal = strings.TrimSpace(strVal)
	if strVal == "" {
		return time.Time{}, false
	}
	for _, format := range DateFormats(declared) {
		if t, err := time.Parse(format, strVal); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// NumericRatio returns the fraction of non-missing values that are numeric
// or numeric-parseable. Returns 0 when the column carries no values.
func NumericRatio(col table.Column) float64 {
	values := col.NonMissing()
	if len(values) == 0 {
		return 0
	}
	hits := 0
	for _, v := range values {
		if v.IsNumeric() {
			hits++
			continue
		}
		if _, ok := TryNumeric(v.String()); ok {
			hits++
		}
	}
	return float64(hits) / float64(len(values))
}

// DatetimeRatio returns the fraction of non-missing values that are
// timestamps or parse against the known date formats
func DatetimeRatio(col table.Column) float64 {
	values := col.NonMissing()
	if len(values) == 0 {
		return 0
	}
	hits := 0
	for _, v := range values {
		if v.IsTimestamp() {
			hits++
			continue
		}
		// Numeric values are never dates here; Unix-epoch detection would
		// swallow ordinary integer columns.
		if v.IsNumeric() {
			continue
		}
		if _, ok := TryDatetime(v.String(), ""); ok {
			hits++
		}
	}
	return float64(hits) / float64(len(values))
}

// CardinalityRatio returns unique non-missing values divided by the row
// count. Returns 1 for empty columns so nothing degenerate reads as
// categorical.
func CardinalityRatio(col table.Column) float64 {
	if col.Len() == 0 {
		return 1
	}
	unique := make(map[string]struct{})
	for _, v := range col.NonMissing() {
		unique[v.String()] = struct{}{}
	}
	if len(unique) == 0 {
		return 1
	}
	return float64(len(unique)) / float64(col.Len())
}
