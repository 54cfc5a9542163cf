package analyze

import (
	"fmt"
	"strings"
	"unicode"

	"goeda/domain/report"
	"goeda/domain/table"
)

var stopWords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "but": true, "by": true, "for": true, "from": true, "has": true,
	"he": true, "in": true, "is": true, "it": true, "its": true, "of": true,
	"on": true, "or": true, "that": true, "the": true, "to": true, "was": true,
	"were": true, "will": true, "with": true,
}

// Text tokenizes free-text entries, computes vocabulary statistics and
// requests a word cloud of the topN most frequent terms.
func Text(col table.Column, topN int) report.AnalysisResult {
	entries := make([]string, 0, col.Len())
	for _, v := range col.NonMissing() {
		entries = append(entries, v.String())
	}
	missing := col.Len() - len(entries)

	tokens := []string{}
	for _, entry := range entries {
		tokens = append(tokens, tokenize(entry)...)
	}

	avgLength := 0.0
	if len(tokens) > 0 {
		total := 0
		for _, tok := range tokens {
			total += len(tok)
		}
		avgLength = float64(total) / float64(len(tokens))
	}

	frequencies := frequencyTable(tokens)
	if topN > 0 && len(frequencies) > topN {
		frequencies = frequencies[:topN]
	}

	statistics := map[string]interface{}{
		"count":            len(entries),
		"missing":          missing,
		"avg_token_length": avgLength,
		"vocabulary":       distinctCount(tokens),
		"top_terms":        frequencies,
	}

	visuals := []report.VizRequest{}
	if len(frequencies) > 0 {
		terms := make([]string, len(frequencies))
		weights := make([]int, len(frequencies))
		for i, f := range frequencies {
			terms[i] = f.Category
			weights[i] = f.Count
		}
		visuals = append(visuals, report.VizRequest{
			Kind:   report.ChartWordCloud,
			Column: col.Name,
			Cloud:  &report.CloudData{Terms: terms, Weights: weights},
		})
	}

	narrative := fmt.Sprintf(
		"%s: %d entries (%d missing), %d distinct terms, average token length %.1f",
		col.Name, len(entries), missing, distinctCount(tokens), avgLength,
	)

	return report.AnalysisResult{
		Column:     col.Name,
		Variant:    report.VariantText,
		Statistics: statistics,
		Visuals:    visuals,
		Narrative:  narrative,
	}
}

// tokenize lowercases, strips punctuation and drops stop words
func tokenize(entry string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, entry)

	tokens := []string{}
	for _, field := range strings.Fields(cleaned) {
		if !stopWords[field] {
			tokens = append(tokens, field)
		}
	}
	return tokens
}

func distinctCount(tokens []string) int {
	seen := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		seen[tok] = true
	}
	return len(seen)
}
