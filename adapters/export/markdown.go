package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"goeda/domain/report"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// MarkdownExporter renders a report document to Markdown and a matching
// standalone HTML page.
type MarkdownExporter struct{}

func NewMarkdownExporter() *MarkdownExporter {
	return &MarkdownExporter{}
}

// Export writes <dir>/report_<id>.md and <dir>/report_<id>.html, returning
// the markdown path.
func (e *MarkdownExporter) Export(_ context.Context, doc *report.Document, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output dir: %w", err)
	}

	md := Render(doc)

	mdPath := filepath.Join(dir, fmt.Sprintf("report_%s.md", doc.ID))
	if err := os.WriteFile(mdPath, []byte(md), 0o644); err != nil {
		return "", fmt.Errorf("failed to write markdown report: %w", err)
	}

	htmlPath := filepath.Join(dir, fmt.Sprintf("report_%s.html", doc.ID))
	if err := os.WriteFile(htmlPath, renderHTML(md), 0o644); err != nil {
		return "", fmt.Errorf("failed to write html report: %w", err)
	}
	return mdPath, nil
}

func renderHTML(md string) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.CompletePage})
	return markdown.ToHTML([]byte(md), p, renderer)
}

// Render produces the Markdown text for a document, one section per page
func Render(doc *report.Document) string {
	var b strings.Builder
	for _, page := range doc.Pages {
		switch page.Kind {
		case report.PageTitle:
			renderTitle(&b, page.Title)
		case report.PageSchema:
			renderSchema(&b, page.Schema)
		case report.PageAnalysis:
			renderAnalysis(&b, page.Analysis)
		}
	}
	return b.String()
}

func renderTitle(b *strings.Builder, t *report.TitleContent) {
	if t == nil {
		return
	}
	fmt.Fprintf(b, "# Exploratory Data Analysis: %s\n\n", t.Dataset)
	fmt.Fprintf(b, "- **Rows:** %d\n", t.Rows)
	fmt.Fprintf(b, "- **Columns:** %d\n", t.Columns)
	fmt.Fprintf(b, "- **Schema:** %s\n", t.SchemaSource)
	fmt.Fprintf(b, "- **Fingerprint:** %s\n", t.Fingerprint)
	fmt.Fprintf(b, "- **Generated:** %s\n\n", t.GeneratedAt)
}

func renderSchema(b *strings.Builder, enforcement *report.EnforcementReport) {
	b.WriteString("## Schema Enforcement\n\n")
	if enforcement == nil || len(enforcement.Outcomes) == 0 {
		b.WriteString("No schema enforcement performed.\n\n")
		return
	}
	b.WriteString("| Column | Declared | Resolved | Status | Detail |\n")
	b.WriteString("|--------|----------|----------|--------|--------|\n")
	for _, o := range enforcement.Outcomes {
		fmt.Fprintf(b, "| %s | %s | %s | %s | %s |\n",
			o.Column, orDash(string(o.Declared)), orDash(string(o.Resolved)), o.Status, orDash(o.Reason))
	}
	b.WriteString("\n")
}

func renderAnalysis(b *strings.Builder, a *report.AnalysisResult) {
	if a == nil {
		return
	}
	fmt.Fprintf(b, "## Column: %s (%s)\n\n", a.Column, a.Variant)
	if a.Narrative != "" {
		fmt.Fprintf(b, "%s\n\n", a.Narrative)
	}

	keys := make([]string, 0, len(a.Statistics))
	for k := range a.Statistics {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	b.WriteString("| Statistic | Value |\n|-----------|-------|\n")
	for _, k := range keys {
		fmt.Fprintf(b, "| %s | %v |\n", k, a.Statistics[k])
	}
	b.WriteString("\n")

	for _, v := range a.Visuals {
		fmt.Fprintf(b, "*Chart: %s*\n\n", v.Kind)
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
