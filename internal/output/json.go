package output

import (
	"encoding/json"
	"io"

	"github.com/muhammad-fiaz/portfolio/internal/view"
	"github.com/muhammad-fiaz/portfolio/internal/wakatime"
)

// JSONFormatter formats output as JSON
type JSONFormatter struct {
	Pretty bool
}

func (f *JSONFormatter) encode(v any, w io.Writer) error {
	encoder := json.NewEncoder(w)
	if f.Pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(v)
}

// FormatRepositories outputs one page of repositories as JSON
func (f *JSONFormatter) FormatRepositories(page view.Page, w io.Writer) error {
	return f.encode(page, w)
}

// FormatStats outputs a coding-stats snapshot as JSON
func (f *JSONFormatter) FormatStats(stats *wakatime.Stats, w io.Writer) error {
	return f.encode(stats, w)
}

// summaryOutput wraps the rollup and stats for combined JSON output
type summaryOutput struct {
	Repositories view.Summary    `json:"repositories"`
	CodingStats  *wakatime.Stats `json:"codingStats"`
}

// FormatSummary outputs the repository rollup and coding stats together
func (f *JSONFormatter) FormatSummary(summary view.Summary, stats *wakatime.Stats, w io.Writer) error {
	return f.encode(summaryOutput{Repositories: summary, CodingStats: stats}, w)
}
