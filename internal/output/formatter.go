// Package output renders repositories, profiles and coding stats for the
// terminal.
package output

import (
	"fmt"
	"io"

	"github.com/muhammad-fiaz/portfolio/internal/view"
	"github.com/muhammad-fiaz/portfolio/internal/wakatime"
)

// Format represents the output format
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// Formatter defines the interface for output formatters
type Formatter interface {
	FormatRepositories(page view.Page, w io.Writer) error
	FormatStats(stats *wakatime.Stats, w io.Writer) error
	FormatSummary(summary view.Summary, stats *wakatime.Stats, w io.Writer) error
}

// NewFormatter creates a formatter for the specified format
func NewFormatter(format Format) (Formatter, error) {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Pretty: true}, nil
	case FormatTable, "":
		return &TableFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format: %s", format)
	}
}
