package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/muhammad-fiaz/portfolio/internal/format"
	"github.com/muhammad-fiaz/portfolio/internal/view"
	"github.com/muhammad-fiaz/portfolio/internal/wakatime"
)

// TableFormatter formats output as a terminal table
type TableFormatter struct{}

const (
	colName  = 24
	colLang  = 12
	colStars = 7
	colForks = 7
	colAge   = 8

	minDescWidth     = 20
	defaultTermWidth = 120
)

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	dimColor    = color.New(color.Faint)
)

// terminalWidth returns the usable width of stdout, or a fixed default
// when not attached to a terminal.
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return defaultTermWidth
}

// truncate fits s into maxWidth display columns, appending "..." when cut.
func truncate(s string, maxWidth int) string {
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// pad right-pads s with spaces to the target display width.
func pad(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// FormatRepositories outputs one page of repositories as a table
func (f *TableFormatter) FormatRepositories(page view.Page, w io.Writer) error {
	if page.TotalCount == 0 {
		fmt.Fprintln(w, "No repositories found.")
		return nil
	}
	if len(page.Items) == 0 {
		fmt.Fprintf(w, "Page %d is past the end (%d pages total).\n", page.Page, page.TotalPages)
		return nil
	}

	descWidth := terminalWidth() - (colName + colLang + colStars + colForks + colAge + 10)
	if descWidth < minDescWidth {
		descWidth = minDescWidth
	}

	header := fmt.Sprintf("%s  %s  %s  %s  %s  %s",
		pad("NAME", colName),
		pad("LANGUAGE", colLang),
		pad("STARS", colStars),
		pad("FORKS", colForks),
		pad("UPDATED", colAge),
		"DESCRIPTION",
	)
	headerColor.Fprintln(w, header)

	for _, r := range page.Items {
		name := truncate(r.Name, colName)
		lang := r.PrimaryLanguage
		if lang == "" {
			lang = "-"
		}

		fmt.Fprintf(w, "%s  %s  %s  %s  %s  %s\n",
			pad(name, colName),
			pad(truncate(lang, colLang), colLang),
			pad(format.Count(r.StarCount), colStars),
			pad(format.Count(r.ForkCount), colForks),
			pad(format.Age(r.UpdatedAt), colAge),
			truncate(r.Description, descWidth),
		)
	}

	fmt.Fprintln(w)
	dimColor.Fprintf(w, "Page %d of %d (%d repositories)\n",
		page.Page, page.TotalPages, page.TotalCount)
	return nil
}

// durationText prefers the provider's display text, deriving one from
// the raw seconds when the feed omits it.
func durationText(displayText string, seconds float64) string {
	if displayText != "" {
		return displayText
	}
	return format.Seconds(seconds)
}

// FormatStats outputs a coding-stats snapshot as a table
func (f *TableFormatter) FormatStats(stats *wakatime.Stats, w io.Writer) error {
	headerColor.Fprintf(w, "Coding activity (%s)\n", stats.Range.DisplayText)
	fmt.Fprintf(w, "  Total:         %s\n", durationText(stats.TotalDisplayText, stats.TotalSeconds))
	fmt.Fprintf(w, "  Daily average: %s\n", stats.DailyAverageText)
	if stats.BestDay != nil {
		fmt.Fprintf(w, "  Best day:      %s (%s)\n",
			stats.BestDay.Date, durationText(stats.BestDay.DisplayText, stats.BestDay.TotalSeconds))
	}

	if len(stats.Languages) > 0 {
		fmt.Fprintln(w)
		headerColor.Fprintln(w, "Languages")
		for _, lang := range stats.Languages {
			fmt.Fprintf(w, "  %s %5.1f%%  %s\n",
				pad(lang.Name, 14), lang.Percent, durationText(lang.DisplayText, lang.TotalSeconds))
		}
	}

	if len(stats.Editors) > 0 {
		fmt.Fprintln(w)
		headerColor.Fprintln(w, "Editors")
		for _, e := range stats.Editors {
			fmt.Fprintf(w, "  %s %5.1f%%  %s\n",
				pad(e.Name, 14), e.Percent, durationText(e.DisplayText, e.TotalSeconds))
		}
	}

	return nil
}

// FormatSummary outputs the repository rollup and coding stats together
func (f *TableFormatter) FormatSummary(summary view.Summary, stats *wakatime.Stats, w io.Writer) error {
	headerColor.Fprintln(w, "Repositories")
	fmt.Fprintf(w, "  Total:    %d\n", summary.TotalRepos)
	fmt.Fprintf(w, "  Stars:    %s\n", format.Count(summary.TotalStars))
	fmt.Fprintf(w, "  Forks:    %s\n", format.Count(summary.TotalForks))
	fmt.Fprintf(w, "  Watchers: %s\n", format.Count(summary.TotalWatchers))
	if summary.TopLanguage != "" {
		fmt.Fprintf(w, "  Top language: %s\n", summary.TopLanguage)
	}
	if summary.MostStarred != nil {
		fmt.Fprintf(w, "  Most starred: %s (%s stars)\n",
			summary.MostStarred.Name, format.Count(summary.MostStarred.StarCount))
	}

	fmt.Fprintln(w)
	return f.FormatStats(stats, w)
}
