package notifier

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"StockLens/internal/model"
)

var (
	symbolStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED"))

	rangeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444"))
)

// FormatReport renders one symbol's findings for the terminal.
func FormatReport(rep *model.Report) string {
	var b strings.Builder

	b.WriteString(symbolStyle.Render(rep.Symbol))
	if rep.Days == 0 {
		b.WriteString(rangeStyle.Render("  no records"))
	} else {
		b.WriteString(rangeStyle.Render(fmt.Sprintf("  %d days  %s → %s", rep.Days, rep.First, rep.Last)))
	}
	b.WriteString("\n")

	for _, f := range rep.Findings {
		label := fmt.Sprintf("  %-16s %-10s ", f.Analyser, f.Metric)
		b.WriteString(label)
		if !f.OK() {
			b.WriteString(errorStyle.Render("n/a: " + f.Err))
		} else {
			v := fmt.Sprintf("%.4f", f.Value)
			if f.Date != "" {
				v += " on " + f.Date
			}
			b.WriteString(valueStyle.Render(v))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// FormatSummary renders the one-line footer of a run.
func FormatSummary(runID string, symbols, sources, failed int) string {
	line := fmt.Sprintf("run %s: %d symbols from %d sources", runID, symbols, sources)
	if failed > 0 {
		return rangeStyle.Render(line) + errorStyle.Render(fmt.Sprintf(" (%d skipped)", failed)) + "\n"
	}
	return rangeStyle.Render(line) + "\n"
}
