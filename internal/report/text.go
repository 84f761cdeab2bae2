package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mshree/jreview/internal/review"
)

const scoreBarWidth = 40

// Score color thresholds: green for healthy, orange for middling,
// red below half.
var (
	scoreGood = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	scoreWarn = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	scoreBad  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// TextReporter renders the review as plain text with a terminal
// score bar.
type TextReporter struct {
	Color bool
}

func (r *TextReporter) Format() string { return "text" }

func (r *TextReporter) Generate(result *review.Result) (string, error) {
	var sb strings.Builder
	if err := r.Write(result, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (r *TextReporter) Write(result *review.Result, w io.Writer) error {
	if result.Summary != "" && len(result.Files) == 0 {
		fmt.Fprintln(w, result.Summary)
		return nil
	}

	for i, file := range result.Files {
		if i > 0 {
			fmt.Fprintln(w)
		}

		fmt.Fprintf(w, "=== %s ===\n\n", file.File)

		if file.Error != "" {
			fmt.Fprintf(w, "Error: %s\n", file.Error)
			continue
		}

		fmt.Fprintf(w, "Compliance Score: %d%%\n", file.Score)
		fmt.Fprintf(w, "%s\n\n", r.renderScoreBar(file.Score))

		fmt.Fprintf(w, "Code Convention Issues:\n%s\n\n", file.Conventions)
		fmt.Fprintf(w, "Best Practices Suggestions:\n%s\n\n", file.Suggestions)
		fmt.Fprintf(w, "Improved Code:\n%s\n", file.Improved)
	}

	return nil
}

// renderScoreBar draws a horizontal bar scaled to the score.
func (r *TextReporter) renderScoreBar(score int) string {
	filled := score * scoreBarWidth / 100
	bar := "[" + strings.Repeat("█", filled) + strings.Repeat("░", scoreBarWidth-filled) + "]"

	if !r.Color {
		return bar
	}
	return r.scoreStyle(score).Render(bar)
}

func (r *TextReporter) scoreStyle(score int) lipgloss.Style {
	switch {
	case score >= 75:
		return scoreGood
	case score >= 50:
		return scoreWarn
	default:
		return scoreBad
	}
}
