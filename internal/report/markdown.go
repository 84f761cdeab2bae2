package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mshree/jreview/internal/review"
)

// MarkdownReporter generates Markdown reports.
type MarkdownReporter struct{}

func (r *MarkdownReporter) Format() string { return "markdown" }

func (r *MarkdownReporter) Generate(result *review.Result) (string, error) {
	var sb strings.Builder
	_ = r.Write(result, &sb)
	return sb.String(), nil
}

func (r *MarkdownReporter) Write(result *review.Result, w io.Writer) error {
	fmt.Fprintf(w, "# Code Review Report\n\n")

	if result.Summary != "" && len(result.Files) == 0 {
		fmt.Fprintf(w, "%s\n", result.Summary)
		return nil
	}

	fmt.Fprintf(w, "## Summary\n\n")
	fmt.Fprintf(w, "- **Files Reviewed:** %d\n", len(result.Files))
	fmt.Fprintf(w, "- **Duration:** %s\n", result.Duration)
	fmt.Fprintf(w, "\n")

	for _, file := range result.Files {
		fmt.Fprintf(w, "## %s\n\n", file.File)

		if file.Error != "" {
			fmt.Fprintf(w, "Error: %s\n\n", file.Error)
			continue
		}

		fmt.Fprintf(w, "**Compliance Score:** %d%%\n\n", file.Score)

		fmt.Fprintf(w, "### Code Convention Issues\n\n")
		fmt.Fprintf(w, "```\n%s\n```\n\n", file.Conventions)

		fmt.Fprintf(w, "### Best Practices Suggestions\n\n")
		fmt.Fprintf(w, "```\n%s\n```\n\n", file.Suggestions)

		fmt.Fprintf(w, "### Improved Code\n\n")
		fmt.Fprintf(w, "```%s\n%s\n```\n\n", codeFence(file.Language), file.Improved)
	}

	return nil
}

func codeFence(language string) string {
	if language == "java" {
		return "java"
	}
	return ""
}
