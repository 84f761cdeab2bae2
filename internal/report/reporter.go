// Package report renders review results in the supported output
// formats.
package report

import (
	"fmt"
	"io"

	"github.com/mshree/jreview/internal/review"
)

// Reporter defines the interface for generating review reports.
type Reporter interface {
	// Generate creates a report from review results.
	Generate(result *review.Result) (string, error)

	// Write writes the report to a writer.
	Write(result *review.Result, w io.Writer) error

	// Format returns the format name.
	Format() string
}

// NewReporter creates a reporter for the given format.
func NewReporter(format string, color bool) (Reporter, error) {
	switch format {
	case "text", "txt":
		return &TextReporter{Color: color}, nil
	case "markdown", "md":
		return &MarkdownReporter{}, nil
	case "json":
		return &JSONReporter{Indent: true}, nil
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

// AvailableFormats returns the list of supported formats.
func AvailableFormats() []string {
	return []string{"text", "markdown", "json"}
}
