package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/mshree/jreview/internal/guidelines"
	"github.com/mshree/jreview/internal/review"
)

func sampleResult() *review.Result {
	return &review.Result{
		Files: []review.FileResult{
			{
				File:        "Main.java",
				Language:    "java",
				Conventions: "Line 3, Column 5: Missing a Javadoc comment.",
				Suggestions: "Guideline 7. Use private methods unless necessary.",
				Findings: []guidelines.Finding{
					{RuleID: 7, Explanation: "Use private methods unless necessary."},
				},
				Improved: "private void run() { }",
				Score:    90,
			},
		},
	}
}

func TestNewReporter(t *testing.T) {
	for _, format := range AvailableFormats() {
		r, err := NewReporter(format, false)
		if err != nil {
			t.Errorf("NewReporter(%q) error = %v", format, err)
			continue
		}
		if r.Format() != format {
			t.Errorf("Format() = %v, want %v", r.Format(), format)
		}
	}

	if _, err := NewReporter("xml", false); err == nil {
		t.Error("NewReporter(xml) = nil error, want error")
	}
}

func TestTextReporter(t *testing.T) {
	r := &TextReporter{Color: false}

	out, err := r.Generate(sampleResult())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	for _, want := range []string{
		"=== Main.java ===",
		"Compliance Score: 90%",
		"Code Convention Issues:",
		"Line 3, Column 5: Missing a Javadoc comment.",
		"Best Practices Suggestions:",
		"Guideline 7. Use private methods unless necessary.",
		"Improved Code:",
		"private void run() { }",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text report missing %q:\n%s", want, out)
		}
	}
}

func TestTextReporterScoreBar(t *testing.T) {
	r := &TextReporter{Color: false}

	full := r.renderScoreBar(100)
	if strings.Count(full, "█") != 40 || strings.Count(full, "░") != 0 {
		t.Errorf("renderScoreBar(100) = %q, want full bar", full)
	}

	empty := r.renderScoreBar(0)
	if strings.Count(empty, "█") != 0 || strings.Count(empty, "░") != 40 {
		t.Errorf("renderScoreBar(0) = %q, want empty bar", empty)
	}

	half := r.renderScoreBar(50)
	if strings.Count(half, "█") != 20 {
		t.Errorf("renderScoreBar(50) = %q, want 20 filled cells", half)
	}
}

func TestTextReporterSummaryOnly(t *testing.T) {
	r := &TextReporter{}
	out, err := r.Generate(&review.Result{Summary: "No files to review."})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if strings.TrimSpace(out) != "No files to review." {
		t.Errorf("Generate() = %q, want summary only", out)
	}
}

func TestMarkdownReporter(t *testing.T) {
	r := &MarkdownReporter{}

	out, err := r.Generate(sampleResult())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	for _, want := range []string{
		"# Code Review Report",
		"## Main.java",
		"**Compliance Score:** 90%",
		"### Improved Code",
		"```java",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown report missing %q", want)
		}
	}
}

func TestJSONReporter(t *testing.T) {
	r := &JSONReporter{Indent: true}

	out, err := r.Generate(sampleResult())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	var decoded review.Result
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if len(decoded.Files) != 1 {
		t.Fatalf("len(Files) = %d, want 1", len(decoded.Files))
	}
	if decoded.Files[0].Score != 90 {
		t.Errorf("Score = %d, want 90", decoded.Files[0].Score)
	}
	if decoded.Files[0].Findings[0].RuleID != 7 {
		t.Errorf("Findings[0].RuleID = %d, want 7", decoded.Files[0].Findings[0].RuleID)
	}
}
