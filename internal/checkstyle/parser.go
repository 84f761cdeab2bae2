package checkstyle

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// diagnosticPattern matches one analyzer output line of the form
// [SEVERITY] path:line:col: message
var diagnosticPattern = regexp.MustCompile(`^\[([A-Z]+)\] (.+?):(\d+):(\d+): (.+)`)

// ParseDiagnostics parses raw analyzer output into diagnostics,
// preserving emission order. Lines that do not match the diagnostic
// pattern are silently dropped.
func ParseDiagnostics(raw string) []Diagnostic {
	var diags []Diagnostic

	for _, line := range strings.Split(raw, "\n") {
		m := diagnosticPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		lineNo, _ := strconv.Atoi(m[3])
		colNo, _ := strconv.Atoi(m[4])

		diags = append(diags, Diagnostic{
			Severity: m[1],
			File:     m[2],
			Line:     lineNo,
			Column:   colNo,
			Message:  m[5],
		})
	}

	return diags
}

// FormatReport renders diagnostics as a human-readable report.
//
// Indentation diagnostics (message contains "indentation", case
// insensitive) are grouped by line number and deduplicated by message
// text within each line; everything else is listed individually in
// emission order. Indentation lines are summarized last, in first-seen
// line order.
func FormatReport(diags []Diagnostic) string {
	var issues []string

	indentation := make(map[int][]string)
	var indentationOrder []int

	for _, d := range diags {
		if strings.Contains(strings.ToLower(d.Message), "indentation") {
			if _, seen := indentation[d.Line]; !seen {
				indentationOrder = append(indentationOrder, d.Line)
			}
			indentation[d.Line] = append(indentation[d.Line], d.Message)
			continue
		}
		issues = append(issues, fmt.Sprintf("Line %d, Column %d: %s", d.Line, d.Column, d.Message))
	}

	if len(indentationOrder) > 0 {
		issues = append(issues, "Indentation Issues:")
		for _, line := range indentationOrder {
			issues = append(issues, fmt.Sprintf("   - Line %d: %s", line, strings.Join(dedupe(indentation[line]), ", ")))
		}
	}

	if len(issues) == 0 {
		return MsgNoIssues
	}
	return strings.Join(issues, "\n")
}

// dedupe removes duplicate strings preserving first-seen order.
func dedupe(msgs []string) []string {
	seen := make(map[string]bool, len(msgs))
	out := make([]string, 0, len(msgs))
	for _, m := range msgs {
		if seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	return out
}
