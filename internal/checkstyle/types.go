// Package checkstyle runs the external Checkstyle analyzer and turns
// its raw output into a human-readable convention report.
package checkstyle

import "context"

// Runner defines the interface for invoking the external analyzer.
// This abstraction allows for testing with fake implementations that
// do not spawn a real subprocess.
type Runner interface {
	// Run invokes the analyzer with the given rules config against the
	// target file and returns captured stdout. A missing java executable
	// is reported as ErrJavaNotFound.
	Run(ctx context.Context, configFile, targetFile string) (string, error)
}

// Diagnostic is one parsed line of analyzer output.
type Diagnostic struct {
	Severity string `json:"severity"`
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Message  string `json:"message"`
}

// Advisory messages surfaced instead of errors. These conditions are
// recovered, never propagated.
const (
	MsgUnsupportedLanguage = "Convention checks are currently only available for Java."
	MsgCheckstyleNotFound  = "Checkstyle not found. Please install and configure it properly."
	MsgJavaNotFound        = "Java not found. Ensure Java is installed and added to PATH."
	MsgNoIssues            = "No style issues found."
)
