// Package review orchestrates the convention checker and the
// guideline engine into per-file review results.
package review

import (
	"time"

	"github.com/mshree/jreview/internal/guidelines"
)

// Result contains the complete review results for one run.
type Result struct {
	Files    []FileResult  `json:"files"`
	Duration time.Duration `json:"duration"`
	Summary  string        `json:"summary,omitempty"`
}

// FileResult contains the review of a single file. It is an ephemeral
// value owned by the request that produced it; nothing is persisted
// between runs.
type FileResult struct {
	File        string               `json:"file"`
	Language    string               `json:"language"`
	Conventions string               `json:"conventions"`
	Suggestions string               `json:"suggestions"`
	Findings    []guidelines.Finding `json:"findings"`
	Improved    string               `json:"improved"`
	Score       int                  `json:"score"`
	Error       string               `json:"error,omitempty"`
}
