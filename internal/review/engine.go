package review

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mshree/jreview/internal/checkstyle"
	"github.com/mshree/jreview/internal/guidelines"
	"github.com/mshree/jreview/internal/logger"
)

// Engine runs the full review pipeline: convention check via the
// external analyzer, then the guideline evaluation. Both components
// are stateless, so the engine is safe to reuse across runs.
type Engine struct {
	checker    *checkstyle.Checker
	guidelines *guidelines.Engine
	language   string
	log        *logger.Logger
}

// NewEngine creates a review engine. language is the tag assumed for
// files whose extension is not recognized; empty means "other".
func NewEngine(checker *checkstyle.Checker, g *guidelines.Engine, language string) *Engine {
	if language == "" {
		language = "other"
	}
	return &Engine{
		checker:    checker,
		guidelines: g,
		language:   language,
		log:        logger.Default().WithPrefix("REVIEW"),
	}
}

// DetectLanguage infers the language tag from a file extension.
func DetectLanguage(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".java") {
		return "java"
	}
	return ""
}

// ReviewFile reviews a single file synchronously.
func (e *Engine) ReviewFile(ctx context.Context, path string) FileResult {
	language := DetectLanguage(path)
	if language == "" {
		language = e.language
	}

	data, err := os.ReadFile(path)
	if err != nil {
		e.log.Warn("cannot read %s: %v", path, err)
		return FileResult{File: path, Language: language, Error: err.Error()}
	}

	conventions := e.checker.Check(ctx, path, language)
	eval := e.guidelines.Evaluate(string(data), language)

	return FileResult{
		File:        path,
		Language:    language,
		Conventions: conventions,
		Suggestions: guidelines.FormatFindings(eval),
		Findings:    eval.Findings,
		Improved:    eval.Improved,
		Score:       eval.Score,
	}
}

// Run reviews the given files one at a time in argument order and
// returns the combined result. Unreadable files produce per-file
// error entries rather than aborting the run.
func (e *Engine) Run(ctx context.Context, paths []string) (*Result, error) {
	start := time.Now()

	if len(paths) == 0 {
		return &Result{Summary: "No files to review."}, nil
	}

	result := &Result{Files: make([]FileResult, 0, len(paths))}

	for _, path := range paths {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		result.Files = append(result.Files, e.ReviewFile(ctx, path))
	}

	result.Duration = time.Since(start)
	e.log.Info("reviewed %d files in %v", len(result.Files), result.Duration)

	return result, nil
}
