package checkstyle

import (
	"context"
	"errors"
	"os"

	"github.com/mshree/jreview/internal/logger"
)

// Config holds the checker's external analyzer settings.
type Config struct {
	// JarPath is the filesystem path to the Checkstyle JAR.
	JarPath string

	// ConfigFile is the rules XML passed to the analyzer.
	ConfigFile string

	// JavaBin is the java executable used to launch the JAR.
	JavaBin string
}

// Checker produces convention reports for source files by running the
// external analyzer. All failure modes are recovered and surfaced as
// advisory report strings, never as errors.
type Checker struct {
	cfg    Config
	runner Runner
	log    *logger.Logger
}

// NewChecker creates a checker using the production JAR runner.
func NewChecker(cfg Config) *Checker {
	return NewCheckerWithRunner(cfg, NewJarRunner(cfg.JavaBin, cfg.JarPath))
}

// NewCheckerWithRunner creates a checker with an injected runner.
func NewCheckerWithRunner(cfg Config, runner Runner) *Checker {
	return &Checker{
		cfg:    cfg,
		runner: runner,
		log:    logger.Default().WithPrefix("CHECKER"),
	}
}

// Check runs the analyzer against the file and returns a report.
// Languages other than "java" get a fixed advisory message and no
// subprocess is spawned.
func (c *Checker) Check(ctx context.Context, path, language string) string {
	if language != "java" {
		return MsgUnsupportedLanguage
	}

	if _, err := os.Stat(c.cfg.JarPath); err != nil {
		c.log.Debug("checkstyle jar not found at %s", c.cfg.JarPath)
		return MsgCheckstyleNotFound
	}

	raw, err := c.runner.Run(ctx, c.cfg.ConfigFile, path)
	if err != nil {
		if errors.Is(err, ErrJavaNotFound) {
			return MsgJavaNotFound
		}
		c.log.Warn("analyzer failed for %s: %v", path, err)
		return MsgNoIssues
	}

	if raw == "" {
		return MsgNoIssues
	}

	return FormatReport(ParseDiagnostics(raw))
}
