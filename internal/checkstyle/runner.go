package checkstyle

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrJavaNotFound indicates the java executable is absent from the
// execution environment.
var ErrJavaNotFound = errors.New("java executable not found")

// JarRunner invokes Checkstyle as `java -jar <jar> -c <config> <file>`.
type JarRunner struct {
	javaBin string
	jarPath string
}

// NewJarRunner creates a runner for the given java binary and JAR path.
func NewJarRunner(javaBin, jarPath string) *JarRunner {
	return &JarRunner{javaBin: javaBin, jarPath: jarPath}
}

// Run executes the analyzer and returns captured stdout.
// The exit code is not inspected: Checkstyle exits non-zero when it
// finds violations, and the violations on stdout are the result we want.
func (r *JarRunner) Run(ctx context.Context, configFile, targetFile string) (string, error) {
	cmd := exec.CommandContext(ctx, r.javaBin, "-jar", r.jarPath, "-c", configFile, targetFile)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", ErrJavaNotFound
		}
		// Non-zero exit with output is the normal violation case.
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			errMsg := strings.TrimSpace(stderr.String())
			if errMsg != "" {
				return "", fmt.Errorf("checkstyle: %w: %s", err, errMsg)
			}
			return "", fmt.Errorf("checkstyle: %w", err)
		}
	}

	return stdout.String(), nil
}
