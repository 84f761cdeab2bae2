package config

import (
	"os"
	"path/filepath"
)

// DefaultConfig returns a Config with sensible default values.
// These defaults assume a Checkstyle JAR downloaded to the user's
// home directory and java available on PATH.
func DefaultConfig() *Config {
	return &Config{
		Checkstyle: defaultCheckstyleConfig(),
		Review: ReviewConfig{
			Language: "other",
		},
		Output: OutputConfig{
			Format: "text",
			Color:  true,
		},
	}
}

// defaultCheckstyleConfig returns the default Checkstyle configuration.
func defaultCheckstyleConfig() CheckstyleConfig {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	return CheckstyleConfig{
		JarPath:    filepath.Join(homeDir, ".jreview", "checkstyle-all.jar"),
		ConfigFile: "google_checks.xml",
		JavaBin:    "java",
	}
}
