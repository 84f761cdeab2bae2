// Package config handles all configuration management for jreview.
//
// Configuration is loaded from multiple sources in order of precedence:
// 1. Command-line flags (highest priority)
// 2. Environment variables (JREVIEW_*)
// 3. Configuration file (.jreview.yaml)
// 4. Default values (lowest priority)
package config

// Config is the main configuration structure for jreview.
// It contains all settings needed to run the application.
type Config struct {
	// Checkstyle configures the external Checkstyle analyzer
	Checkstyle CheckstyleConfig `mapstructure:"checkstyle" yaml:"checkstyle"`

	// Review configures review behavior
	Review ReviewConfig `mapstructure:"review" yaml:"review"`

	// Output configures output formatting
	Output OutputConfig `mapstructure:"output" yaml:"output"`
}

// CheckstyleConfig configures the external Checkstyle analyzer.
type CheckstyleConfig struct {
	// JarPath is the filesystem path to the Checkstyle JAR
	JarPath string `mapstructure:"jar_path" yaml:"jar_path"`

	// ConfigFile is the Checkstyle rules XML passed via -c
	ConfigFile string `mapstructure:"config_file" yaml:"config_file"`

	// JavaBin is the java executable used to launch the JAR
	JavaBin string `mapstructure:"java_bin" yaml:"java_bin"`
}

// ReviewConfig configures review behavior.
type ReviewConfig struct {
	// Language is the language tag to assume when it cannot be
	// inferred from the file extension
	Language string `mapstructure:"language" yaml:"language"`
}

// OutputConfig configures output formatting.
type OutputConfig struct {
	// Format is the output format: "text", "markdown", "json"
	Format string `mapstructure:"format" yaml:"format"`

	// File is the output file path (empty = stdout)
	File string `mapstructure:"file" yaml:"file"`

	// Color enables colored output (for terminal)
	Color bool `mapstructure:"color" yaml:"color"`

	// Verbose enables verbose output
	Verbose bool `mapstructure:"verbose" yaml:"verbose"`

	// Quiet suppresses all output except errors
	Quiet bool `mapstructure:"quiet" yaml:"quiet"`
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	if c.Checkstyle.JarPath == "" {
		return &ValidationError{Field: "checkstyle.jar_path", Message: "checkstyle jar path is required"}
	}

	if c.Checkstyle.ConfigFile == "" {
		return &ValidationError{Field: "checkstyle.config_file", Message: "checkstyle config file is required"}
	}

	if c.Checkstyle.JavaBin == "" {
		return &ValidationError{Field: "checkstyle.java_bin", Message: "java binary is required"}
	}

	validFormats := map[string]bool{"text": true, "markdown": true, "json": true}
	if !validFormats[c.Output.Format] {
		return &ValidationError{Field: "output.format", Message: "invalid format, must be one of: text, markdown, json"}
	}

	return nil
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return "config validation error: " + e.Field + ": " + e.Message
}
