package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mshree/jreview/internal/checkstyle"
	"github.com/mshree/jreview/internal/config"
	"github.com/mshree/jreview/internal/guidelines"
	"github.com/mshree/jreview/internal/report"
	"github.com/mshree/jreview/internal/review"
)

var reviewCmd = &cobra.Command{
	Use:   "review <files...>",
	Short: "Review source files",
	Long: `Review source files: run Checkstyle for convention issues,
evaluate the best practice guideline table, and report a compliance
score with a rewritten copy of the code.

Examples:
  # Review a single file
  jreview review Main.java

  # Review several files
  jreview review Main.java Worker.java

  # Output as markdown
  jreview review Main.java --format markdown

  # Save report to file
  jreview review Main.java -o report.md

  # Treat input as java regardless of extension
  jreview review snippet.txt --language java`,

	Args: cobra.MinimumNArgs(1),
	RunE: runReview,
}

func init() {
	rootCmd.AddCommand(reviewCmd)

	reviewCmd.Flags().StringP("format", "f", "", "Output format (text, markdown, json)")
	reviewCmd.Flags().StringP("output", "o", "", "Write report to file")
	reviewCmd.Flags().String("language", "", "Language tag for files without a recognized extension")
	reviewCmd.Flags().Bool("no-color", false, "Disable colored output")
}

func runReview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	language, _ := cmd.Flags().GetString("language")
	if language == "" {
		language = cfg.Review.Language
	}

	engine := newReviewEngine(cfg, language)

	result, err := engine.Run(context.Background(), args)
	if err != nil {
		return fmt.Errorf("review failed: %w", err)
	}

	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		format = cfg.Output.Format
	}

	noColor, _ := cmd.Flags().GetBool("no-color")
	reporter, err := report.NewReporter(format, cfg.Output.Color && !noColor)
	if err != nil {
		return err
	}

	output, err := reporter.Generate(result)
	if err != nil {
		return fmt.Errorf("generating report: %w", err)
	}

	outputFile, _ := cmd.Flags().GetString("output")
	if outputFile == "" {
		outputFile = cfg.Output.File
	}
	return writeOutput(output, outputFile)
}

// newReviewEngine wires the checker and the guideline engine from
// configuration.
func newReviewEngine(cfg *config.Config, language string) *review.Engine {
	checker := checkstyle.NewChecker(checkstyle.Config{
		JarPath:    cfg.Checkstyle.JarPath,
		ConfigFile: cfg.Checkstyle.ConfigFile,
		JavaBin:    cfg.Checkstyle.JavaBin,
	})
	return review.NewEngine(checker, guidelines.NewEngine(), language)
}

// loadConfig loads configuration honoring the --config flag.
func loadConfig() (*config.Config, error) {
	loader := config.NewLoader()
	if cfgFile != "" {
		loader.SetConfigFile(cfgFile)
	}

	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// writeOutput writes the report to a file or stdout.
func writeOutput(output, outputFile string) error {
	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(output), 0644); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		if !isQuiet() {
			fmt.Fprintf(os.Stderr, "Report written to %s\n", outputFile)
		}
		return nil
	}

	fmt.Print(output)
	return nil
}
