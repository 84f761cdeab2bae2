package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mshree/jreview/internal/checkstyle"
	"github.com/mshree/jreview/internal/review"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Run only the convention check",
	Long: `Run Checkstyle against a single file and print the grouped
convention report, without the best practice evaluation.

Examples:
  # Check a file
  jreview check Main.java

  # Force the language tag
  jreview check snippet.txt --language java`,

	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().String("language", "", "Language tag for files without a recognized extension")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path := args[0]

	language := review.DetectLanguage(path)
	if language == "" {
		language, _ = cmd.Flags().GetString("language")
	}
	if language == "" {
		language = cfg.Review.Language
	}

	checker := checkstyle.NewChecker(checkstyle.Config{
		JarPath:    cfg.Checkstyle.JarPath,
		ConfigFile: cfg.Checkstyle.ConfigFile,
		JavaBin:    cfg.Checkstyle.JavaBin,
	})

	fmt.Println(checker.Check(context.Background(), path, language))
	return nil
}
