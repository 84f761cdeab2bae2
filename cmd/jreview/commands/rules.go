package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mshree/jreview/internal/guidelines"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the best practice guideline table",
	Long: `Print the fixed guideline table evaluated by the review
engine, in evaluation order.

Examples:
  # List guidelines
  jreview rules

  # List as JSON
  jreview rules --json`,

	Args: cobra.NoArgs,
	RunE: runRules,
}

var rulesJSON bool

func init() {
	rootCmd.AddCommand(rulesCmd)

	rulesCmd.Flags().BoolVar(&rulesJSON, "json", false, "output as JSON")
}

func runRules(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	table := guidelines.DefaultTable()

	if rulesJSON {
		type ruleInfo struct {
			ID          int    `json:"id"`
			Name        string `json:"name"`
			Explanation string `json:"explanation"`
			Wired       bool   `json:"wired"`
			Rewrites    bool   `json:"rewrites"`
		}

		infos := make([]ruleInfo, 0, len(table))
		for _, r := range table {
			infos = append(infos, ruleInfo{
				ID:          r.ID,
				Name:        r.Name,
				Explanation: r.Explanation,
				Wired:       r.Wired(),
				Rewrites:    r.Rewrite != nil,
			})
		}

		data, err := json.MarshalIndent(infos, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	for _, r := range table {
		status := ""
		switch {
		case !r.Wired():
			status = " (reserved)"
		case r.Rewrite != nil:
			status = " (rewrites)"
		}
		fmt.Fprintf(out, "Guideline %2d. %s%s\n", r.ID, r.Explanation, status)
	}
	return nil
}
