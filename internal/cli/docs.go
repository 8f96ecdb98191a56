package cli

import (
	"github.com/spf13/cobra"
)

// addDocsCommand adds the usage walkthrough command.
func addDocsCommand(rootCmd *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Usage walkthrough",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)

			output.Bold("Trade Tracker workflows")
			output.Println()

			output.Info("Start a trading day")
			output.Println("  tracker session new")
			output.Println()

			output.Info("Quick-add a trade")
			output.Println(`  tracker trade add -t AAPL --status win -p 2.5 -d 120.50 -m "Breakout over VWAP" -e calculated`)
			output.Println()

			output.Info("Review the day")
			output.Println("  tracker trade list")
			output.Println("  tracker stats")
			output.Println()

			output.Info("Fill in the detailed report")
			output.Println(`  tracker report action <trade-id> "Scaled out half at +2R"`)
			output.Println(`  tracker report outcome <trade-id> --expected "Run to 190" --actual "Stopped at 187"`)
			output.Println(`  tracker report feedback <trade-id> "Good entry, exit too early"`)
			output.Println(`  tracker report lesson <trade-id> "Let winners run"`)
			output.Println()

			output.Info("Back up or move the journal")
			output.Println("  tracker export journal.json")
			output.Println("  tracker import journal.json")
			output.Println()

			output.Dim("Every command accepts --json for machine-readable output.")
		},
	}

	rootCmd.AddCommand(cmd)
}
