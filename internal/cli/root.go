package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"trade-tracker/internal/config"
	"trade-tracker/internal/state"
)

// Version information
const (
	Version = "0.1.0"
)

// App holds the application dependencies.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
	State  *state.Container
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tracker",
		Short: "Trade Tracker - personal trading journal CLI",
		Long: `Trade Tracker is a personal trading journal.

Create dated trading sessions, log trades within them, and attach
reflection (emotional state, expected and actual outcome, lessons
learned) to each trade. All data is kept in a local database.

Use 'tracker docs' for a walkthrough of common workflows.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
	}

	rootCmd.PersistentFlags().Bool("json", false, "Output in JSON format")

	addSessionCommands(rootCmd, app)
	addTradeCommands(rootCmd, app)
	addReportCommands(rootCmd, app)
	addStatsCommand(rootCmd, app)
	addImpExpCommands(rootCmd, app)
	addDocsCommand(rootCmd)

	return rootCmd
}
