package cli

import (
	"os"

	"github.com/spf13/cobra"

	"trade-tracker/internal/store"
)

// addImpExpCommands adds the export and import commands. The export format
// is one JSON document holding the whole state tree; imports take the same
// migration path as storage-loaded data, so older exports remain readable.
func addImpExpCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newExportCmd(app))
	rootCmd.AddCommand(newImportCmd(app))
}

func newExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Export all sessions and trades as JSON",
		Long:  "Write the whole journal as a JSON document to a file, or to stdout without an argument.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if len(args) == 1 {
				f, err := os.Create(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			if err := store.Export(w, app.State.State()); err != nil {
				return err
			}
			if len(args) == 1 {
				NewOutput(cmd).Success("Exported to %s", args[0])
			}
			return nil
		},
	}
}

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a journal export, replacing the current state",
		Long: `Replace the whole journal with the contents of an export file.

Files written by older versions are upgraded to the current schema on
the way in.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			imported, err := store.Import(f)
			if err != nil {
				return err
			}

			app.State.Replace(imported)
			app.Logger.Info().Int("sessions", len(imported.Sessions)).Str("file", args[0]).Msg("State imported")
			output.Success("Imported %d sessions from %s", len(imported.Sessions), args[0])
			return nil
		},
	}
}
