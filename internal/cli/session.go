package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"trade-tracker/internal/dates"
)

// addSessionCommands adds session management commands.
func addSessionCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Trading session management",
		Long:  "Create, select, rename and delete trading sessions.",
	}

	cmd.AddCommand(newSessionNewCmd(app))
	cmd.AddCommand(newSessionListCmd(app))
	cmd.AddCommand(newSessionSelectCmd(app))
	cmd.AddCommand(newSessionRenameCmd(app))
	cmd.AddCommand(newSessionDeleteCmd(app))

	rootCmd.AddCommand(cmd)
}

func newSessionNewCmd(app *App) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a new trading session",
		Long:  "Create a new session named after today's date, and make it active.",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			label := dates.TodayLabel(app.Config.UI.Timezone)
			if name == "" {
				name = label
			}

			s := app.State.CreateSession(name, label)
			if err := app.State.SelectSession(s.ID); err != nil {
				return err
			}

			app.Logger.Info().Str("session_id", s.ID).Str("name", s.Name).Msg("Session created")

			if output.IsJSON() {
				return output.JSON(s)
			}
			output.Success("Created session %q (%s)", s.Name, s.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Session name (defaults to today's date)")
	return cmd
}

func newSessionListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			sessions := app.State.Sessions()
			if output.IsJSON() {
				return output.JSON(sessions)
			}

			if len(sessions) == 0 {
				output.Info("No sessions yet. Create one with 'tracker session new'.")
				return nil
			}

			appState := app.State.State()
			table := NewTable(output, "", "ID", "Name", "Date", "Trades")
			for _, s := range sessions {
				marker := " "
				if appState.ActiveSessionID != nil && *appState.ActiveSessionID == s.ID {
					marker = "*"
				}
				table.AddRow(marker, s.ID, s.Name, s.Date, fmt.Sprintf("%d", len(s.Trades)))
			}
			table.Render()
			return nil
		},
	}
}

func newSessionSelectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "select <session-id>",
		Short: "Select the active session",
		Long:  "Make a session active. Pass '-' to clear the selection.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			id := args[0]
			if id == "-" {
				id = ""
			}
			if err := app.State.SelectSession(id); err != nil {
				return err
			}

			if id == "" {
				output.Success("Cleared active session")
			} else {
				output.Success("Selected session %s", id)
			}
			return nil
		},
	}
}

func newSessionRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <session-id> <name>",
		Short: "Rename a session",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			if err := app.State.RenameSession(args[0], args[1]); err != nil {
				return err
			}
			output.Success("Renamed session %s to %q", args[0], args[1])
			return nil
		},
	}
}

func newSessionDeleteCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <session-id>",
		Short: "Delete a session and all of its trades",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			s, err := app.State.Session(args[0])
			if err != nil {
				return err
			}
			if len(s.Trades) > 0 && !force {
				return fmt.Errorf("session %q contains %d trades; use --force to delete anyway", s.Name, len(s.Trades))
			}

			if err := app.State.DeleteSession(s.ID); err != nil {
				return err
			}
			app.Logger.Info().Str("session_id", s.ID).Int("trades", len(s.Trades)).Msg("Session deleted")
			output.Success("Deleted session %q and %d trades", s.Name, len(s.Trades))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Delete even if the session contains trades")
	return cmd
}

// resolveSession returns the session named by id, or the active session when
// id is empty.
func resolveSession(app *App, id string) (string, error) {
	if id != "" {
		s, err := app.State.Session(id)
		if err != nil {
			return "", err
		}
		return s.ID, nil
	}
	s, err := app.State.ActiveSession()
	if err != nil {
		return "", err
	}
	return s.ID, nil
}
