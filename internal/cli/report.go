package cli

import (
	"github.com/spf13/cobra"

	"trade-tracker/internal/models"
)

// addReportCommands adds the detailed trade report commands: the reflection
// surface (actions, outcomes, feedback, lessons) attached to each trade.
func addReportCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Detailed trade reports",
		Long:  "Show and edit the reflection fields attached to a trade.",
	}

	cmd.AddCommand(newReportShowCmd(app))
	cmd.AddCommand(newReportActionCmd(app))
	cmd.AddCommand(newReportOutcomeCmd(app))
	cmd.AddCommand(newReportFeedbackCmd(app))
	cmd.AddCommand(newReportLessonCmd(app))

	rootCmd.AddCommand(cmd)
}

// withTrade looks up a trade, applies fn to it and persists the result.
func withTrade(app *App, sessionFlag, tradeID string, fn func(*models.Trade)) (models.Trade, error) {
	sessionID, err := resolveSession(app, sessionFlag)
	if err != nil {
		return models.Trade{}, err
	}
	t, err := app.State.Trade(sessionID, tradeID)
	if err != nil {
		return models.Trade{}, err
	}
	fn(&t)
	if err := app.State.UpdateTrade(sessionID, t); err != nil {
		return models.Trade{}, err
	}
	return t, nil
}

func newReportShowCmd(app *App) *cobra.Command {
	var sessionID string

	cmd := &cobra.Command{
		Use:   "show <trade-id>",
		Short: "Show a trade's full report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			id, err := resolveSession(app, sessionID)
			if err != nil {
				return err
			}
			t, err := app.State.Trade(id, args[0])
			if err != nil {
				return err
			}

			if output.IsJSON() {
				return output.JSON(t)
			}
			printTrade(output, t)
			return nil
		},
	}

	cmd.Flags().StringVarP(&sessionID, "session", "s", "", "Session id (defaults to the active session)")
	return cmd
}

func newReportActionCmd(app *App) *cobra.Command {
	var sessionID string

	cmd := &cobra.Command{
		Use:   "action <trade-id> <text>",
		Short: "Append an action taken during the trade",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			t, err := withTrade(app, sessionID, args[0], func(t *models.Trade) {
				t.Actions = append(t.Actions, args[1])
			})
			if err != nil {
				return err
			}
			output.Success("Recorded action %d on %s", len(t.Actions), t.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&sessionID, "session", "s", "", "Session id (defaults to the active session)")
	return cmd
}

func newReportOutcomeCmd(app *App) *cobra.Command {
	var sessionID, expected, actual string

	cmd := &cobra.Command{
		Use:   "outcome <trade-id>",
		Short: "Set the expected and actual outcome",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			t, err := withTrade(app, sessionID, args[0], func(t *models.Trade) {
				if cmd.Flags().Changed("expected") {
					t.ExpectedOutcome = expected
				}
				if cmd.Flags().Changed("actual") {
					t.ActualOutcome = actual
				}
			})
			if err != nil {
				return err
			}
			output.Success("Updated outcomes on %s", t.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&sessionID, "session", "s", "", "Session id (defaults to the active session)")
	cmd.Flags().StringVar(&expected, "expected", "", "What you expected to happen")
	cmd.Flags().StringVar(&actual, "actual", "", "What actually happened")
	return cmd
}

func newReportFeedbackCmd(app *App) *cobra.Command {
	var sessionID string

	cmd := &cobra.Command{
		Use:   "feedback <trade-id> <text>",
		Short: "Append a feedback analysis note",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			t, err := withTrade(app, sessionID, args[0], func(t *models.Trade) {
				t.FeedbackAnalysis = append(t.FeedbackAnalysis, args[1])
			})
			if err != nil {
				return err
			}
			output.Success("Recorded feedback %d on %s", len(t.FeedbackAnalysis), t.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&sessionID, "session", "s", "", "Session id (defaults to the active session)")
	return cmd
}

func newReportLessonCmd(app *App) *cobra.Command {
	var sessionID string

	cmd := &cobra.Command{
		Use:   "lesson <trade-id> <text>",
		Short: "Append a lesson learned",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			t, err := withTrade(app, sessionID, args[0], func(t *models.Trade) {
				t.LessonsLearned = append(t.LessonsLearned, args[1])
			})
			if err != nil {
				return err
			}
			output.Success("Recorded lesson %d on %s", len(t.LessonsLearned), t.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&sessionID, "session", "s", "", "Session id (defaults to the active session)")
	return cmd
}
