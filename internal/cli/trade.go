package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	apperrors "trade-tracker/internal/errors"
	"trade-tracker/internal/models"
	"trade-tracker/internal/state"
)

// addTradeCommands adds trade management commands.
func addTradeCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "trade",
		Short: "Trade logging and management",
		Long:  "Log, list, edit and delete trades within a session.",
	}

	cmd.AddCommand(newTradeAddCmd(app))
	cmd.AddCommand(newTradeListCmd(app))
	cmd.AddCommand(newTradeShowCmd(app))
	cmd.AddCommand(newTradeEditCmd(app))
	cmd.AddCommand(newTradeDeleteCmd(app))

	rootCmd.AddCommand(cmd)
}

// tradeFlags holds the caller-supplied trade fields shared by add and edit.
type tradeFlags struct {
	sessionID   string
	txn         string
	ticker      string
	status      string
	percent     float64
	dollars     float64
	description string
	chartURL    string
	emotion     string
}

func (f *tradeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.sessionID, "session", "s", "", "Session id (defaults to the active session)")
	cmd.Flags().StringVar(&f.txn, "txn", "", "External transaction reference")
	cmd.Flags().StringVarP(&f.ticker, "ticker", "t", "", "Ticker symbol")
	cmd.Flags().StringVar(&f.status, "status", "", "Outcome: win or loss")
	cmd.Flags().Float64VarP(&f.percent, "percent", "p", 0, "Percentage change")
	cmd.Flags().Float64VarP(&f.dollars, "dollars", "d", 0, "Dollar change")
	cmd.Flags().StringVarP(&f.description, "description", "m", "", "Trade description")
	cmd.Flags().StringVar(&f.chartURL, "chart", "", "Chart image reference")
	cmd.Flags().StringVarP(&f.emotion, "emotion", "e", "", "Emotional state tag")
}

// validateForm enforces the form-layer rules the entity factory deliberately
// does not: non-empty ticker and description, a known status, and an
// emotional state from the closed set.
func validateForm(ticker, description, status, emotion string) error {
	if strings.TrimSpace(ticker) == "" {
		return fmt.Errorf("%w: ticker is required", apperrors.ErrInputValidation)
	}
	if strings.TrimSpace(description) == "" {
		return fmt.Errorf("%w: description is required", apperrors.ErrInputValidation)
	}
	if !models.TradeStatus(status).Valid() {
		return fmt.Errorf("%w: status must be win or loss", apperrors.ErrInputValidation)
	}
	if !models.ValidEmotionalState(emotion) {
		var tags []string
		for _, opt := range models.EmotionOptions {
			tags = append(tags, opt.Value)
		}
		return fmt.Errorf("%w: emotion must be one of %s", apperrors.ErrInputValidation, strings.Join(tags, ", "))
	}
	return nil
}

func newTradeAddCmd(app *App) *cobra.Command {
	var flags tradeFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Log a trade in the active session",
		Long: `Log a trade in a session (quick add).

Reflection fields (actions, outcomes, feedback, lessons) are edited
afterwards with 'tracker report'.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			sessionID, err := resolveSession(app, flags.sessionID)
			if err != nil {
				return err
			}
			if err := validateForm(flags.ticker, flags.description, flags.status, flags.emotion); err != nil {
				return err
			}

			t, err := app.State.AddTrade(sessionID, models.TradeInput{
				Txn:              flags.txn,
				Ticker:           flags.ticker,
				Status:           models.TradeStatus(flags.status),
				PercentageChange: flags.percent,
				DollarChange:     flags.dollars,
				Description:      flags.description,
				ChartURL:         flags.chartURL,
				EmotionalState:   flags.emotion,
			})
			if err != nil {
				return err
			}

			app.Logger.Info().Str("trade_id", t.ID).Str("ticker", t.Ticker).Msg("Trade logged")

			if output.IsJSON() {
				return output.JSON(t)
			}
			output.Success("Logged %s %s %s (%s)", t.Ticker, output.StatusTag(string(t.Status)), output.FormatDollars(t.DollarChange), t.ID)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func newTradeListCmd(app *App) *cobra.Command {
	var sessionID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List trades in a session, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			id, err := resolveSession(app, sessionID)
			if err != nil {
				return err
			}
			session, err := app.State.Session(id)
			if err != nil {
				return err
			}

			trades := state.TradesForDisplay(session)
			if output.IsJSON() {
				return output.JSON(trades)
			}

			output.Bold("Session %q - %d trades", session.Name, len(trades))
			if len(trades) == 0 {
				output.Info("No trades yet. Log one with 'tracker trade add'.")
				return nil
			}

			table := NewTable(output, "Time", "Ticker", "Status", "%", "$", "Emotion", "Description")
			for _, t := range trades {
				table.AddRow(
					FormatTimestamp(t.Timestamp),
					t.Ticker,
					output.StatusTag(string(t.Status)),
					output.FormatPercent(t.PercentageChange),
					output.FormatDollars(t.DollarChange),
					emotionLabel(t.EmotionalState),
					TruncateString(t.Description, 40),
				)
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().StringVarP(&sessionID, "session", "s", "", "Session id (defaults to the active session)")
	return cmd
}

func newTradeShowCmd(app *App) *cobra.Command {
	var sessionID string

	cmd := &cobra.Command{
		Use:   "show <trade-id>",
		Short: "Show a trade in full",
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

func newTradeEditCmd(app *App) *cobra.Command {
	var flags tradeFlags

	cmd := &cobra.Command{
		Use:   "edit <trade-id>",
		Short: "Edit a trade's core fields",
		Long:  "Update the core fields of a trade. Only the flags given are changed.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			sessionID, err := resolveSession(app, flags.sessionID)
			if err != nil {
				return err
			}
			t, err := app.State.Trade(sessionID, args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("txn") {
				t.Txn = flags.txn
			}
			if cmd.Flags().Changed("ticker") {
				t.Ticker = flags.ticker
			}
			if cmd.Flags().Changed("status") {
				t.Status = models.TradeStatus(flags.status)
			}
			if cmd.Flags().Changed("percent") {
				t.PercentageChange = flags.percent
			}
			if cmd.Flags().Changed("dollars") {
				t.DollarChange = flags.dollars
			}
			if cmd.Flags().Changed("description") {
				t.Description = flags.description
			}
			if cmd.Flags().Changed("chart") {
				t.ChartURL = flags.chartURL
			}
			if cmd.Flags().Changed("emotion") {
				t.EmotionalState = flags.emotion
			}

			if err := validateForm(t.Ticker, t.Description, string(t.Status), t.EmotionalState); err != nil {
				return err
			}
			if err := app.State.UpdateTrade(sessionID, t); err != nil {
				return err
			}

			output.Success("Updated trade %s", t.ID)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func newTradeDeleteCmd(app *App) *cobra.Command {
	var sessionID string

	cmd := &cobra.Command{
		Use:   "delete <trade-id>",
		Short: "Delete a trade",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			id, err := resolveSession(app, sessionID)
			if err != nil {
				return err
			}
			if err := app.State.DeleteTrade(id, args[0]); err != nil {
				return err
			}

			app.Logger.Info().Str("trade_id", args[0]).Msg("Trade deleted")
			output.Success("Deleted trade %s", args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&sessionID, "session", "s", "", "Session id (defaults to the active session)")
	return cmd
}

// printTrade renders the full trade record, reflection fields included.
func printTrade(output *Output, t models.Trade) {
	output.Bold("%s  %s  %s / %s", t.Ticker, output.StatusTag(string(t.Status)),
		output.FormatDollars(t.DollarChange), output.FormatPercent(t.PercentageChange))
	output.Dim("%s  %s", t.ID, FormatTimestamp(t.Timestamp))
	output.Println()

	output.Printf("  Description:      %s\n", t.Description)
	if t.Txn != "" {
		output.Printf("  Txn:              %s\n", t.Txn)
	}
	if t.ChartURL != "" {
		output.Printf("  Chart:            %s\n", TruncateString(t.ChartURL, 60))
	}
	output.Printf("  Emotion:          %s\n", emotionLabel(t.EmotionalState))
	output.Printf("  Actions:          %s\n", FormatList(t.Actions))
	output.Printf("  Expected outcome: %s\n", orDash(t.ExpectedOutcome))
	output.Printf("  Actual outcome:   %s\n", orDash(t.ActualOutcome))
	output.Printf("  Feedback:         %s\n", FormatList(t.FeedbackAnalysis))
	output.Printf("  Lessons learned:  %s\n", FormatList(t.LessonsLearned))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// emotionLabel renders an emotional-state tag with its emoji.
func emotionLabel(v string) string {
	for _, opt := range models.EmotionOptions {
		if opt.Value == v {
			return opt.Emoji + " " + opt.Value
		}
	}
	return "-"
}
