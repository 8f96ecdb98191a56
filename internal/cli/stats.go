package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"trade-tracker/internal/models"
)

// sessionStats summarizes one session's trades.
type sessionStats struct {
	Session      string  `json:"session"`
	Trades       int     `json:"trades"`
	Wins         int     `json:"wins"`
	Losses       int     `json:"losses"`
	WinRate      float64 `json:"winRate"`
	TotalDollars float64 `json:"totalDollars"`
	TotalPercent float64 `json:"totalPercent"`
}

func computeStats(s models.Session) sessionStats {
	st := sessionStats{Session: s.Name, Trades: len(s.Trades)}
	for _, t := range s.Trades {
		if t.Status == models.StatusWin {
			st.Wins++
		} else {
			st.Losses++
		}
		st.TotalDollars += t.DollarChange
		st.TotalPercent += t.PercentageChange
	}
	if st.Trades > 0 {
		st.WinRate = float64(st.Wins) / float64(st.Trades) * 100
	}
	return st
}

// addStatsCommand adds the session summary command.
func addStatsCommand(rootCmd *cobra.Command, app *App) {
	var sessionID string
	var all bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Session win rate and P&L summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			var sessions []models.Session
			if all {
				sessions = app.State.Sessions()
			} else {
				id, err := resolveSession(app, sessionID)
				if err != nil {
					return err
				}
				s, err := app.State.Session(id)
				if err != nil {
					return err
				}
				sessions = []models.Session{s}
			}

			stats := make([]sessionStats, 0, len(sessions))
			for _, s := range sessions {
				stats = append(stats, computeStats(s))
			}

			if output.IsJSON() {
				return output.JSON(stats)
			}

			table := NewTable(output, "Session", "Trades", "Wins", "Losses", "Win rate", "$", "%")
			for _, st := range stats {
				table.AddRow(
					st.Session,
					fmt.Sprintf("%d", st.Trades),
					fmt.Sprintf("%d", st.Wins),
					fmt.Sprintf("%d", st.Losses),
					fmt.Sprintf("%.1f%%", st.WinRate),
					output.FormatDollars(st.TotalDollars),
					output.FormatPercent(st.TotalPercent),
				)
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().StringVarP(&sessionID, "session", "s", "", "Session id (defaults to the active session)")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Summarize every session")
	rootCmd.AddCommand(cmd)
}
