package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Creating many entities in a tight loop must never reuse an id; the
// original date-suffix scheme failed this under quick-add bursts.
func TestNewTradeIDsUniqueUnderRapidCreation(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		trade := NewTrade(TradeInput{Ticker: "SPY", Status: StatusWin})
		_, dup := seen[trade.ID]
		require.False(t, dup, "duplicate trade id %s", trade.ID)
		seen[trade.ID] = struct{}{}
	}
}

func TestNewSessionIDsUniqueUnderRapidCreation(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		s := NewSession("01.02.2024", "01.02.2024")
		_, dup := seen[s.ID]
		require.False(t, dup, "duplicate session id %s", s.ID)
		seen[s.ID] = struct{}{}
	}
}

func TestNewTradeFillsIdentityAndDefaults(t *testing.T) {
	trade := NewTrade(TradeInput{
		Ticker:      "AAPL",
		Status:      StatusLoss,
		Description: "chased the open",
	})

	assert.NotEmpty(t, trade.ID)
	assert.Greater(t, trade.Timestamp, int64(0))
	assert.Equal(t, "AAPL", trade.Ticker)
	assert.Equal(t, StatusLoss, trade.Status)

	// Slices serialize as [] rather than null.
	assert.NotNil(t, trade.Actions)
	assert.NotNil(t, trade.FeedbackAnalysis)
	assert.NotNil(t, trade.LessonsLearned)
}

func TestNewSessionStartsEmpty(t *testing.T) {
	s := NewSession("name", "01.02.2024")

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, "name", s.Name)
	assert.Equal(t, "01.02.2024", s.Date)
	assert.Greater(t, s.CreatedAt, int64(0))
	assert.NotNil(t, s.Trades)
	assert.Empty(t, s.Trades)
}

func TestValidEmotionalState(t *testing.T) {
	assert.True(t, ValidEmotionalState(""))
	assert.True(t, ValidEmotionalState("rage"))
	assert.True(t, ValidEmotionalState("calculated"))
	assert.False(t, ValidEmotionalState("euphoric"))
}

func TestTradeStatusValid(t *testing.T) {
	assert.True(t, StatusWin.Valid())
	assert.True(t, StatusLoss.Valid())
	assert.False(t, TradeStatus("breakeven").Valid())
	assert.False(t, TradeStatus("").Valid())
}
