// Package models provides domain models for the trade tracker.
package models

// TradeStatus represents the outcome of a trade.
type TradeStatus string

const (
	StatusWin  TradeStatus = "win"
	StatusLoss TradeStatus = "loss"
)

// Valid reports whether s is one of the known trade outcomes.
func (s TradeStatus) Valid() bool {
	return s == StatusWin || s == StatusLoss
}

// EmotionOption describes one entry of the closed emotional-state set.
type EmotionOption struct {
	Value   string
	Emoji   string
	Tooltip string
}

// EmotionOptions is the closed set of emotional-state tags a trade may carry.
// The empty string (unset) is also accepted everywhere a tag is.
var EmotionOptions = []EmotionOption{
	{Value: "rage", Emoji: "😡", Tooltip: "Rage trade"},
	{Value: "desperation", Emoji: "😰", Tooltip: "Desperate"},
	{Value: "neutral", Emoji: "😐", Tooltip: "Neutral"},
	{Value: "relaxed", Emoji: "😌", Tooltip: "Relaxed"},
	{Value: "calculated", Emoji: "🎯", Tooltip: "Calculated"},
}

// ValidEmotionalState reports whether v is in the closed emotional-state set
// or the unset empty string.
func ValidEmotionalState(v string) bool {
	if v == "" {
		return true
	}
	for _, opt := range EmotionOptions {
		if opt.Value == v {
			return true
		}
	}
	return false
}

// AppState is the persisted root of the application: every session and every
// trade, plus the current selection. It is always serialized as one tree.
type AppState struct {
	Sessions        []Session `json:"sessions"`
	ActiveSessionID *string   `json:"activeSessionId"`
}

// DefaultAppState returns the empty state used when nothing has been
// persisted yet, or when the persisted value cannot be read.
func DefaultAppState() AppState {
	return AppState{Sessions: []Session{}, ActiveSessionID: nil}
}
