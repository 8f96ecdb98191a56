// Package migrate normalizes persisted state of any previous schema version
// to the current one.
//
// Input is the untyped tree produced by decoding whatever JSON was last
// persisted, possibly written by an older version of the application or
// edited by hand. Migrate is total: malformed or missing fields degrade to
// safe defaults instead of aborting the load. It is also idempotent, so
// already-current data passes through unchanged.
package migrate

import (
	"encoding/json"

	"trade-tracker/internal/models"
)

// Migrate converts a raw deserialized value to the current AppState schema.
// It never panics for any JSON-decodable input.
func Migrate(v any) models.AppState {
	root, ok := v.(map[string]any)
	if !ok {
		return models.DefaultAppState()
	}

	state := models.AppState{Sessions: []models.Session{}}

	if id, ok := root["activeSessionId"].(string); ok {
		state.ActiveSessionID = &id
	}

	rawSessions, _ := root["sessions"].([]any)
	for _, rs := range rawSessions {
		if sm, ok := rs.(map[string]any); ok {
			state.Sessions = append(state.Sessions, migrateSession(sm))
		}
	}

	return state
}

func migrateSession(m map[string]any) models.Session {
	s := models.Session{
		ID:        asString(m["id"]),
		Name:      asString(m["name"]),
		Date:      asString(m["date"]),
		CreatedAt: asInt64(m["createdAt"]),
		Trades:    []models.Trade{},
	}

	rawTrades, _ := m["trades"].([]any)
	for _, rt := range rawTrades {
		if tm, ok := rt.(map[string]any); ok {
			s.Trades = append(s.Trades, migrateTrade(tm))
		}
	}

	return s
}

// migrateTrade applies the per-trade normalization rules:
//
//   - feedbackAnalysis: stored array kept; legacy scalar string wrapped in a
//     one-element slice; anything else becomes empty.
//   - lessonsLearned: stored array kept; anything else becomes empty.
//   - emotionalState: stored string kept; anything else becomes "".
//
// Every other field has been stable since the schema's inception and passes
// through with type-checked extraction.
func migrateTrade(m map[string]any) models.Trade {
	t := models.Trade{
		ID:               asString(m["id"]),
		Txn:              asString(m["txn"]),
		Ticker:           asString(m["ticker"]),
		Status:           models.TradeStatus(asString(m["status"])),
		PercentageChange: asFloat64(m["percentageChange"]),
		DollarChange:     asFloat64(m["dollarChange"]),
		Description:      asString(m["description"]),
		Timestamp:        asInt64(m["timestamp"]),
		ChartURL:         asString(m["chartUrl"]),
		Actions:          asStringSlice(m["actions"]),
		ExpectedOutcome:  asString(m["expectedOutcome"]),
		ActualOutcome:    asString(m["actualOutcome"]),
		EmotionalState:   asString(m["emotionalState"]),
	}

	switch fa := m["feedbackAnalysis"].(type) {
	case []any:
		t.FeedbackAnalysis = stringElements(fa)
	case string:
		if fa != "" {
			t.FeedbackAnalysis = []string{fa}
		} else {
			t.FeedbackAnalysis = []string{}
		}
	default:
		t.FeedbackAnalysis = []string{}
	}

	if ll, ok := m["lessonsLearned"].([]any); ok {
		t.LessonsLearned = stringElements(ll)
	} else {
		t.LessonsLearned = []string{}
	}

	return t
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

// asFloat64 accepts both plain float64 decodes and json.Number decodes.
func asFloat64(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case json.Number:
		f, _ := n.Float64()
		return f
	default:
		return 0
	}
}

// asInt64 reads a millisecond timestamp; json.Number preserves full
// precision, a float64 decode is truncated.
func asInt64(v any) int64 {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i
		}
		f, _ := n.Float64()
		return int64(f)
	case float64:
		return int64(n)
	default:
		return 0
	}
}

func asStringSlice(v any) []string {
	raw, ok := v.([]any)
	if !ok {
		return []string{}
	}
	return stringElements(raw)
}

// stringElements keeps the string members of a raw array and drops anything
// mistyped rather than failing the whole load.
func stringElements(raw []any) []string {
	out := make([]string, 0, len(raw))
	for _, e := range raw {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
