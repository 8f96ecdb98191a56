package models

import (
	"time"

	"github.com/google/uuid"
)

// TradeInput carries every caller-supplied trade field. Identity and creation
// time are assigned by NewTrade, never by the caller.
type TradeInput struct {
	Txn              string
	Ticker           string
	Status           TradeStatus
	PercentageChange float64
	DollarChange     float64
	Description      string
	ChartURL         string
	Actions          []string
	ExpectedOutcome  string
	ActualOutcome    string
	FeedbackAnalysis []string
	LessonsLearned   []string
	EmotionalState   string
}

// NewTrade builds a complete trade from in, assigning a fresh unique id and
// the current timestamp. It performs no validation; the form layer is
// responsible for non-empty ticker and description.
func NewTrade(in TradeInput) Trade {
	return Trade{
		ID:               "trade-" + uuid.NewString(),
		Txn:              in.Txn,
		Ticker:           in.Ticker,
		Status:           in.Status,
		PercentageChange: in.PercentageChange,
		DollarChange:     in.DollarChange,
		Description:      in.Description,
		Timestamp:        nowMillis(),
		ChartURL:         in.ChartURL,
		Actions:          emptyIfNil(in.Actions),
		ExpectedOutcome:  in.ExpectedOutcome,
		ActualOutcome:    in.ActualOutcome,
		FeedbackAnalysis: emptyIfNil(in.FeedbackAnalysis),
		LessonsLearned:   emptyIfNil(in.LessonsLearned),
		EmotionalState:   in.EmotionalState,
	}
}

// NewSession builds an empty session with a fresh unique id and the current
// creation timestamp. Name and date are caller-supplied display labels,
// typically both today's date in the configured timezone.
func NewSession(name, date string) Session {
	return Session{
		ID:        "session-" + uuid.NewString(),
		Name:      name,
		Date:      date,
		Trades:    []Trade{},
		CreatedAt: nowMillis(),
	}
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}

// emptyIfNil keeps serialized slices as [] rather than null.
func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
