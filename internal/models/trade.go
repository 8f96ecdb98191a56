package models

// Trade represents one logged trade event plus its reflection fields.
// Field names follow the persisted wire format; timestamps are milliseconds
// since the Unix epoch.
type Trade struct {
	ID               string      `json:"id"`
	Txn              string      `json:"txn"`
	Ticker           string      `json:"ticker"`
	Status           TradeStatus `json:"status"`
	PercentageChange float64     `json:"percentageChange"`
	DollarChange     float64     `json:"dollarChange"`
	Description      string      `json:"description"`
	Timestamp        int64       `json:"timestamp"`

	// Detailed report fields
	ChartURL         string   `json:"chartUrl,omitempty"`
	Actions          []string `json:"actions"`
	ExpectedOutcome  string   `json:"expectedOutcome"`
	ActualOutcome    string   `json:"actualOutcome"`
	FeedbackAnalysis []string `json:"feedbackAnalysis"`

	// Reflection categories
	LessonsLearned []string `json:"lessonsLearned"`
	EmotionalState string   `json:"emotionalState"`
}

// Session represents a named, dated container of trades, typically one per
// trading day. A trade belongs to exactly one session; removing the session
// removes its trades.
type Session struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Date      string  `json:"date"`
	Trades    []Trade `json:"trades"`
	CreatedAt int64   `json:"createdAt"`
}

// TradeByID returns the trade with the given id, or nil if absent.
func (s *Session) TradeByID(id string) *Trade {
	for i := range s.Trades {
		if s.Trades[i].ID == id {
			return &s.Trades[i]
		}
	}
	return nil
}
