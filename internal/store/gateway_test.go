package store

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trade-tracker/internal/kv"
	"trade-tracker/internal/models"
)

// failingStore rejects selected operations, standing in for a broken disk or
// exhausted quota.
type failingStore struct {
	inner  kv.Store
	getErr error
	setErr error
}

func (f *failingStore) Get(key string) (string, bool, error) {
	if f.getErr != nil {
		return "", false, f.getErr
	}
	return f.inner.Get(key)
}

func (f *failingStore) Set(key, value string) error {
	if f.setErr != nil {
		return f.setErr
	}
	return f.inner.Set(key, value)
}

func (f *failingStore) Close() error { return nil }

// countingReporter records swallowed failures for assertions.
type countingReporter struct {
	calls []string
}

func (c *countingReporter) report(op string, err error) {
	c.calls = append(c.calls, op)
}

func newTestGateway(st kv.Store, rep *countingReporter) *Gateway {
	return NewGateway(st, zerolog.Nop(), WithReporter(rep.report))
}

func sampleState() models.AppState {
	active := "session-1"
	return models.AppState{
		ActiveSessionID: &active,
		Sessions: []models.Session{{
			ID: "session-1", Name: "01.02.2024", Date: "01.02.2024", CreatedAt: 1704153600000,
			Trades: []models.Trade{{
				ID: "trade-1", Ticker: "AAPL", Status: models.StatusWin,
				PercentageChange: 2.5, DollarChange: 120.5,
				Description: "breakout", Timestamp: 1704153700000,
				Actions:          []string{"entered"},
				FeedbackAnalysis: []string{"good entry"},
				LessonsLearned:   []string{},
			}},
		}},
	}
}

func TestLoadMissingKeyReturnsDefault(t *testing.T) {
	rep := &countingReporter{}
	g := newTestGateway(kv.NewMemoryStore(), rep)

	state := g.Load()

	assert.Equal(t, models.DefaultAppState(), state)
	assert.Empty(t, rep.calls, "a missing key is not a failure")
}

func TestLoadCorruptValueReturnsDefaultAndReportsOnce(t *testing.T) {
	mem := kv.NewMemoryStore()
	require.NoError(t, mem.Set(StorageKey, "not json{"))

	rep := &countingReporter{}
	g := newTestGateway(mem, rep)

	state := g.Load()

	assert.Equal(t, models.DefaultAppState(), state)
	assert.Equal(t, []string{"load"}, rep.calls)

	// The corrupt value stays put for manual recovery.
	raw, ok, err := mem.Get(StorageKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "not json{", raw)
}

func TestLoadReadErrorReturnsDefaultAndReports(t *testing.T) {
	rep := &countingReporter{}
	g := newTestGateway(&failingStore{inner: kv.NewMemoryStore(), getErr: errors.New("disk gone")}, rep)

	state := g.Load()

	assert.Equal(t, models.DefaultAppState(), state)
	assert.Equal(t, []string{"load"}, rep.calls)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	rep := &countingReporter{}
	g := newTestGateway(kv.NewMemoryStore(), rep)

	want := sampleState()
	g.Save(want)
	got := g.Load()

	assert.Equal(t, want, got)
	assert.Empty(t, rep.calls)
}

func TestSaveWriteFailureIsSwallowedAndReported(t *testing.T) {
	rep := &countingReporter{}
	g := newTestGateway(&failingStore{inner: kv.NewMemoryStore(), setErr: errors.New("quota exceeded")}, rep)

	state := sampleState()
	before := sampleState()

	g.Save(state)

	assert.Equal(t, []string{"save"}, rep.calls)
	// The input is not mutated or rolled back.
	assert.Equal(t, before, state)
}

func TestLoadMigratesLegacyStoredValue(t *testing.T) {
	mem := kv.NewMemoryStore()
	legacy := `{
		"sessions": [{
			"id": "s1", "name": "n", "date": "d", "createdAt": 1,
			"trades": [{
				"id": "t1", "ticker": "GME", "status": "loss",
				"percentageChange": -12, "dollarChange": -400,
				"description": "held too long", "timestamp": 2,
				"feedbackAnalysis": "should have sold"
			}]
		}],
		"activeSessionId": "s1"
	}`
	require.NoError(t, mem.Set(StorageKey, legacy))

	rep := &countingReporter{}
	g := newTestGateway(mem, rep)

	state := g.Load()

	require.Len(t, state.Sessions, 1)
	trade := state.Sessions[0].Trades[0]
	assert.Equal(t, []string{"should have sold"}, trade.FeedbackAnalysis)
	assert.Equal(t, []string{}, trade.LessonsLearned)
	assert.Equal(t, "", trade.EmotionalState)
	assert.Empty(t, rep.calls)
}

func TestGatewayCustomKey(t *testing.T) {
	mem := kv.NewMemoryStore()
	g := NewGateway(mem, zerolog.Nop(), WithKey("alt-key"))

	g.Save(sampleState())

	_, ok, err := mem.Get("alt-key")
	require.NoError(t, err)
	assert.True(t, ok)
}
