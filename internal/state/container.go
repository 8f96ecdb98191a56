// Package state provides the application state container: the single owner
// of the in-memory AppState and the only writer to the persistence gateway.
//
// Every mutation replaces the affected collections and persists the whole
// tree. The environment is single-threaded by design, so the container takes
// no locks.
package state

import (
	"fmt"
	"sort"

	apperrors "trade-tracker/internal/errors"
	"trade-tracker/internal/models"
	"trade-tracker/internal/store"
)

// Container holds the live AppState and persists every mutation through the
// gateway.
type Container struct {
	gateway *store.Gateway
	state   models.AppState
}

// NewContainer loads the persisted state through gw and wraps it.
func NewContainer(gw *store.Gateway) *Container {
	return &Container{
		gateway: gw,
		state:   gw.Load(),
	}
}

// State returns a copy of the current application state.
func (c *Container) State() models.AppState {
	return c.state
}

// Replace adopts an imported state wholesale and persists it.
func (c *Container) Replace(s models.AppState) {
	c.state = s
	c.persist()
}

// CreateSession creates a new empty session and persists it.
func (c *Container) CreateSession(name, date string) models.Session {
	s := models.NewSession(name, date)
	c.state.Sessions = append(c.state.Sessions, s)
	c.persist()
	return s
}

// DeleteSession removes the session with the given id. Deletion cascades to
// every trade the session contains. If the deleted session was active, the
// active selection is cleared.
func (c *Container) DeleteSession(id string) error {
	idx := c.sessionIndex(id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrSessionNotFound, id)
	}

	c.state.Sessions = append(c.state.Sessions[:idx], c.state.Sessions[idx+1:]...)
	if c.state.ActiveSessionID != nil && *c.state.ActiveSessionID == id {
		c.state.ActiveSessionID = nil
	}
	c.persist()
	return nil
}

// RenameSession changes the display name of a session.
func (c *Container) RenameSession(id, name string) error {
	idx := c.sessionIndex(id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrSessionNotFound, id)
	}
	c.state.Sessions[idx].Name = name
	c.persist()
	return nil
}

// SelectSession makes the session with the given id active. An empty id
// clears the selection.
func (c *Container) SelectSession(id string) error {
	if id == "" {
		c.state.ActiveSessionID = nil
		c.persist()
		return nil
	}
	if c.sessionIndex(id) < 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrSessionNotFound, id)
	}
	c.state.ActiveSessionID = &id
	c.persist()
	return nil
}

// Sessions returns all sessions in insertion order.
func (c *Container) Sessions() []models.Session {
	return c.state.Sessions
}

// Session returns the session with the given id.
func (c *Container) Session(id string) (models.Session, error) {
	idx := c.sessionIndex(id)
	if idx < 0 {
		return models.Session{}, fmt.Errorf("%w: %s", apperrors.ErrSessionNotFound, id)
	}
	return c.state.Sessions[idx], nil
}

// ActiveSession returns the currently selected session.
func (c *Container) ActiveSession() (models.Session, error) {
	if c.state.ActiveSessionID == nil {
		return models.Session{}, apperrors.ErrNoActiveSession
	}
	return c.Session(*c.state.ActiveSessionID)
}

// AddTrade creates a trade from in inside the given session and persists.
func (c *Container) AddTrade(sessionID string, in models.TradeInput) (models.Trade, error) {
	idx := c.sessionIndex(sessionID)
	if idx < 0 {
		return models.Trade{}, fmt.Errorf("%w: %s", apperrors.ErrSessionNotFound, sessionID)
	}

	t := models.NewTrade(in)
	c.state.Sessions[idx].Trades = append(c.state.Sessions[idx].Trades, t)
	c.persist()
	return t, nil
}

// UpdateTrade replaces the trade with updated.ID inside the given session.
func (c *Container) UpdateTrade(sessionID string, updated models.Trade) error {
	idx := c.sessionIndex(sessionID)
	if idx < 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrSessionNotFound, sessionID)
	}

	trades := c.state.Sessions[idx].Trades
	for i := range trades {
		if trades[i].ID == updated.ID {
			trades[i] = updated
			c.persist()
			return nil
		}
	}
	return fmt.Errorf("%w: %s", apperrors.ErrTradeNotFound, updated.ID)
}

// DeleteTrade removes the trade with the given id from its session.
func (c *Container) DeleteTrade(sessionID, tradeID string) error {
	idx := c.sessionIndex(sessionID)
	if idx < 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrSessionNotFound, sessionID)
	}

	trades := c.state.Sessions[idx].Trades
	for i := range trades {
		if trades[i].ID == tradeID {
			c.state.Sessions[idx].Trades = append(trades[:i], trades[i+1:]...)
			c.persist()
			return nil
		}
	}
	return fmt.Errorf("%w: %s", apperrors.ErrTradeNotFound, tradeID)
}

// Trade returns the trade with the given id from the given session.
func (c *Container) Trade(sessionID, tradeID string) (models.Trade, error) {
	idx := c.sessionIndex(sessionID)
	if idx < 0 {
		return models.Trade{}, fmt.Errorf("%w: %s", apperrors.ErrSessionNotFound, sessionID)
	}
	if t := c.state.Sessions[idx].TradeByID(tradeID); t != nil {
		return *t, nil
	}
	return models.Trade{}, fmt.Errorf("%w: %s", apperrors.ErrTradeNotFound, tradeID)
}

// TradesForDisplay returns a session's trades sorted by timestamp
// descending, the order the journal is reviewed in. Stored order is not
// semantically meaningful.
func TradesForDisplay(s models.Session) []models.Trade {
	out := make([]models.Trade, len(s.Trades))
	copy(out, s.Trades)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp > out[j].Timestamp
	})
	return out
}

func (c *Container) sessionIndex(id string) int {
	for i := range c.state.Sessions {
		if c.state.Sessions[i].ID == id {
			return i
		}
	}
	return -1
}

func (c *Container) persist() {
	c.gateway.Save(c.state)
}
