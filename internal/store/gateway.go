// Package store provides the persistence gateway: the single load/save
// boundary between the in-memory application state and the key-value store.
//
// Every read of persisted state flows through the schema migrator, and every
// failure is swallowed into the diagnostic reporter rather than surfaced to
// the caller. Persistence is best effort: a failed save leaves the running
// state intact and unsaved.
package store

import (
	"encoding/json"
	"strings"

	"github.com/rs/zerolog"

	"trade-tracker/internal/kv"
	"trade-tracker/internal/migrate"
	"trade-tracker/internal/models"
)

// StorageKey is the fixed key the whole application state is stored under.
const StorageKey = "trade-tracker-data"

// Reporter receives diagnostic notice of swallowed persistence failures.
// op is "load" or "save".
type Reporter func(op string, err error)

// Gateway serializes the application state to and from a key-value store.
type Gateway struct {
	kv     kv.Store
	key    string
	report Reporter
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithKey overrides the storage key.
func WithKey(key string) Option {
	return func(g *Gateway) { g.key = key }
}

// WithReporter sets the diagnostic reporter for swallowed failures.
func WithReporter(r Reporter) Option {
	return func(g *Gateway) { g.report = r }
}

// NewGateway creates a gateway over st. Swallowed failures are logged
// through logger unless a reporter option replaces that.
func NewGateway(st kv.Store, logger zerolog.Logger, opts ...Option) *Gateway {
	g := &Gateway{
		kv:  st,
		key: StorageKey,
		report: func(op string, err error) {
			logger.Error().Err(err).Str("op", op).Msg("State persistence failed")
		},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Load reads, parses and migrates the persisted state. A missing key yields
// the default empty state. A read or parse failure is reported once and also
// yields the default empty state; the stored value is left untouched so
// manual recovery stays possible. Load never fails from the caller's
// perspective.
func (g *Gateway) Load() models.AppState {
	raw, ok, err := g.kv.Get(g.key)
	if err != nil {
		g.report("load", err)
		return models.DefaultAppState()
	}
	if !ok {
		return models.DefaultAppState()
	}

	v, err := decode(raw)
	if err != nil {
		g.report("load", err)
		return models.DefaultAppState()
	}

	return migrate.Migrate(v)
}

// Save serializes state and writes it under the fixed key, replacing the
// previous value wholesale. A write failure (e.g. disk full) is reported and
// otherwise ignored: the in-memory state keeps working and will simply not
// survive a reload. Save never fails from the caller's perspective.
func (g *Gateway) Save(state models.AppState) {
	data, err := json.Marshal(state)
	if err != nil {
		g.report("save", err)
		return
	}
	if err := g.kv.Set(g.key, string(data)); err != nil {
		g.report("save", err)
	}
}

// decode parses JSON into an untyped tree for the migrator. UseNumber keeps
// millisecond timestamps exact.
func decode(raw string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
