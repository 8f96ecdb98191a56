// Package kv provides the persistent key-value store the journal is saved
// into, with a SQLite-backed implementation for real use and an in-memory
// one for tests.
package kv

// Store is a minimal persistent key-value store. Both operations are
// synchronous; Get reports presence separately from errors so a missing key
// is not a failure.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Close() error
}
