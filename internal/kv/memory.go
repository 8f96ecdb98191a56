package kv

// MemoryStore is a map-backed Store for tests and ephemeral runs.
type MemoryStore struct {
	values map[string]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) (string, bool, error) {
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(key, value string) error {
	s.values[key] = value
	return nil
}

func (s *MemoryStore) Close() error { return nil }
