package store

// This file handles the import/export format: the whole AppState as one
// human-readable JSON document. Imported files take the same migration path
// as storage-loaded data, so older exports and hand-edited files are
// upgraded on the way in.

import (
	"encoding/json"
	"fmt"
	"io"

	"trade-tracker/internal/migrate"
	"trade-tracker/internal/models"
)

// Export writes state to w as indented JSON.
func Export(w io.Writer, state models.AppState) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(state); err != nil {
		return fmt.Errorf("cannot export state: %w", err)
	}
	return nil
}

// Import reads a JSON state document from r and migrates it to the current
// schema. Unlike Gateway.Load it returns an error for non-JSON input: an
// explicit import has no sane silent fallback.
func Import(r io.Reader) (models.AppState, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return models.AppState{}, fmt.Errorf("cannot parse import file: %w", err)
	}
	return migrate.Migrate(v), nil
}
