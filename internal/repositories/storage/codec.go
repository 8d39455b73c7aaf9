package storage

import (
	"context"
	"encoding/json"
	"fmt"

	portsrepo "github.com/scrapdesk/scrap_ledger_app/internal/core/ports/repositories"
)

// LoadCollection reads the snapshot under key and decodes it into a slice
// of T. It never fails: a missing key, an unreadable store or a corrupt
// snapshot all yield def, and the stored snapshot is left untouched.
func LoadCollection[T any](ctx context.Context, store portsrepo.SnapshotStore, key string, def []T) []T {
	raw, err := store.Load(ctx, key)
	if err != nil {
		return def
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return def
	}
	if out == nil {
		return def
	}
	return out
}

// SaveCollection encodes data and overwrites the snapshot under key.
func SaveCollection[T any](ctx context.Context, store portsrepo.SnapshotStore, key string, data []T) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", key, err)
	}
	if err := store.Save(ctx, key, raw); err != nil {
		return fmt.Errorf("failed to save collection %s: %w", key, err)
	}
	return nil
}
