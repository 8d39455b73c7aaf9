package storage

import (
	"context"
	"sync"

	"github.com/scrapdesk/scrap_ledger_app/internal/apperrors"
	portsrepo "github.com/scrapdesk/scrap_ledger_app/internal/core/ports/repositories"
)

// MemoryStore is an in-memory SnapshotStore used in tests and for
// ephemeral runs without a data directory or database.
type MemoryStore struct {
	mu        sync.RWMutex
	snapshots map[string][]byte
}

var _ portsrepo.SnapshotStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{snapshots: make(map[string][]byte)}
}

func (s *MemoryStore) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	raw, ok := s.snapshots[key]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	cp := make([]byte, len(raw))
	copy(cp, raw)
	return cp, nil
}

func (s *MemoryStore) Save(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	s.snapshots[key] = cp
	return nil
}
