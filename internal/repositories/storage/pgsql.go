package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/scrapdesk/scrap_ledger_app/internal/apperrors"
	portsrepo "github.com/scrapdesk/scrap_ledger_app/internal/core/ports/repositories"
)

// PgxStore keeps every collection snapshot as one jsonb row in the
// collection_snapshots table. The schema is managed by the migrations
// under migrations/.
type PgxStore struct {
	pool *pgxpool.Pool
}

var _ portsrepo.SnapshotStore = (*PgxStore)(nil)

// NewPgxStore wraps an existing connection pool.
func NewPgxStore(pool *pgxpool.Pool) *PgxStore {
	return &PgxStore{pool: pool}
}

func (s *PgxStore) Load(ctx context.Context, key string) ([]byte, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx,
		`SELECT data FROM collection_snapshots WHERE key = $1`, key,
	).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load snapshot %s: %w", key, err)
	}
	return raw, nil
}

func (s *PgxStore) Save(ctx context.Context, key string, data []byte) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO collection_snapshots (key, data, updated_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
		key, data,
	)
	if err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", key, err)
	}
	return nil
}
