// Package persist is the snapshot persistence collaborator. The core hands
// it a serializable snapshot; it owns the Postgres plumbing.
package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sudo-init-do/vintage/internal/market"
)

// ErrNoSnapshot means no snapshot has been saved yet.
var ErrNoSnapshot = errors.New("no snapshot stored")

// Store saves and loads marketplace snapshots in Postgres.
type Store struct {
	pool *pgxpool.Pool
}

// Open connects to Postgres and ensures the snapshot schema exists.
func Open(ctx context.Context, dsn string) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	s := &Store{pool: pool}
	if err := s.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	log.Println("snapshot store ready")
	return s, nil
}

func (s *Store) ensureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
        CREATE TABLE IF NOT EXISTS market_snapshots (
            id UUID PRIMARY KEY,
            taken_at TIMESTAMP WITH TIME ZONE NOT NULL,
            state JSONB NOT NULL,
            created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
        );
        CREATE INDEX IF NOT EXISTS idx_market_snapshots_created ON market_snapshots(created_at);
    `)
	if err != nil {
		return fmt.Errorf("ensure snapshot schema: %w", err)
	}
	return nil
}

// Save stores a snapshot and returns the row id.
func (s *Store) Save(ctx context.Context, snap market.Snapshot) (string, error) {
	state, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}
	id := uuid.New().String()
	_, err = s.pool.Exec(ctx,
		`INSERT INTO market_snapshots (id, taken_at, state) VALUES ($1, $2, $3)`,
		id, snap.TakenAt, state,
	)
	if err != nil {
		return "", fmt.Errorf("save snapshot: %w", err)
	}
	return id, nil
}

// LoadLatest returns the most recently saved snapshot.
func (s *Store) LoadLatest(ctx context.Context) (market.Snapshot, error) {
	var state []byte
	err := s.pool.QueryRow(ctx,
		`SELECT state FROM market_snapshots ORDER BY created_at DESC LIMIT 1`,
	).Scan(&state)
	if errors.Is(err, pgx.ErrNoRows) {
		return market.Snapshot{}, ErrNoSnapshot
	}
	if err != nil {
		return market.Snapshot{}, fmt.Errorf("load snapshot: %w", err)
	}
	var snap market.Snapshot
	if err := json.Unmarshal(state, &snap); err != nil {
		return market.Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return snap, nil
}

// Close releases the connection pool.
func (s *Store) Close() {
	s.pool.Close()
}
