package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"orderdash/models"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS snapshots (
		id UUID PRIMARY KEY,
		submitted_at TIMESTAMPTZ NOT NULL,
		data JSONB NOT NULL,
		totals JSONB NOT NULL,
		categories JSONB NOT NULL,
		profit_by_date JSONB NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_snapshots_submitted_at ON snapshots (submitted_at DESC)`,
}

// PostgresStore keeps the snapshot history in a Postgres jsonb table.
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore ensures the snapshots table exists and returns the store.
func NewPostgresStore(ctx context.Context, db *pgxpool.Pool) (*PostgresStore, error) {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return nil, fmt.Errorf("creating snapshots schema: %w", err)
		}
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Append(ctx context.Context, snap *models.Snapshot) error {
	data, err := json.Marshal(snap.Data)
	if err != nil {
		return fmt.Errorf("encoding snapshot data: %w", err)
	}
	totals, err := json.Marshal(snap.Totals)
	if err != nil {
		return fmt.Errorf("encoding snapshot totals: %w", err)
	}
	categories, err := json.Marshal(snap.Categories)
	if err != nil {
		return fmt.Errorf("encoding snapshot categories: %w", err)
	}
	profitByDate, err := json.Marshal(snap.ProfitByDate)
	if err != nil {
		return fmt.Errorf("encoding snapshot profit series: %w", err)
	}

	query := `
		INSERT INTO snapshots (id, submitted_at, data, totals, categories, profit_by_date)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	if _, err := s.db.Exec(ctx, query, snap.ID, snap.SubmittedAt, data, totals, categories, profitByDate); err != nil {
		return fmt.Errorf("inserting snapshot: %w", err)
	}
	return nil
}

func (s *PostgresStore) Latest(ctx context.Context) (*models.Snapshot, error) {
	query := `
		SELECT id, submitted_at, data, totals, categories, profit_by_date
		FROM snapshots
		ORDER BY submitted_at DESC
		LIMIT 1
	`

	var snap models.Snapshot
	var data, totals, categories, profitByDate []byte

	err := s.db.QueryRow(ctx, query).Scan(
		&snap.ID, &snap.SubmittedAt, &data, &totals, &categories, &profitByDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("querying latest snapshot: %w", err)
	}

	if err := json.Unmarshal(data, &snap.Data); err != nil {
		return nil, fmt.Errorf("decoding snapshot data: %w", err)
	}
	if err := json.Unmarshal(totals, &snap.Totals); err != nil {
		return nil, fmt.Errorf("decoding snapshot totals: %w", err)
	}
	if err := json.Unmarshal(categories, &snap.Categories); err != nil {
		return nil, fmt.Errorf("decoding snapshot categories: %w", err)
	}
	if err := json.Unmarshal(profitByDate, &snap.ProfitByDate); err != nil {
		return nil, fmt.Errorf("decoding snapshot profit series: %w", err)
	}

	return &snap, nil
}
