package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"raffle-manager-backend/internal/features/raffle/models"
	"raffle-manager-backend/internal/features/raffle/repository"
)

// Dialect holds the statements that differ between SQL engines.
type Dialect struct {
	Name        string
	createTable string
	selectRow   string
	upsertRow   string
}

var (
	SQLite = Dialect{
		Name: "sqlite3",
		createTable: `
			CREATE TABLE IF NOT EXISTS raffle_store (
				key TEXT PRIMARY KEY,
				payload TEXT NOT NULL,
				updated_at DATETIME NOT NULL
			)`,
		selectRow: `SELECT payload FROM raffle_store WHERE key = ?`,
		upsertRow: `
			INSERT INTO raffle_store (key, payload, updated_at) VALUES (?, ?, ?)
			ON CONFLICT (key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
	}

	Postgres = Dialect{
		Name: "postgres",
		createTable: `
			CREATE TABLE IF NOT EXISTS raffle_store (
				key TEXT PRIMARY KEY,
				payload TEXT NOT NULL,
				updated_at TIMESTAMPTZ NOT NULL
			)`,
		selectRow: `SELECT payload FROM raffle_store WHERE key = $1`,
		upsertRow: `
			INSERT INTO raffle_store (key, payload, updated_at) VALUES ($1, $2, $3)
			ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`,
	}
)

// Storage keeps the collection in one row of the raffle_store table.
type Storage struct {
	db      *sql.DB
	dialect Dialect
	key     string
}

// NewStorage creates the raffle_store table when it is missing.
func NewStorage(ctx context.Context, db *sql.DB, dialect Dialect, key string) (*Storage, error) {
	if key == "" {
		key = repository.DefaultKey
	}
	if _, err := db.ExecContext(ctx, dialect.createTable); err != nil {
		return nil, fmt.Errorf("failed to create raffle_store table (%s): %w", dialect.Name, err)
	}
	return &Storage{db: db, dialect: dialect, key: key}, nil
}

func (s *Storage) LoadAll(ctx context.Context) ([]*models.Raffle, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, s.dialect.selectRow, s.key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return []*models.Raffle{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load raffles: %w", err)
	}
	return repository.Decode([]byte(payload))
}

func (s *Storage) SaveAll(ctx context.Context, raffles []*models.Raffle) error {
	data, err := repository.Encode(raffles)
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, s.dialect.upsertRow, s.key, string(data), time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to save raffles: %w", err)
	}
	return nil
}

func (s *Storage) HealthCheck(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
