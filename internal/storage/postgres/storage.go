package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/polkiloo/mentorcrm/internal/domain/model"
	"github.com/polkiloo/mentorcrm/internal/domain/repository"
)

const (
	keyEndpoints = "endpoints"
	keyStages    = "stages"
)

// pgxPool is the subset of *pgxpool.Pool used by Storage.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage keeps runtime settings in PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

// New connects to PostgreSQL and initializes the schema.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS crm_settings (
            key TEXT PRIMARY KEY,
            value JSONB NOT NULL,
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS crm_settings_history (
            id BIGSERIAL PRIMARY KEY,
            key TEXT NOT NULL,
            value JSONB NOT NULL,
            changed_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_settings_history_key ON crm_settings_history(key, changed_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// LoadEndpoints returns stored endpoint URLs; found is false when none were saved.
func (s *Storage) LoadEndpoints(ctx context.Context) (model.Endpoints, bool, error) {
	var endpoints model.Endpoints
	found, err := s.load(ctx, keyEndpoints, &endpoints)
	return endpoints, found, err
}

// SaveEndpoints stores endpoint URLs.
func (s *Storage) SaveEndpoints(ctx context.Context, endpoints model.Endpoints) error {
	return s.save(ctx, keyEndpoints, endpoints)
}

// LoadStages returns the stored funnel stages; found is false when none were saved.
func (s *Storage) LoadStages(ctx context.Context) ([]string, bool, error) {
	var stages []string
	found, err := s.load(ctx, keyStages, &stages)
	return stages, found, err
}

// SaveStages stores the funnel stages.
func (s *Storage) SaveStages(ctx context.Context, stages []string) error {
	return s.save(ctx, keyStages, stages)
}

func (s *Storage) load(ctx context.Context, key string, dest any) (bool, error) {
	const query = `SELECT value FROM crm_settings WHERE key=$1`
	var raw []byte
	if err := s.pool.QueryRow(ctx, query, key).Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("decode setting %s: %w", key, err)
	}
	return true, nil
}

func (s *Storage) save(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode setting %s: %w", key, err)
	}

	return s.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const upsert = `INSERT INTO crm_settings (key, value, updated_at) VALUES ($1, $2, NOW())
                        ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`
		if _, err := tx.Exec(ctx, upsert, key, raw); err != nil {
			return err
		}
		const audit = `INSERT INTO crm_settings_history (key, value) VALUES ($1, $2)`
		if _, err := tx.Exec(ctx, audit, key, raw); err != nil {
			return err
		}
		s.logger.Info("setting saved", slog.String("key", key))
		return nil
	})
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

var _ repository.SettingsRepository = (*Storage)(nil)
