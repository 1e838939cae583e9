package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Balerion769/Disaster-Response-Platform/internal/cache"
	"github.com/Balerion769/Disaster-Response-Platform/pkg/e"
)

// CacheRepo stores cache entries in the same database as primary
// records. Expiry is the cache.Store's concern; rows here are plain
// upserts.
type CacheRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewCacheRepo(pool *pgxpool.Pool, logger *slog.Logger) *CacheRepo {
	return &CacheRepo{pool: pool, logger: logger}
}

func (p *CacheRepo) Get(ctx context.Context, key string) (cache.Entry, error) {
	const op = "postgres.Cache.Get"

	const query = `SELECT key, value, expires_at FROM cache WHERE key = $1`

	var entry cache.Entry
	err := p.pool.QueryRow(ctx, query, key).Scan(&entry.Key, &entry.Value, &entry.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return cache.Entry{}, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("key", key))
		return cache.Entry{}, e.WrapError(ctx, op, err)
	}

	return entry, nil
}

func (p *CacheRepo) Upsert(ctx context.Context, key string, value []byte, expiresAt time.Time) error {
	const op = "postgres.Cache.Upsert"

	const query = `
		INSERT INTO cache (key, value, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, expires_at = EXCLUDED.expires_at
	`

	if _, err := p.pool.Exec(ctx, query, key, value, expiresAt); err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("key", key))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *CacheRepo) Delete(ctx context.Context, key string) error {
	const op = "postgres.Cache.Delete"

	const query = `DELETE FROM cache WHERE key = $1`

	if _, err := p.pool.Exec(ctx, query, key); err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("key", key))
		return e.WrapError(ctx, op, err)
	}

	return nil
}
