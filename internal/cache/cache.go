package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/Balerion769/Disaster-Response-Platform/pkg/e"
)

// Entry is a single cache row as stored by the backing repository.
type Entry struct {
	Key       string
	Value     []byte
	ExpiresAt time.Time
}

type Repository interface {
	Get(ctx context.Context, key string) (Entry, error)
	Upsert(ctx context.Context, key string, value []byte, expiresAt time.Time) error
	Delete(ctx context.Context, key string) error
}

// Store is a key/value cache with read-time expiry backed by the same
// persistent store as primary records. It fails closed: a backing-store
// error is a cache miss, never an error surfaced to the caller, and a
// failed write never fails the calling operation. Keys are opaque
// strings; callers build collision-free keys with fixed prefixes.
type Store struct {
	repo   Repository
	clock  clockwork.Clock
	logger *slog.Logger
}

func NewStore(repo Repository, clock clockwork.Clock, logger *slog.Logger) *Store {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Store{repo: repo, clock: clock, logger: logger}
}

// Get loads the entry for key into dest. Returns false on miss: absent
// key, expired entry, backing-store failure or undecodable payload.
// Expired entries are lazily deleted on read; there is no background
// eviction sweep.
func (s *Store) Get(ctx context.Context, key string, dest any) bool {
	entry, err := s.repo.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, e.ErrNotFound) {
			s.logger.Warn("cache read failed, treating as miss",
				slog.String("key", key),
				slog.Any("error", err),
			)
		}
		return false
	}

	if entry.ExpiresAt.Before(s.clock.Now()) {
		if err := s.repo.Delete(ctx, key); err != nil {
			s.logger.Warn("stale cache entry delete failed",
				slog.String("key", key),
				slog.Any("error", err),
			)
		}
		return false
	}

	if err := json.Unmarshal(entry.Value, dest); err != nil {
		s.logger.Warn("cache entry decode failed, treating as miss",
			slog.String("key", key),
			slog.Any("error", err),
		)
		return false
	}
	return true
}

// Set upserts the entry with expires_at = now + ttl. Last writer wins.
// Failures are logged and swallowed: the cache is a performance
// optimization, not a correctness dependency.
func (s *Store) Set(ctx context.Context, key string, value any, ttl time.Duration) {
	b, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("cache value marshal failed",
			slog.String("key", key),
			slog.Any("error", err),
		)
		return
	}

	expiresAt := s.clock.Now().Add(ttl)
	if err := s.repo.Upsert(ctx, key, b, expiresAt); err != nil {
		s.logger.Warn("cache write failed",
			slog.String("key", key),
			slog.Any("error", err),
		)
	}
}
