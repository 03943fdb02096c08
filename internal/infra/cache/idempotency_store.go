package cache

import (
	"context"
	"sync"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	defaultIdempotencyTTL = 24 * time.Hour
	pendingMarker         = "pending"
)

type redisIdempotencyStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewIdempotencyStore returns a Redis store, or an in-process one without Redis.
func NewIdempotencyStore(client *redis.Client, cfg *config.Config) service.IdempotencyStore {
	ttl := defaultIdempotencyTTL
	if cfg.Redis != nil && cfg.Redis.IdempotencyTTL > 0 {
		ttl = cfg.Redis.IdempotencyTTL
	}

	if client == nil {
		return newMemoryIdempotencyStore(ttl, time.Now)
	}

	return &redisIdempotencyStore{client: client, ttl: ttl}
}

func idempotencyKey(key string) string {
	return "idem:order:" + key
}

func (s *redisIdempotencyStore) Reserve(ctx context.Context, key string) (uuid.UUID, bool, error) {
	claimed, err := s.client.SetNX(ctx, idempotencyKey(key), pendingMarker, s.ttl).Result()
	if err != nil {
		return uuid.Nil, false, errors.Wrap(err, "failed to reserve idempotency key")
	}
	if claimed {
		return uuid.Nil, false, nil
	}

	value, err := s.client.Get(ctx, idempotencyKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		// Expired between SETNX and GET; try once more.
		return s.Reserve(ctx, key)
	}
	if err != nil {
		return uuid.Nil, false, errors.Wrap(err, "failed to read idempotency key")
	}

	return parseReservation(value)
}

func (s *redisIdempotencyStore) Complete(ctx context.Context, key string, orderID uuid.UUID) error {
	err := s.client.Set(ctx, idempotencyKey(key), orderID.String(), s.ttl).Err()

	return errors.Wrap(err, "failed to complete idempotency key")
}

func (s *redisIdempotencyStore) Release(ctx context.Context, key string) error {
	return errors.Wrap(s.client.Del(ctx, idempotencyKey(key)).Err(), "failed to release idempotency key")
}

func parseReservation(value string) (uuid.UUID, bool, error) {
	if value == pendingMarker {
		return uuid.Nil, false, service.ErrIdempotencyInProgress
	}

	orderID, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, false, errors.Wrapf(err, "corrupt idempotency value %q", value)
	}

	return orderID, true, nil
}

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// memoryIdempotencyStore keeps reservations for a single process.
type memoryIdempotencyStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

func newMemoryIdempotencyStore(ttl time.Duration, now func() time.Time) *memoryIdempotencyStore {
	return &memoryIdempotencyStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     now,
	}
}

func (s *memoryIdempotencyStore) Reserve(_ context.Context, key string) (uuid.UUID, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.entries[key]; ok && s.now().Before(entry.expiresAt) {
		return parseReservation(entry.value)
	}

	s.entries[key] = memoryEntry{value: pendingMarker, expiresAt: s.now().Add(s.ttl)}

	return uuid.Nil, false, nil
}

func (s *memoryIdempotencyStore) Complete(_ context.Context, key string, orderID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = memoryEntry{value: orderID.String(), expiresAt: s.now().Add(s.ttl)}

	return nil
}

func (s *memoryIdempotencyStore) Release(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)

	return nil
}
