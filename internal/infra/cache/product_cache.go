package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const defaultProductTTL = 5 * time.Minute

type redisProductCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewProductCache returns a Redis product cache, or a pass-through one without Redis.
func NewProductCache(client *redis.Client, cfg *config.Config, logger *slog.Logger) service.ProductCache {
	if client == nil {
		return noopProductCache{}
	}

	ttl := defaultProductTTL
	if cfg.Redis != nil && cfg.Redis.CacheTTL > 0 {
		ttl = cfg.Redis.CacheTTL
	}

	return &redisProductCache{client: client, ttl: ttl, logger: logger}
}

func productKey(id uuid.UUID) string {
	return "product:" + id.String()
}

func (c *redisProductCache) Get(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	data, err := c.client.Get(ctx, productKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, service.ErrCacheMiss
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read product cache")
	}

	var product entity.Product
	if err := json.Unmarshal(data, &product); err != nil {
		c.logger.WarnContext(ctx, "Dropping corrupt product cache entry", slog.String("product_id", id.String()))
		_ = c.client.Del(ctx, productKey(id)).Err()

		return nil, service.ErrCacheMiss
	}

	return &product, nil
}

func (c *redisProductCache) Set(ctx context.Context, product *entity.Product) error {
	data, err := json.Marshal(product)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.Wrap(c.client.Set(ctx, productKey(product.ID), data, c.ttl).Err(), "failed to write product cache")
}

func (c *redisProductCache) Invalidate(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, productKey(id))
	}

	return errors.Wrap(c.client.Del(ctx, keys...).Err(), "failed to invalidate product cache")
}

// noopProductCache always misses.
type noopProductCache struct{}

func (noopProductCache) Get(context.Context, uuid.UUID) (*entity.Product, error) {
	return nil, service.ErrCacheMiss
}

func (noopProductCache) Set(context.Context, *entity.Product) error {
	return nil
}

func (noopProductCache) Invalidate(context.Context, []uuid.UUID) error {
	return nil
}
