package service

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrCacheMiss is returned when a cache entry does not exist.
var ErrCacheMiss = errors.New("cache miss")

// ProductCache is a read-through cache in front of the catalog.
type ProductCache interface {
	Get(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	Set(ctx context.Context, product *entity.Product) error
	Invalidate(ctx context.Context, ids []uuid.UUID) error
}
