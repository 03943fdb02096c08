package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrStockNotAvailable is returned when a conditional stock decrement matches no row.
	ErrStockNotAvailable = errors.New("stock not available")
)

// ProductRepository defines the interface for catalog persistence.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByIDs returns the products that exist among ids, keyed by id.
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Product, error)

	List(ctx context.Context, filter entity.ProductFilter, page entity.Page) ([]*entity.Product, int64, error)

	// DecrementStock atomically removes quantity units when at least that many remain.
	// It returns ErrStockNotAvailable otherwise, leaving stock untouched.
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error

	// IncrementStock returns quantity units to stock.
	IncrementStock(ctx context.Context, id uuid.UUID, quantity int) error

	// FindLowStock lists products whose stock is at or below threshold.
	FindLowStock(ctx context.Context, threshold int) ([]*entity.Product, error)

	Count(ctx context.Context) (int64, error)
}
