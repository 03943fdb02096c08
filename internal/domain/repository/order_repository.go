package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found or belongs to another user.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderCodeConflict is returned when the unique order code is already taken.
	ErrOrderCodeConflict = errors.New("order code already exists")
	// ErrOrderStateChanged is returned when a guarded update matched no row.
	ErrOrderStateChanged = errors.New("order changed concurrently")
)

// OrderRepository defines the interface for order persistence.
type OrderRepository interface {
	OwnedRepository[entity.Order]

	// Create inserts the order and its items. Returns ErrOrderCodeConflict on a duplicate code.
	Create(ctx context.Context, order *entity.Order) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByIDForUpdate loads the order and locks its row until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	FindByCode(ctx context.Context, code string) (*entity.Order, error)

	// FindLatestByUser returns the user's most recent order.
	FindLatestByUser(ctx context.Context, userID uuid.UUID) (*entity.Order, error)

	ListByUser(ctx context.Context, userID uuid.UUID, page entity.Page) ([]*entity.Order, int64, error)
	List(ctx context.Context, filter entity.OrderFilter, page entity.Page) ([]*entity.Order, int64, error)

	// ListAll returns every order matching filter, newest first.
	ListAll(ctx context.Context, filter entity.OrderFilter) ([]*entity.Order, error)

	// UpdateStatus moves the order from expected to next.
	// Returns ErrOrderStateChanged if the stored status is no longer expected.
	UpdateStatus(ctx context.Context, id uuid.UUID, expected, next entity.OrderStatus) error

	// AttachPaymentProof stores the proof and marks the order Paid, only if no proof exists yet
	// and the order is not closed. Returns ErrOrderStateChanged when either changed concurrently.
	AttachPaymentProof(ctx context.Context, id uuid.UUID, url, path string) error

	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context) (map[entity.OrderStatus]int64, error)

	// SumRevenue totals orders whose status is in statuses.
	SumRevenue(ctx context.Context, statuses []entity.OrderStatus) (decimal.Decimal, error)
}
