package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for address persistence.
var (
	// ErrAddressNotFound is returned when an address is not found or belongs to another user.
	ErrAddressNotFound = errors.New("address not found")
)

// AddressRepository defines the interface for address-related database operations.
type AddressRepository interface {
	OwnedRepository[entity.Address]

	Create(ctx context.Context, address *entity.Address) error
	Update(ctx context.Context, address *entity.Address) error

	// Delete removes the address when userID owns it.
	Delete(ctx context.Context, id, userID uuid.UUID) error

	// ListByUser returns the user's addresses, default first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)

	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// ClearDefault unsets the default flag on every address of the user.
	ClearDefault(ctx context.Context, userID uuid.UUID) error
}
