package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for cart persistence.
var (
	// ErrCartNotFound is returned when the user has no cart yet.
	ErrCartNotFound = errors.New("cart not found")
	// ErrCartItemNotFound is returned when the cart has no line for the product.
	ErrCartItemNotFound = errors.New("cart item not found")
	// ErrCartItemLimit is returned when an increment would exceed the allowed quantity.
	ErrCartItemLimit = errors.New("cart item limit reached")
)

// CartRepository defines the interface for cart persistence. Carts are keyed by their owner.
type CartRepository interface {
	// FindByUser returns the user's cart with lines and their current products.
	// Returns ErrCartNotFound if the user has no cart.
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// GetOrCreate returns the user's cart, creating an empty one if needed.
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// IncrementItem adds quantity to the product line, creating it if needed, in a single
	// statement. When the resulting quantity would exceed maxQuantity nothing is written
	// and ErrCartItemLimit is returned.
	IncrementItem(ctx context.Context, cartID, productID uuid.UUID, quantity, maxQuantity int) error

	// SetItemQuantity overwrites the quantity of an existing line.
	// Returns ErrCartItemNotFound if the line does not exist.
	SetItemQuantity(ctx context.Context, cartID, productID uuid.UUID, quantity int) error

	// RemoveItem deletes the product line. Removing an absent line is not an error.
	RemoveItem(ctx context.Context, cartID, productID uuid.UUID) error

	// ListItems returns a page of the user's lines with their current products.
	ListItems(ctx context.Context, userID uuid.UUID, page entity.Page) ([]entity.CartItem, int64, error)

	// DeleteByUser removes the user's cart and all its lines.
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
