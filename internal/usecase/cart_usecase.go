package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CartItemPage is one page of cart lines.
type CartItemPage struct {
	Items    []entity.CartItem
	PageInfo entity.PageInfo
}

// CartUsecase maintains the per-user cart. Stock is checked on every write but never reserved.
type CartUsecase interface {
	// GetCart returns the user's cart. A user without a cart gets an empty one.
	GetCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	ListItems(ctx context.Context, userID uuid.UUID, page entity.Page) (*CartItemPage, error)

	// AddItem merges quantity into the product line, creating the cart and line as needed.
	AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*entity.Cart, error)

	// UpdateItem sets the line quantity. Nothing is written when stock is insufficient.
	UpdateItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*entity.Cart, error)

	// RemoveItem drops the line. Removing an absent product succeeds.
	RemoveItem(ctx context.Context, userID, productID uuid.UUID) (*entity.Cart, error)

	ClearCart(ctx context.Context, userID uuid.UUID) error
}
