package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// FavoriteUsecase manages the products a user marked.
type FavoriteUsecase interface {
	// ToggleFavorite adds the product when absent and removes it otherwise.
	// It reports whether the product is a favorite afterwards.
	ToggleFavorite(ctx context.Context, userID, productID uuid.UUID) (bool, error)

	ListFavorites(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error)
	RemoveFavorite(ctx context.Context, userID, productID uuid.UUID) error
}
