package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for favorite persistence.
var (
	// ErrFavoriteNotFound is returned when the pair is not stored.
	ErrFavoriteNotFound = errors.New("favorite not found")
	// ErrFavoriteExists is returned when the pair already exists.
	ErrFavoriteExists = errors.New("favorite already exists")
)

// FavoriteRepository defines the interface for favorite persistence.
type FavoriteRepository interface {
	Create(ctx context.Context, favorite *entity.Favorite) error

	// Delete removes the pair. Returns ErrFavoriteNotFound when nothing was removed.
	Delete(ctx context.Context, userID, productID uuid.UUID) error

	Exists(ctx context.Context, userID, productID uuid.UUID) (bool, error)

	// ListByUser returns the user's favorites with their products, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error)
}
