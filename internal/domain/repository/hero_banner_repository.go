package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrHeroBannerNotFound is returned when no banner has the given id.
var ErrHeroBannerNotFound = errors.New("hero banner not found")

// HeroBannerRepository defines the interface for hero banner persistence.
type HeroBannerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.HeroBanner, error)

	// List returns every banner, newest first.
	List(ctx context.Context) ([]*entity.HeroBanner, error)

	Create(ctx context.Context, banner *entity.HeroBanner) error
	Update(ctx context.Context, banner *entity.HeroBanner) error
	Delete(ctx context.Context, id uuid.UUID) error
}
