package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrReviewNotFound is returned when a review is not found or belongs to another user.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository defines the interface for review persistence.
type ReviewRepository interface {
	OwnedRepository[entity.Review]

	Create(ctx context.Context, review *entity.Review) error

	// Update overwrites the review when its author matches.
	Update(ctx context.Context, review *entity.Review) error

	Delete(ctx context.Context, id uuid.UUID) error

	// List returns one page of reviews, newest first, with the total count.
	List(ctx context.Context, page entity.Page) ([]*entity.Review, int64, error)
}
