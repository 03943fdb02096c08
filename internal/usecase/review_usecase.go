package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewInput carries the fields a customer submits.
type ReviewInput struct {
	Name    string
	Comment string
	Rating  int
}

// ReviewPage is one page of reviews.
type ReviewPage struct {
	Items    []*entity.Review
	PageInfo entity.PageInfo
}

// ReviewUsecase manages customer testimonials.
type ReviewUsecase interface {
	ListReviews(ctx context.Context, page entity.Page) (*ReviewPage, error)
	CreateReview(ctx context.Context, userID uuid.UUID, input *ReviewInput) (*entity.Review, error)

	// UpdateReview edits a review written by userID.
	UpdateReview(ctx context.Context, userID, reviewID uuid.UUID, input *ReviewInput) (*entity.Review, error)

	// DeleteReview removes a review. Customers may only remove their own; admins may remove any.
	DeleteReview(ctx context.Context, requester Requester, reviewID uuid.UUID) error
}
