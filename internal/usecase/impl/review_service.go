package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type reviewService struct {
	reviewRepo repository.ReviewRepository
	logger     *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	ReviewRepo repository.ReviewRepository
	Logger     *slog.Logger
}

// NewReviewService creates the reviews usecase.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo: params.ReviewRepo,
		logger:     params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *reviewService) ListReviews(ctx context.Context, page entity.Page) (*usecase.ReviewPage, error) {
	reviews, total, err := srv.reviewRepo.List(ctx, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return &usecase.ReviewPage{Items: reviews, PageInfo: entity.NewPageInfo(page, total)}, nil
}

func (srv *reviewService) CreateReview(ctx context.Context, userID uuid.UUID, input *usecase.ReviewInput) (*entity.Review, error) {
	review := &entity.Review{ID: uuid.New(), UserID: userID}
	if err := applyReviewInput(review, input); err != nil {
		return nil, err
	}

	if err := srv.reviewRepo.Create(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to create review")
	}

	srv.log(ctx).Info("Review added", slog.String("review_id", review.ID.String()), slog.Int("rating", review.Rating))

	return review, nil
}

func (srv *reviewService) UpdateReview(ctx context.Context, userID, reviewID uuid.UUID, input *usecase.ReviewInput) (*entity.Review, error) {
	review, err := srv.findOwned(ctx, reviewID, userID)
	if err != nil {
		return nil, err
	}
	if err := applyReviewInput(review, input); err != nil {
		return nil, err
	}

	if err := srv.reviewRepo.Update(ctx, review); err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, domainerrors.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to update review")
	}

	return review, nil
}

func (srv *reviewService) DeleteReview(ctx context.Context, requester usecase.Requester, reviewID uuid.UUID) error {
	if !requester.IsAdmin {
		if _, err := srv.findOwned(ctx, reviewID, requester.UserID); err != nil {
			return err
		}
	}

	if err := srv.reviewRepo.Delete(ctx, reviewID); err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return domainerrors.ErrReviewNotFound
		}

		return errors.Wrap(err, "failed to delete review")
	}

	srv.log(ctx).Info("Review deleted", slog.String("review_id", reviewID.String()), slog.Bool("by_admin", requester.IsAdmin))

	return nil
}

func (srv *reviewService) findOwned(ctx context.Context, reviewID, userID uuid.UUID) (*entity.Review, error) {
	review, err := srv.reviewRepo.FindOwned(ctx, reviewID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, domainerrors.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review")
	}

	return review, nil
}

func applyReviewInput(review *entity.Review, input *usecase.ReviewInput) error {
	name := strings.TrimSpace(input.Name)
	comment := strings.TrimSpace(input.Comment)
	if name == "" || comment == "" || input.Rating == 0 {
		return domainerrors.NewValidationError("All fields are required")
	}
	if input.Rating < entity.MinReviewRating || input.Rating > entity.MaxReviewRating {
		return domainerrors.NewValidationError(fmt.Sprintf("Rating must be between %d and %d", entity.MinReviewRating, entity.MaxReviewRating))
	}

	review.Name = name
	review.Comment = comment
	review.Rating = input.Rating

	return nil
}
