package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestReviewService(t *testing.T) (usecase.ReviewUsecase, *mockRepo.MockReviewRepository) {
	repo := mockRepo.NewMockReviewRepository(t)

	return NewReviewService(ReviewServiceParams{ReviewRepo: repo, Logger: newDiscardLogger()}), repo
}

func TestReviewService_CreateReview(t *testing.T) {
	userID := uuid.New()

	t.Run("trims and stores the review", func(t *testing.T) {
		srv, repo := createTestReviewService(t)
		ctx := context.Background()

		repo.EXPECT().Create(ctx, mock.MatchedBy(func(r *entity.Review) bool {
			return r.UserID == userID && r.Name == "Asha" && r.Comment == "Great biryani" && r.Rating == 5
		})).Return(nil)

		review, err := srv.CreateReview(ctx, userID, &usecase.ReviewInput{Name: " Asha ", Comment: "Great biryani ", Rating: 5})

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, review.ID)
	})

	tests := []struct {
		name    string
		input   usecase.ReviewInput
		message string
	}{
		{name: "blank name", input: usecase.ReviewInput{Name: "  ", Comment: "ok", Rating: 4}, message: "All fields are required"},
		{name: "missing rating", input: usecase.ReviewInput{Name: "Asha", Comment: "ok"}, message: "All fields are required"},
		{name: "rating above five", input: usecase.ReviewInput{Name: "Asha", Comment: "ok", Rating: 6}, message: "Rating must be between 1 and 5"},
		{name: "negative rating", input: usecase.ReviewInput{Name: "Asha", Comment: "ok", Rating: -1}, message: "Rating must be between 1 and 5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := createTestReviewService(t)

			_, err := srv.CreateReview(context.Background(), userID, &tt.input)

			var appErr *domainerrors.BaseError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
			assert.Equal(t, tt.message, appErr.Details())
		})
	}
}

func TestReviewService_UpdateReview(t *testing.T) {
	userID, reviewID := uuid.New(), uuid.New()

	t.Run("someone else's review is not found", func(t *testing.T) {
		srv, repo := createTestReviewService(t)
		repo.EXPECT().FindOwned(mock.Anything, reviewID, userID).Return(nil, repository.ErrReviewNotFound)

		_, err := srv.UpdateReview(context.Background(), userID, reviewID, &usecase.ReviewInput{Name: "A", Comment: "B", Rating: 3})

		assert.ErrorIs(t, err, domainerrors.ErrReviewNotFound)
	})

	t.Run("overwrites the editable fields", func(t *testing.T) {
		srv, repo := createTestReviewService(t)
		ctx := context.Background()
		existing := &entity.Review{ID: reviewID, UserID: userID, Name: "A", Comment: "meh", Rating: 2}

		repo.EXPECT().FindOwned(ctx, reviewID, userID).Return(existing, nil)
		repo.EXPECT().Update(ctx, existing).Return(nil)

		review, err := srv.UpdateReview(ctx, userID, reviewID, &usecase.ReviewInput{Name: "A", Comment: "Better now", Rating: 4})

		require.NoError(t, err)
		assert.Equal(t, "Better now", review.Comment)
		assert.Equal(t, 4, review.Rating)
	})

	t.Run("invalid input leaves the row alone", func(t *testing.T) {
		srv, repo := createTestReviewService(t)
		repo.EXPECT().FindOwned(mock.Anything, reviewID, userID).Return(&entity.Review{ID: reviewID, UserID: userID}, nil)

		_, err := srv.UpdateReview(context.Background(), userID, reviewID, &usecase.ReviewInput{Name: "A", Comment: "B", Rating: 9})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestReviewService_DeleteReview(t *testing.T) {
	userID, reviewID := uuid.New(), uuid.New()

	t.Run("customers can only delete their own", func(t *testing.T) {
		srv, repo := createTestReviewService(t)
		repo.EXPECT().FindOwned(mock.Anything, reviewID, userID).Return(nil, repository.ErrReviewNotFound)

		err := srv.DeleteReview(context.Background(), usecase.Requester{UserID: userID}, reviewID)

		assert.ErrorIs(t, err, domainerrors.ErrReviewNotFound)
	})

	t.Run("author deletes", func(t *testing.T) {
		srv, repo := createTestReviewService(t)
		ctx := context.Background()
		repo.EXPECT().FindOwned(ctx, reviewID, userID).Return(&entity.Review{ID: reviewID, UserID: userID}, nil)
		repo.EXPECT().Delete(ctx, reviewID).Return(nil)

		require.NoError(t, srv.DeleteReview(ctx, usecase.Requester{UserID: userID}, reviewID))
	})

	t.Run("admins skip the ownership check", func(t *testing.T) {
		srv, repo := createTestReviewService(t)
		ctx := context.Background()
		repo.EXPECT().Delete(ctx, reviewID).Return(nil)

		require.NoError(t, srv.DeleteReview(ctx, usecase.Requester{UserID: uuid.New(), IsAdmin: true}, reviewID))
	})

	t.Run("admin delete of a missing review", func(t *testing.T) {
		srv, repo := createTestReviewService(t)
		repo.EXPECT().Delete(mock.Anything, reviewID).Return(repository.ErrReviewNotFound)

		err := srv.DeleteReview(context.Background(), usecase.Requester{UserID: uuid.New(), IsAdmin: true}, reviewID)

		assert.ErrorIs(t, err, domainerrors.ErrReviewNotFound)
	})
}

func TestReviewService_ListReviews(t *testing.T) {
	srv, repo := createTestReviewService(t)
	page := entity.Page{Number: 2, Size: 2}

	repo.EXPECT().List(mock.Anything, page).Return([]*entity.Review{{ID: uuid.New()}}, int64(3), nil)

	result, err := srv.ListReviews(context.Background(), page)

	require.NoError(t, err)
	assert.Len(t, result.Items, 1)
	assert.Equal(t, 2, result.PageInfo.TotalPages)
}
