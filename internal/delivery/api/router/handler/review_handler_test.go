package handler

import (
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newReviewHandler(t *testing.T) (*ReviewHandler, *mockUC.MockReviewUsecase) {
	reviewUC := mockUC.NewMockReviewUsecase(t)

	return NewReviewHandler(ReviewHandlerParams{ReviewUC: reviewUC, Config: newTestConfig()}), reviewUC
}

func TestReviewHandler_ListReviews(t *testing.T) {
	handler, reviewUC := newReviewHandler(t)
	page := entity.Page{Number: 2, Size: 5}

	reviewUC.EXPECT().ListReviews(mock.Anything, page).Return(&usecase.ReviewPage{
		Items:    []*entity.Review{{ID: uuid.New(), Name: "Asha", Comment: "Lovely", Rating: 5}},
		PageInfo: entity.NewPageInfo(page, 6),
	}, nil)

	c, rec := newJSONContext(http.MethodGet, "/reviews?page=2&limit=5", "")

	require.NoError(t, handler.ListReviews(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var reviews []ReviewResponse
	decodeData(t, rec, &reviews)
	require.Len(t, reviews, 1)
	assert.Equal(t, 5, reviews[0].Rating)
	assert.Equal(t, 2, decode(t, rec).Meta.Pagination.TotalPages)
}

func TestReviewHandler_CreateReview(t *testing.T) {
	userID := uuid.New()

	t.Run("created", func(t *testing.T) {
		handler, reviewUC := newReviewHandler(t)
		reviewUC.EXPECT().
			CreateReview(mock.Anything, userID, &usecase.ReviewInput{Name: "Asha", Comment: "Lovely", Rating: 4}).
			Return(&entity.Review{ID: uuid.New(), UserID: userID, Name: "Asha", Comment: "Lovely", Rating: 4}, nil)

		c, rec := newJSONContext(http.MethodPost, "/reviews", `{"name":"Asha","comment":"Lovely","rating":4}`)
		asCaller(c, userID)

		require.NoError(t, handler.CreateReview(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("validation message reaches the client", func(t *testing.T) {
		handler, reviewUC := newReviewHandler(t)
		reviewUC.EXPECT().CreateReview(mock.Anything, userID, mock.Anything).
			Return(nil, domainerrors.NewValidationError("All fields are required"))

		c, rec := newJSONContext(http.MethodPost, "/reviews", `{"name":"Asha"}`)
		asCaller(c, userID)

		require.NoError(t, handler.CreateReview(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
	})

	t.Run("anonymous caller", func(t *testing.T) {
		handler, _ := newReviewHandler(t)

		c, rec := newJSONContext(http.MethodPost, "/reviews", `{}`)

		require.NoError(t, handler.CreateReview(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestReviewHandler_UpdateReview_NotOwned(t *testing.T) {
	handler, reviewUC := newReviewHandler(t)
	userID, reviewID := uuid.New(), uuid.New()

	reviewUC.EXPECT().UpdateReview(mock.Anything, userID, reviewID, mock.Anything).Return(nil, domainerrors.ErrReviewNotFound)

	c, rec := newJSONContext(http.MethodPut, "/reviews/"+reviewID.String(), `{"name":"A","comment":"B","rating":3}`)
	c.SetParamNames("id")
	c.SetParamValues(reviewID.String())
	asCaller(c, userID)

	require.NoError(t, handler.UpdateReview(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReviewHandler_DeleteReview(t *testing.T) {
	userID, reviewID := uuid.New(), uuid.New()

	t.Run("admin role is forwarded", func(t *testing.T) {
		handler, reviewUC := newReviewHandler(t)
		reviewUC.EXPECT().DeleteReview(mock.Anything, usecase.Requester{UserID: userID, IsAdmin: true}, reviewID).Return(nil)

		c, rec := newJSONContext(http.MethodDelete, "/reviews/"+reviewID.String(), "")
		c.SetParamNames("id")
		c.SetParamValues(reviewID.String())
		asCaller(c, userID, entity.RoleUser.String(), entity.RoleAdmin.String())

		require.NoError(t, handler.DeleteReview(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		handler, _ := newReviewHandler(t)

		c, rec := newJSONContext(http.MethodDelete, "/reviews/nope", "")
		c.SetParamNames("id")
		c.SetParamValues("nope")
		asCaller(c, userID)

		require.NoError(t, handler.DeleteReview(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_ID", decode(t, rec).Error.Code)
	})
}
