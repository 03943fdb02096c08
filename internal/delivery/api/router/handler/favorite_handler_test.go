package handler

import (
	"net/http"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	mockUC "storefront/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFavoriteHandler_Toggle(t *testing.T) {
	userID, productID := uuid.New(), uuid.New()

	for _, isFavorite := range []bool{true, false} {
		favoriteUC := mockUC.NewMockFavoriteUsecase(t)
		handler := NewFavoriteHandler(FavoriteHandlerParams{FavoriteUC: favoriteUC})
		favoriteUC.EXPECT().ToggleFavorite(mock.Anything, userID, productID).Return(isFavorite, nil).Once()

		c, rec := newJSONContext(http.MethodPost, "/favorites/"+productID.String()+"/toggle", "")
		c.SetParamNames("productId")
		c.SetParamValues(productID.String())
		asCaller(c, userID)

		require.NoError(t, handler.Toggle(c))

		var toggled ToggleResponse
		decodeData(t, rec, &toggled)
		assert.Equal(t, productID, toggled.ProductID)
		assert.Equal(t, isFavorite, toggled.IsFavorite)
	}
}

func TestFavoriteHandler_Remove(t *testing.T) {
	userID, productID := uuid.New(), uuid.New()

	t.Run("not favorited", func(t *testing.T) {
		favoriteUC := mockUC.NewMockFavoriteUsecase(t)
		handler := NewFavoriteHandler(FavoriteHandlerParams{FavoriteUC: favoriteUC})
		favoriteUC.EXPECT().RemoveFavorite(mock.Anything, userID, productID).Return(domainerrors.ErrFavoriteNotFound)

		c, rec := newJSONContext(http.MethodDelete, "/favorites/"+productID.String(), "")
		c.SetParamNames("productId")
		c.SetParamValues(productID.String())
		asCaller(c, userID)

		require.NoError(t, handler.Remove(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Favorite not found", decode(t, rec).Error.Message)
	})

	t.Run("bad product id", func(t *testing.T) {
		handler := NewFavoriteHandler(FavoriteHandlerParams{FavoriteUC: mockUC.NewMockFavoriteUsecase(t)})

		c, rec := newJSONContext(http.MethodDelete, "/favorites/abc", "")
		c.SetParamNames("productId")
		c.SetParamValues("abc")
		asCaller(c, userID)

		require.NoError(t, handler.Remove(c))
		assert.Equal(t, "INVALID_ID", decode(t, rec).Error.Code)
	})
}
