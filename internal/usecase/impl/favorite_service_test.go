package impl

import (
	"context"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestFavoriteService(t *testing.T) (usecase.FavoriteUsecase, *mockRepo.MockFavoriteRepository) {
	repo := mockRepo.NewMockFavoriteRepository(t)

	return NewFavoriteService(FavoriteServiceParams{FavoriteRepo: repo, Logger: newDiscardLogger()}), repo
}

func TestFavoriteService_ToggleFavorite(t *testing.T) {
	userID, productID := uuid.New(), uuid.New()

	t.Run("adds when absent", func(t *testing.T) {
		service, repo := createTestFavoriteService(t)

		repo.EXPECT().Exists(mock.Anything, userID, productID).Return(false, nil)
		repo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Favorite")).Return(nil)

		favorite, err := service.ToggleFavorite(context.Background(), userID, productID)

		require.NoError(t, err)
		assert.True(t, favorite)
	})

	t.Run("removes when present", func(t *testing.T) {
		service, repo := createTestFavoriteService(t)

		repo.EXPECT().Exists(mock.Anything, userID, productID).Return(true, nil)
		repo.EXPECT().Delete(mock.Anything, userID, productID).Return(nil)

		favorite, err := service.ToggleFavorite(context.Background(), userID, productID)

		require.NoError(t, err)
		assert.False(t, favorite)
	})

	t.Run("concurrent add wins", func(t *testing.T) {
		service, repo := createTestFavoriteService(t)

		repo.EXPECT().Exists(mock.Anything, userID, productID).Return(false, nil)
		repo.EXPECT().Create(mock.Anything, mock.Anything).Return(repository.ErrFavoriteExists)

		favorite, err := service.ToggleFavorite(context.Background(), userID, productID)

		require.NoError(t, err)
		assert.True(t, favorite)
	})

	t.Run("unknown product", func(t *testing.T) {
		service, repo := createTestFavoriteService(t)

		repo.EXPECT().Exists(mock.Anything, userID, productID).Return(false, nil)
		repo.EXPECT().Create(mock.Anything, mock.Anything).Return(repository.ErrProductNotFound)

		_, err := service.ToggleFavorite(context.Background(), userID, productID)

		assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	})
}

func TestFavoriteService_RemoveFavorite_NotFound(t *testing.T) {
	service, repo := createTestFavoriteService(t)
	userID, productID := uuid.New(), uuid.New()

	repo.EXPECT().Delete(mock.Anything, userID, productID).Return(repository.ErrFavoriteNotFound)

	err := service.RemoveFavorite(context.Background(), userID, productID)

	assert.ErrorIs(t, err, domainerrors.ErrFavoriteNotFound)
}
