package impl

import (
	"context"
	"strings"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type heroBannerFixtures struct {
	service usecase.HeroBannerUsecase
	repo    *mockRepo.MockHeroBannerRepository
	storage *mockSvc.MockFileStorage
}

func createTestHeroBannerService(t *testing.T) heroBannerFixtures {
	repo := mockRepo.NewMockHeroBannerRepository(t)
	storage := mockSvc.NewMockFileStorage(t)

	return heroBannerFixtures{
		service: NewHeroBannerService(HeroBannerServiceParams{
			BannerRepo: repo,
			Storage:    storage,
			Config:     newTestConfig(),
			Logger:     newDiscardLogger(),
		}),
		repo:    repo,
		storage: storage,
	}
}

func TestHeroBannerService_CreateBanner(t *testing.T) {
	t.Run("title and image are both required", func(t *testing.T) {
		fx := createTestHeroBannerService(t)

		for _, input := range []*usecase.HeroBannerInput{
			{Title: "Diwali specials"},
			{Title: "  ", Image: pngUpload()},
		} {
			_, err := fx.service.CreateBanner(context.Background(), input)
			assert.ErrorIs(t, err, domainerrors.ErrHeroBannerIncomplete)
		}
	})

	t.Run("stores the image under the banner", func(t *testing.T) {
		fx := createTestHeroBannerService(t)
		ctx := context.Background()

		fx.storage.EXPECT().
			Save(ctx, mock.MatchedBy(func(key string) bool { return strings.HasPrefix(key, "hero-banners/") }), "image/png", mock.Anything).
			Return(&service.StoredFile{Key: "hero-banners/b/1.png", URL: "/uploads/hero-banners/b/1.png"}, nil)
		fx.repo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.HeroBanner")).Return(nil)

		banner, err := fx.service.CreateBanner(ctx, &usecase.HeroBannerInput{Title: " Diwali specials ", Image: pngUpload()})

		require.NoError(t, err)
		assert.Equal(t, "Diwali specials", banner.Title)
		assert.Equal(t, "/uploads/hero-banners/b/1.png", banner.ImageURL)
		assert.Equal(t, "hero-banners/b/1.png", banner.ImagePath)
	})

	t.Run("failed insert removes the image", func(t *testing.T) {
		fx := createTestHeroBannerService(t)
		ctx := context.Background()

		fx.storage.EXPECT().Save(ctx, mock.Anything, "image/png", mock.Anything).
			Return(&service.StoredFile{Key: "hero-banners/b/1.png", URL: "/uploads/hero-banners/b/1.png"}, nil)
		fx.repo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("db down"))
		fx.storage.EXPECT().Delete(ctx, "hero-banners/b/1.png").Return(nil)

		_, err := fx.service.CreateBanner(ctx, &usecase.HeroBannerInput{Title: "Diwali specials", Image: pngUpload()})

		require.Error(t, err)
	})
}

func TestHeroBannerService_UpdateBanner(t *testing.T) {
	bannerID := uuid.New()
	existing := func() *entity.HeroBanner {
		return &entity.HeroBanner{ID: bannerID, Title: "Old", ImageURL: "/uploads/old.png", ImagePath: "hero-banners/old.png"}
	}

	t.Run("title only keeps the image", func(t *testing.T) {
		fx := createTestHeroBannerService(t)
		ctx := context.Background()

		fx.repo.EXPECT().FindByID(ctx, bannerID).Return(existing(), nil)
		fx.repo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.HeroBanner")).Return(nil)

		banner, err := fx.service.UpdateBanner(ctx, bannerID, &usecase.HeroBannerInput{Title: "New"})

		require.NoError(t, err)
		assert.Equal(t, "New", banner.Title)
		assert.Equal(t, "hero-banners/old.png", banner.ImagePath)
	})

	t.Run("new image replaces and deletes the old one", func(t *testing.T) {
		fx := createTestHeroBannerService(t)
		ctx := context.Background()

		fx.repo.EXPECT().FindByID(ctx, bannerID).Return(existing(), nil)
		fx.storage.EXPECT().Save(ctx, mock.Anything, "image/png", mock.Anything).
			Return(&service.StoredFile{Key: "hero-banners/new.png", URL: "/uploads/new.png"}, nil)
		fx.repo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.HeroBanner")).Return(nil)
		fx.storage.EXPECT().Delete(ctx, "hero-banners/old.png").Return(nil)

		banner, err := fx.service.UpdateBanner(ctx, bannerID, &usecase.HeroBannerInput{Image: pngUpload()})

		require.NoError(t, err)
		assert.Equal(t, "Old", banner.Title)
		assert.Equal(t, "hero-banners/new.png", banner.ImagePath)
	})

	t.Run("failed update keeps the old image and drops the new one", func(t *testing.T) {
		fx := createTestHeroBannerService(t)
		ctx := context.Background()

		fx.repo.EXPECT().FindByID(ctx, bannerID).Return(existing(), nil)
		fx.storage.EXPECT().Save(ctx, mock.Anything, "image/png", mock.Anything).
			Return(&service.StoredFile{Key: "hero-banners/new.png", URL: "/uploads/new.png"}, nil)
		fx.repo.EXPECT().Update(ctx, mock.Anything).Return(repository.ErrHeroBannerNotFound)
		fx.storage.EXPECT().Delete(ctx, "hero-banners/new.png").Return(nil)

		_, err := fx.service.UpdateBanner(ctx, bannerID, &usecase.HeroBannerInput{Image: pngUpload()})

		assert.ErrorIs(t, err, domainerrors.ErrHeroBannerNotFound)
	})

	t.Run("unknown banner", func(t *testing.T) {
		fx := createTestHeroBannerService(t)
		fx.repo.EXPECT().FindByID(mock.Anything, bannerID).Return(nil, repository.ErrHeroBannerNotFound)

		_, err := fx.service.UpdateBanner(context.Background(), bannerID, &usecase.HeroBannerInput{Title: "New"})

		assert.ErrorIs(t, err, domainerrors.ErrHeroBannerNotFound)
	})
}

func TestHeroBannerService_DeleteBanner(t *testing.T) {
	fx := createTestHeroBannerService(t)
	ctx := context.Background()
	bannerID := uuid.New()

	fx.repo.EXPECT().FindByID(ctx, bannerID).Return(&entity.HeroBanner{ID: bannerID, ImagePath: "hero-banners/a.png"}, nil)
	fx.repo.EXPECT().Delete(ctx, bannerID).Return(nil)
	fx.storage.EXPECT().Delete(ctx, "hero-banners/a.png").Return(errors.New("already gone"))

	require.NoError(t, fx.service.DeleteBanner(ctx, bannerID))
}
