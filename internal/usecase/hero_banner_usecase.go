package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// HeroBannerInput carries an admin's banner submission. Both fields are optional on update.
type HeroBannerInput struct {
	Title string
	Image *FileUpload
}

// HeroBannerUsecase manages the home page banners.
type HeroBannerUsecase interface {
	ListBanners(ctx context.Context) ([]*entity.HeroBanner, error)
	GetBanner(ctx context.Context, id uuid.UUID) (*entity.HeroBanner, error)
	CreateBanner(ctx context.Context, input *HeroBannerInput) (*entity.HeroBanner, error)

	// UpdateBanner changes the title and/or replaces the image; a replaced image is deleted.
	UpdateBanner(ctx context.Context, id uuid.UUID, input *HeroBannerInput) (*entity.HeroBanner, error)

	// DeleteBanner removes the banner together with its image.
	DeleteBanner(ctx context.Context, id uuid.UUID) error
}
