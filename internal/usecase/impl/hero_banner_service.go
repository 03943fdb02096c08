package impl

import (
	"context"
	"log/slog"
	"strings"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type heroBannerService struct {
	bannerRepo repository.HeroBannerRepository
	uploader   imageUploader
	logger     *slog.Logger
}

// HeroBannerServiceParams holds dependencies for HeroBannerService, injected by Fx.
type HeroBannerServiceParams struct {
	fx.In

	BannerRepo repository.HeroBannerRepository
	Storage    service.FileStorage
	Config     *config.Config
	Logger     *slog.Logger
}

// NewHeroBannerService creates the hero banner usecase.
func NewHeroBannerService(params HeroBannerServiceParams) usecase.HeroBannerUsecase {
	var maxUploadBytes int64
	if params.Config != nil && params.Config.Storage != nil {
		maxUploadBytes = params.Config.Storage.MaxUploadBytes
	}

	return &heroBannerService{
		bannerRepo: params.BannerRepo,
		uploader:   imageUploader{storage: params.Storage, maxBytes: maxUploadBytes},
		logger:     params.Logger,
	}
}

func (srv *heroBannerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *heroBannerService) ListBanners(ctx context.Context) ([]*entity.HeroBanner, error) {
	banners, err := srv.bannerRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list hero banners")
	}

	return banners, nil
}

func (srv *heroBannerService) GetBanner(ctx context.Context, id uuid.UUID) (*entity.HeroBanner, error) {
	banner, err := srv.bannerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrHeroBannerNotFound) {
			return nil, domainerrors.ErrHeroBannerNotFound
		}

		return nil, errors.Wrap(err, "failed to find hero banner")
	}

	return banner, nil
}

// CreateBanner stores the image first; it is removed again if the row cannot be written.
func (srv *heroBannerService) CreateBanner(ctx context.Context, input *usecase.HeroBannerInput) (*entity.HeroBanner, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" || !hasContent(input.Image) {
		return nil, domainerrors.ErrHeroBannerIncomplete
	}

	banner := &entity.HeroBanner{ID: uuid.New(), Title: title}
	stored, err := srv.uploader.store(ctx, constants.HeroBannerPrefix, banner.ID, input.Image)
	if err != nil {
		return nil, err
	}
	banner.ImageURL = stored.URL
	banner.ImagePath = stored.Key

	if err := srv.bannerRepo.Create(ctx, banner); err != nil {
		srv.discardFile(ctx, stored.Key)

		return nil, errors.Wrap(err, "failed to create hero banner")
	}

	srv.log(ctx).Info("Hero banner created", slog.String("banner_id", banner.ID.String()))

	return banner, nil
}

// UpdateBanner keeps the current title when none is given.
func (srv *heroBannerService) UpdateBanner(ctx context.Context, id uuid.UUID, input *usecase.HeroBannerInput) (*entity.HeroBanner, error) {
	banner, err := srv.GetBanner(ctx, id)
	if err != nil {
		return nil, err
	}

	if title := strings.TrimSpace(input.Title); title != "" {
		banner.Title = title
	}

	var replacedKey, uploadedKey string
	if hasContent(input.Image) {
		stored, err := srv.uploader.store(ctx, constants.HeroBannerPrefix, banner.ID, input.Image)
		if err != nil {
			return nil, err
		}

		replacedKey = banner.ImagePath
		uploadedKey = stored.Key
		banner.ImageURL = stored.URL
		banner.ImagePath = stored.Key
	}

	if err := srv.bannerRepo.Update(ctx, banner); err != nil {
		if uploadedKey != "" {
			srv.discardFile(ctx, uploadedKey)
		}
		if errors.Is(err, repository.ErrHeroBannerNotFound) {
			return nil, domainerrors.ErrHeroBannerNotFound
		}

		return nil, errors.Wrap(err, "failed to update hero banner")
	}

	if replacedKey != "" {
		srv.discardFile(ctx, replacedKey)
	}

	return banner, nil
}

func (srv *heroBannerService) DeleteBanner(ctx context.Context, id uuid.UUID) error {
	banner, err := srv.GetBanner(ctx, id)
	if err != nil {
		return err
	}

	if err := srv.bannerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrHeroBannerNotFound) {
			return domainerrors.ErrHeroBannerNotFound
		}

		return errors.Wrap(err, "failed to delete hero banner")
	}

	if banner.ImagePath != "" {
		srv.discardFile(ctx, banner.ImagePath)
	}

	srv.log(ctx).Info("Hero banner deleted", slog.String("banner_id", id.String()))

	return nil
}

func (srv *heroBannerService) discardFile(ctx context.Context, key string) {
	if err := srv.uploader.storage.Delete(ctx, key); err != nil {
		srv.log(ctx).Warn("Failed to delete banner image", slog.String("key", key), slog.Any("error", err))
	}
}
