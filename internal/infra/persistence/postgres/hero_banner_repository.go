package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// heroBannerRepository implements the domain.HeroBannerRepository interface.
type heroBannerRepository struct {
	db *gorm.DB
}

// NewHeroBannerRepository is the constructor for heroBannerRepository.
func NewHeroBannerRepository(db *gorm.DB) repository.HeroBannerRepository {
	return &heroBannerRepository{db: db}
}

func (repo *heroBannerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.HeroBanner, error) {
	var bannerM model.HeroBannerModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&bannerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHeroBannerNotFound
		}

		return nil, errors.Wrap(err, "failed to find hero banner")
	}

	return toHeroBannerDomain(&bannerM), nil
}

// List returns every banner, newest first.
func (repo *heroBannerRepository) List(ctx context.Context) ([]*entity.HeroBanner, error) {
	var bannerModels []model.HeroBannerModel
	if err := repo.db.WithContext(ctx).Order("created_at DESC").Find(&bannerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list hero banners")
	}

	banners := make([]*entity.HeroBanner, 0, len(bannerModels))
	for i := range bannerModels {
		banners = append(banners, toHeroBannerDomain(&bannerModels[i]))
	}

	return banners, nil
}

func (repo *heroBannerRepository) Create(ctx context.Context, banner *entity.HeroBanner) error {
	if banner.ID == uuid.Nil {
		banner.ID = uuid.New()
	}
	bannerM := &model.HeroBannerModel{
		ID:        banner.ID,
		Title:     banner.Title,
		ImageURL:  banner.ImageURL,
		ImagePath: banner.ImagePath,
	}

	if err := repo.db.WithContext(ctx).Create(bannerM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create hero banner")
	}

	banner.CreatedAt = bannerM.CreatedAt
	banner.UpdatedAt = bannerM.UpdatedAt

	return nil
}

func (repo *heroBannerRepository) Update(ctx context.Context, banner *entity.HeroBanner) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.HeroBannerModel{}).
		Where("id = ?", banner.ID).
		Updates(map[string]any{
			"title":      banner.Title,
			"image_url":  banner.ImageURL,
			"image_path": banner.ImagePath,
			"updated_at": now,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update hero banner")
	}
	if result.RowsAffected == 0 {
		return repository.ErrHeroBannerNotFound
	}

	banner.UpdatedAt = now

	return nil
}

func (repo *heroBannerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.HeroBannerModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete hero banner")
	}
	if result.RowsAffected == 0 {
		return repository.ErrHeroBannerNotFound
	}

	return nil
}

func toHeroBannerDomain(data *model.HeroBannerModel) *entity.HeroBanner {
	return &entity.HeroBanner{
		ID:        data.ID,
		Title:     data.Title,
		ImageURL:  data.ImageURL,
		ImagePath: data.ImagePath,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
