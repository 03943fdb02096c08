package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type catalogService struct {
	productRepo repository.ProductRepository
	cache       service.ProductCache
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Cache       service.ProductCache
	Logger      *slog.Logger
}

// NewCatalogService creates the menu usecase.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: params.ProductRepo,
		cache:       params.Cache,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *catalogService) ListProducts(ctx context.Context, filter entity.ProductFilter, page entity.Page) (*usecase.ProductPage, error) {
	products, total, err := srv.productRepo.List(ctx, filter, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return &usecase.ProductPage{
		Items:    products,
		PageInfo: entity.NewPageInfo(page, total),
	}, nil
}

// GetProduct reads through the cache. Cache failures only cost a database round trip.
func (srv *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	cached, err := srv.cache.Get(ctx, id)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, service.ErrCacheMiss) {
		srv.log(ctx).Warn("Product cache read failed", slog.String("product_id", id.String()), slog.Any("error", err))
	}

	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	if err := srv.cache.Set(ctx, product); err != nil {
		srv.log(ctx).Warn("Product cache write failed", slog.String("product_id", id.String()), slog.Any("error", err))
	}

	return product, nil
}

func (srv *catalogService) CreateProduct(ctx context.Context, input *usecase.ProductInput) (*entity.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product := &entity.Product{ID: uuid.New()}
	applyProductInput(product, input)

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.String("product_id", product.ID.String()), slog.String("name", product.Name))

	return product, nil
}

func (srv *catalogService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	applyProductInput(product, input)

	if err := srv.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	srv.invalidate(ctx, id)

	return product, nil
}

func (srv *catalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := srv.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to delete product")
	}

	srv.invalidate(ctx, id)
	srv.log(ctx).Info("Product deleted", slog.String("product_id", id.String()))

	return nil
}

func (srv *catalogService) invalidate(ctx context.Context, ids ...uuid.UUID) {
	if err := srv.cache.Invalidate(ctx, ids); err != nil {
		srv.log(ctx).Warn("Product cache invalidation failed", slog.Any("error", err))
	}
}

func validateProductInput(input *usecase.ProductInput) error {
	switch {
	case strings.TrimSpace(input.Name) == "":
		return domainerrors.NewValidationError("name is required")
	case !input.Price.IsPositive():
		return domainerrors.NewValidationError("price must be greater than 0")
	case input.Stock < 0:
		return domainerrors.NewValidationError("stock cannot be negative")
	}

	return nil
}

func applyProductInput(product *entity.Product, input *usecase.ProductInput) {
	product.Name = strings.TrimSpace(input.Name)
	product.Price = input.Price.Round(2)
	product.Stock = input.Stock
	product.Image = strings.TrimSpace(input.Image)
	product.Type = strings.TrimSpace(input.Type)
	product.Cuisine = strings.TrimSpace(input.Cuisine)
	product.Meat = strings.TrimSpace(input.Meat)
}
