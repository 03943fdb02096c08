package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductInput carries the editable fields of a product.
type ProductInput struct {
	Name    string
	Price   decimal.Decimal
	Stock   int
	Image   string
	Type    string
	Cuisine string
	Meat    string
}

// ProductPage is one page of the catalog.
type ProductPage struct {
	Items    []*entity.Product
	PageInfo entity.PageInfo
}

// CatalogUsecase defines the menu operations.
type CatalogUsecase interface {
	ListProducts(ctx context.Context, filter entity.ProductFilter, page entity.Page) (*ProductPage, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// Admin operations. Writes invalidate cached product reads.
	CreateProduct(ctx context.Context, input *ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input *ProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}
