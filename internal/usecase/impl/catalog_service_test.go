package impl

import (
	"context"
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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	productRepo *mockRepo.MockProductRepository
	cache       *mockSvc.MockProductCache
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	cache := mockSvc.NewMockProductCache(t)

	return catalogServiceFixtures{
		service: NewCatalogService(CatalogServiceParams{
			ProductRepo: productRepo,
			Cache:       cache,
			Logger:      newDiscardLogger(),
		}),
		productRepo: productRepo,
		cache:       cache,
	}
}

func TestCatalogService_GetProduct_CacheHit(t *testing.T) {
	fx := createTestCatalogService(t)
	product := newTestProduct(4, "120")

	fx.cache.EXPECT().Get(mock.Anything, product.ID).Return(product, nil)

	found, err := fx.service.GetProduct(context.Background(), product.ID)

	require.NoError(t, err)
	assert.Equal(t, product, found)
	fx.productRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestCatalogService_GetProduct_MissFillsCache(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	product := newTestProduct(4, "120")

	fx.cache.EXPECT().Get(ctx, product.ID).Return(nil, service.ErrCacheMiss)
	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.cache.EXPECT().Set(ctx, product).Return(nil)

	found, err := fx.service.GetProduct(ctx, product.ID)

	require.NoError(t, err)
	assert.Equal(t, product, found)
}

func TestCatalogService_GetProduct_CacheErrorFallsBack(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	productID := uuid.New()

	fx.cache.EXPECT().Get(ctx, productID).Return(nil, errors.New("connection refused"))
	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.GetProduct(ctx, productID)

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_CreateProduct_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.ProductInput
	}{
		{name: "missing name", input: usecase.ProductInput{Price: decimal.NewFromInt(10)}},
		{name: "zero price", input: usecase.ProductInput{Name: "Dal", Price: decimal.Zero}},
		{name: "negative stock", input: usecase.ProductInput{Name: "Dal", Price: decimal.NewFromInt(10), Stock: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCatalogService(t)

			_, err := fx.service.CreateProduct(context.Background(), &tt.input)

			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestCatalogService_CreateProduct_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	fx.productRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Product")).Return(nil)

	product, err := fx.service.CreateProduct(context.Background(), &usecase.ProductInput{
		Name:  " Dal Makhani ",
		Price: decimal.RequireFromString("249.999"),
		Stock: 8,
		Type:  "main",
	})

	require.NoError(t, err)
	assert.Equal(t, "Dal Makhani", product.Name)
	assert.Equal(t, "250", product.Price.String())
}

func TestCatalogService_UpdateProduct_InvalidatesCache(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	product := newTestProduct(4, "120")

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.productRepo.EXPECT().Update(ctx, product).Return(nil)
	fx.cache.EXPECT().Invalidate(ctx, []uuid.UUID{product.ID}).Return(nil)

	updated, err := fx.service.UpdateProduct(ctx, product.ID, &usecase.ProductInput{Name: "Paneer Tikka", Price: decimal.NewFromInt(150), Stock: 2})

	require.NoError(t, err)
	assert.Equal(t, 2, updated.Stock)
}

func TestCatalogService_DeleteProduct(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().Delete(ctx, productID).Return(nil)
	fx.cache.EXPECT().Invalidate(ctx, []uuid.UUID{productID}).Return(nil)

	require.NoError(t, fx.service.DeleteProduct(ctx, productID))
}

func TestCatalogService_ListProducts(t *testing.T) {
	fx := createTestCatalogService(t)
	filter := entity.ProductFilter{Cuisine: "north-indian"}
	page := entity.NewPage(1, 10, 10, 100)

	fx.productRepo.EXPECT().List(mock.Anything, filter, page).Return([]*entity.Product{newTestProduct(1, "10")}, int64(11), nil)

	result, err := fx.service.ListProducts(context.Background(), filter, page)

	require.NoError(t, err)
	assert.Len(t, result.Items, 1)
	assert.Equal(t, 2, result.PageInfo.TotalPages)
}
