package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cartServiceFixtures struct {
	service     usecase.CartUsecase
	cartRepo    *mockRepo.MockCartRepository
	productRepo *mockRepo.MockProductRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	return cartServiceFixtures{
		service: NewCartService(CartServiceParams{
			CartRepo:    cartRepo,
			ProductRepo: productRepo,
			Logger:      newDiscardLogger(),
		}),
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

func newTestProduct(stock int, price string) *entity.Product {
	return &entity.Product{
		ID:    uuid.New(),
		Name:  "Paneer Tikka",
		Price: decimal.RequireFromString(price),
		Stock: stock,
	}
}

func TestCartService_GetCart_NoCartReturnsEmpty(t *testing.T) {
	fx := createTestCartService(t)
	userID := uuid.New()

	fx.cartRepo.EXPECT().FindByUser(mock.Anything, userID).Return(nil, repository.ErrCartNotFound)

	cart, err := fx.service.GetCart(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, userID, cart.UserID)
	assert.Empty(t, cart.Items)
	assert.True(t, cart.Total().IsZero())
}

func TestCartService_AddItem_MergesIntoLine(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	product := newTestProduct(10, "100")
	cart := &entity.Cart{ID: uuid.New(), UserID: userID}
	merged := &entity.Cart{
		ID:     cart.ID,
		UserID: userID,
		Items:  []entity.CartItem{{ProductID: product.ID, Quantity: 5, Product: product}},
	}

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.cartRepo.EXPECT().GetOrCreate(ctx, userID).Return(cart, nil)
	fx.cartRepo.EXPECT().IncrementItem(ctx, cart.ID, product.ID, 3, 10).Return(nil)
	fx.cartRepo.EXPECT().FindByUser(ctx, userID).Return(merged, nil)

	result, err := fx.service.AddItem(ctx, userID, product.ID, 3)

	require.NoError(t, err)
	assert.Equal(t, 5, result.ItemCount())
	assert.True(t, decimal.NewFromInt(500).Equal(result.Total()))
}

func TestCartService_AddItem_ExceedsStock(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	product := newTestProduct(2, "100")

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

	_, err := fx.service.AddItem(ctx, userID, product.ID, 3)

	require.Error(t, err)
	assert.True(t, domainerrors.HasCode(err, "INSUFFICIENT_STOCK"))
	assert.EqualError(t, err, "Only 2 items in stock")
	fx.cartRepo.AssertNotCalled(t, "GetOrCreate", mock.Anything, mock.Anything)
}

func TestCartService_AddItem_MergedQuantityOverStock(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	product := newTestProduct(4, "100")
	cart := &entity.Cart{ID: uuid.New(), UserID: userID}

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.cartRepo.EXPECT().GetOrCreate(ctx, userID).Return(cart, nil)
	fx.cartRepo.EXPECT().IncrementItem(ctx, cart.ID, product.ID, 2, 4).Return(repository.ErrCartItemLimit)

	_, err := fx.service.AddItem(ctx, userID, product.ID, 2)

	assert.True(t, domainerrors.HasCode(err, "INSUFFICIENT_STOCK"))
	assert.EqualError(t, err, "Cannot add more. Only 4 in stock")
}

func TestCartService_AddItem_ProductNotFound(t *testing.T) {
	fx := createTestCartService(t)
	productID := uuid.New()

	fx.productRepo.EXPECT().FindByID(mock.Anything, productID).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.AddItem(context.Background(), uuid.New(), productID, 1)

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCartService_AddItem_QuantityBelowOne(t *testing.T) {
	fx := createTestCartService(t)

	_, err := fx.service.AddItem(context.Background(), uuid.New(), uuid.New(), 0)

	assert.True(t, domainerrors.HasCode(err, "VALIDATION_FAILED"))
}

func TestCartService_UpdateItem(t *testing.T) {
	userID := uuid.New()
	product := newTestProduct(3, "50")
	cart := &entity.Cart{
		ID:     uuid.New(),
		UserID: userID,
		Items:  []entity.CartItem{{ProductID: product.ID, Quantity: 1, Product: product}},
	}

	t.Run("sets quantity", func(t *testing.T) {
		fx := createTestCartService(t)
		ctx := context.Background()

		fx.cartRepo.EXPECT().FindByUser(ctx, userID).Return(cart, nil).Twice()
		fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
		fx.cartRepo.EXPECT().SetItemQuantity(ctx, cart.ID, product.ID, 3).Return(nil)

		_, err := fx.service.UpdateItem(ctx, userID, product.ID, 3)

		require.NoError(t, err)
	})

	t.Run("over stock leaves cart unchanged", func(t *testing.T) {
		fx := createTestCartService(t)
		ctx := context.Background()

		fx.cartRepo.EXPECT().FindByUser(ctx, userID).Return(cart, nil)
		fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

		_, err := fx.service.UpdateItem(ctx, userID, product.ID, 4)

		assert.EqualError(t, err, "Only 3 items in stock")
		fx.cartRepo.AssertNotCalled(t, "SetItemQuantity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("item not in cart", func(t *testing.T) {
		fx := createTestCartService(t)

		fx.cartRepo.EXPECT().FindByUser(mock.Anything, userID).Return(cart, nil)

		_, err := fx.service.UpdateItem(context.Background(), userID, uuid.New(), 1)

		assert.ErrorIs(t, err, domainerrors.ErrCartItemNotFound)
	})

	t.Run("no cart", func(t *testing.T) {
		fx := createTestCartService(t)

		fx.cartRepo.EXPECT().FindByUser(mock.Anything, userID).Return(nil, repository.ErrCartNotFound)

		_, err := fx.service.UpdateItem(context.Background(), userID, product.ID, 1)

		assert.ErrorIs(t, err, domainerrors.ErrCartItemNotFound)
	})
}

func TestCartService_RemoveItem_AbsentProductSucceeds(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	cart := &entity.Cart{ID: uuid.New(), UserID: userID}
	productID := uuid.New()

	fx.cartRepo.EXPECT().FindByUser(ctx, userID).Return(cart, nil).Twice()
	fx.cartRepo.EXPECT().RemoveItem(ctx, cart.ID, productID).Return(nil)

	result, err := fx.service.RemoveItem(ctx, userID, productID)

	require.NoError(t, err)
	assert.Empty(t, result.Items)
}

func TestCartService_ListItems_Paginates(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	page := entity.NewPage(2, 2, 10, 100)
	items := []entity.CartItem{{ProductID: uuid.New(), Quantity: 1}}

	fx.cartRepo.EXPECT().ListItems(ctx, userID, page).Return(items, int64(3), nil)

	result, err := fx.service.ListItems(ctx, userID, page)

	require.NoError(t, err)
	assert.Equal(t, items, result.Items)
	assert.Equal(t, entity.PageInfo{CurrentPage: 2, TotalPages: 2, TotalItems: 3, Limit: 2}, result.PageInfo)
}

func TestCartService_ClearCart(t *testing.T) {
	fx := createTestCartService(t)
	userID := uuid.New()

	fx.cartRepo.EXPECT().DeleteByUser(mock.Anything, userID).Return(nil)

	require.NoError(t, fx.service.ClearCart(context.Background(), userID))
}
