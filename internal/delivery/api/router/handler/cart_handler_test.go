package handler

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCartHandler(t *testing.T) (*CartHandler, *mockUC.MockCartUsecase) {
	cartUC := mockUC.NewMockCartUsecase(t)

	return NewCartHandler(CartHandlerParams{CartUC: cartUC, Config: newTestConfig()}), cartUC
}

func sampleCart(userID uuid.UUID) *entity.Cart {
	productA := &entity.Product{ID: uuid.New(), Name: "Paneer Tikka", Price: decimal.NewFromInt(100), Stock: 10}
	productB := &entity.Product{ID: uuid.New(), Name: "Dal Makhani", Price: decimal.NewFromInt(50), Stock: 4}

	return &entity.Cart{
		ID:     uuid.New(),
		UserID: userID,
		Items: []entity.CartItem{
			{ProductID: productA.ID, Quantity: 2, Product: productA, AddedAt: time.Now()},
			{ProductID: productB.ID, Quantity: 1, Product: productB, AddedAt: time.Now()},
		},
	}
}

func TestCartHandler_GetCart(t *testing.T) {
	handler, cartUC := newCartHandler(t)
	userID := uuid.New()

	cartUC.EXPECT().GetCart(mock.Anything, userID).Return(sampleCart(userID), nil)

	c, rec := newJSONContext(http.MethodGet, "/cart", "")
	asCaller(c, userID)

	require.NoError(t, handler.GetCart(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var cart CartResponse
	decodeData(t, rec, &cart)
	assert.Equal(t, "250.00", cart.Total)
	assert.Equal(t, 3, cart.ItemCount)
	assert.Len(t, cart.Items, 2)
}

func TestCartHandler_AddItem(t *testing.T) {
	userID, productID := uuid.New(), uuid.New()

	t.Run("adds the requested quantity", func(t *testing.T) {
		handler, cartUC := newCartHandler(t)
		cartUC.EXPECT().AddItem(mock.Anything, userID, productID, 2).Return(sampleCart(userID), nil)

		c, rec := newJSONContext(http.MethodPost, "/cart", fmt.Sprintf(`{"productId":%q,"quantity":2}`, productID))
		asCaller(c, userID)

		require.NoError(t, handler.AddItem(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing quantity adds one", func(t *testing.T) {
		handler, cartUC := newCartHandler(t)
		cartUC.EXPECT().AddItem(mock.Anything, userID, productID, 1).Return(sampleCart(userID), nil)

		c, rec := newJSONContext(http.MethodPost, "/cart", fmt.Sprintf(`{"productId":%q}`, productID))
		asCaller(c, userID)

		require.NoError(t, handler.AddItem(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("insufficient stock is a conflict with the remaining count", func(t *testing.T) {
		handler, cartUC := newCartHandler(t)
		cartUC.EXPECT().AddItem(mock.Anything, userID, productID, 9).Return(nil, domainerrors.NewInsufficientStockError(4))

		c, rec := newJSONContext(http.MethodPost, "/cart", fmt.Sprintf(`{"productId":%q,"quantity":9}`, productID))
		asCaller(c, userID)

		require.NoError(t, handler.AddItem(c))
		assert.Equal(t, http.StatusConflict, rec.Code)

		env := decode(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INSUFFICIENT_STOCK", env.Error.Code)
		assert.Equal(t, "Only 4 items in stock", env.Error.Message)
	})

	t.Run("zero quantity never reaches the usecase", func(t *testing.T) {
		handler, _ := newCartHandler(t)

		c, rec := newJSONContext(http.MethodPost, "/cart", fmt.Sprintf(`{"productId":%q,"quantity":0}`, productID))
		asCaller(c, userID)

		require.NoError(t, handler.AddItem(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
	})

	t.Run("anonymous caller", func(t *testing.T) {
		handler, _ := newCartHandler(t)

		c, rec := newJSONContext(http.MethodPost, "/cart", `{}`)

		require.NoError(t, handler.AddItem(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestCartHandler_UpdateAndRemove(t *testing.T) {
	userID, productID := uuid.New(), uuid.New()

	t.Run("update uses the path product", func(t *testing.T) {
		handler, cartUC := newCartHandler(t)
		cartUC.EXPECT().UpdateItem(mock.Anything, userID, productID, 3).Return(sampleCart(userID), nil)

		c, rec := newJSONContext(http.MethodPatch, "/cart/items/"+productID.String(), `{"quantity":3}`)
		c.SetParamNames("productId")
		c.SetParamValues(productID.String())
		asCaller(c, userID)

		require.NoError(t, handler.UpdateItem(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("malformed product id", func(t *testing.T) {
		handler, _ := newCartHandler(t)

		c, rec := newJSONContext(http.MethodDelete, "/cart/items/nope", "")
		c.SetParamNames("productId")
		c.SetParamValues("nope")
		asCaller(c, userID)

		require.NoError(t, handler.RemoveItem(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_ID", decode(t, rec).Error.Code)
	})

	t.Run("remove returns the remaining cart", func(t *testing.T) {
		handler, cartUC := newCartHandler(t)
		cartUC.EXPECT().RemoveItem(mock.Anything, userID, productID).Return(&entity.Cart{UserID: userID}, nil)

		c, rec := newJSONContext(http.MethodDelete, "/cart/items/"+productID.String(), "")
		c.SetParamNames("productId")
		c.SetParamValues(productID.String())
		asCaller(c, userID)

		require.NoError(t, handler.RemoveItem(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var cart CartResponse
		decodeData(t, rec, &cart)
		assert.Equal(t, "0.00", cart.Total)
		assert.Empty(t, cart.Items)
	})
}

func TestCartHandler_ListItems_Paginates(t *testing.T) {
	handler, cartUC := newCartHandler(t)
	userID := uuid.New()
	cart := sampleCart(userID)

	cartUC.EXPECT().ListItems(mock.Anything, userID, entity.Page{Number: 2, Size: 1}).
		Return(&usecase.CartItemPage{
			Items:    cart.Items[1:],
			PageInfo: entity.NewPageInfo(entity.Page{Number: 2, Size: 1}, 2),
		}, nil)

	c, rec := newJSONContext(http.MethodGet, "/cart/items?page=2&limit=1", "")
	asCaller(c, userID)

	require.NoError(t, handler.ListItems(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	env := decode(t, rec)
	require.NotNil(t, env.Meta.Pagination)
	assert.Equal(t, 2, env.Meta.Pagination.TotalPages)
	assert.Equal(t, 2, env.Meta.Pagination.CurrentPage)
}
