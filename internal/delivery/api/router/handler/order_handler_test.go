package handler

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOrderHandler(t *testing.T) (*OrderHandler, *mockUC.MockOrderUsecase) {
	orderUC := mockUC.NewMockOrderUsecase(t)

	return NewOrderHandler(OrderHandlerParams{OrderUC: orderUC, Config: newTestConfig()}), orderUC
}

func sampleOrder(userID uuid.UUID, method entity.PaymentMethod) *entity.Order {
	return &entity.Order{
		ID:        uuid.New(),
		UserID:    userID,
		AddressID: uuid.New(),
		Items: []entity.OrderItem{
			{ProductID: uuid.New(), ProductName: "Paneer Tikka", Quantity: 2, PriceAtOrder: decimal.NewFromInt(100)},
			{ProductID: uuid.New(), ProductName: "Dal Makhani", Quantity: 1, PriceAtOrder: decimal.NewFromInt(50)},
		},
		TotalAmount:   decimal.NewFromInt(250),
		PaymentMethod: method,
		Status:        entity.OrderStatusPending,
		UniqueCode:    "ORD01J9Z3K9QF4M2V7T6N5R4P3Q2B",
		CreatedAt:     time.Now(),
	}
}

func TestOrderHandler_PlaceOrder(t *testing.T) {
	userID, addressID := uuid.New(), uuid.New()
	body := fmt.Sprintf(`{"addressId":%q,"paymentMethod":"UPI"}`, addressID)

	t.Run("passes the idempotency key through", func(t *testing.T) {
		handler, orderUC := newOrderHandler(t)
		orderUC.EXPECT().PlaceOrder(mock.Anything, &usecase.PlaceOrderInput{
			UserID:         userID,
			AddressID:      addressID,
			PaymentMethod:  "UPI",
			IdempotencyKey: "checkout-1",
		}).Return(sampleOrder(userID, entity.PaymentMethodUPI), nil)

		c, rec := newJSONContext(http.MethodPost, "/orders/place", body)
		c.Request().Header.Set(constants.IdempotencyKeyHeader, " checkout-1 ")
		asCaller(c, userID)

		require.NoError(t, handler.PlaceOrder(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var order OrderResponse
		decodeData(t, rec, &order)
		assert.Equal(t, "250.00", order.TotalAmount)
		assert.Equal(t, "100.00", order.Items[0].PriceAtOrder)
		assert.Equal(t, "Pending", order.Status)
	})

	t.Run("empty cart", func(t *testing.T) {
		handler, orderUC := newOrderHandler(t)
		orderUC.EXPECT().PlaceOrder(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrEmptyCart)

		c, rec := newJSONContext(http.MethodPost, "/orders/place", body)
		asCaller(c, userID)

		require.NoError(t, handler.PlaceOrder(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "EMPTY_CART", decode(t, rec).Error.Code)
	})

	t.Run("unknown payment method", func(t *testing.T) {
		handler, _ := newOrderHandler(t)

		c, rec := newJSONContext(http.MethodPost, "/orders/place", fmt.Sprintf(`{"addressId":%q,"paymentMethod":"CARD"}`, addressID))
		asCaller(c, userID)

		require.NoError(t, handler.PlaceOrder(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestOrderHandler_UploadScreenshot(t *testing.T) {
	userID := uuid.New()
	order := sampleOrder(userID, entity.PaymentMethodUPI)

	newUploadContext := func(t *testing.T, withFile bool) (echo.Context, *httptest.ResponseRecorder) {
		t.Helper()

		var body bytes.Buffer
		writer := multipart.NewWriter(&body)
		if withFile {
			part, err := writer.CreateFormFile(screenshotField, "proof.png")
			require.NoError(t, err)
			_, err = part.Write([]byte("\x89PNG\r\n\x1a\n"))
			require.NoError(t, err)
		}
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/orders/"+order.ID.String()+"/screenshot", &body)
		req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
		rec := httptest.NewRecorder()
		c := newEcho().NewContext(req, rec)
		c.SetParamNames("orderId")
		c.SetParamValues(order.ID.String())
		asCaller(c, userID)

		return c, rec
	}

	t.Run("forwards the uploaded file", func(t *testing.T) {
		handler, orderUC := newOrderHandler(t)
		paid := *order
		paid.Status = entity.OrderStatusPaid
		orderUC.EXPECT().
			UploadPaymentProof(mock.Anything, userID, order.ID, mock.MatchedBy(func(file *usecase.FileUpload) bool {
				return file != nil && file.Filename == "proof.png" && file.Size == 8
			})).
			Return(&paid, nil)

		c, rec := newUploadContext(t, true)

		require.NoError(t, handler.UploadScreenshot(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing file is left to the usecase", func(t *testing.T) {
		handler, orderUC := newOrderHandler(t)
		orderUC.EXPECT().
			UploadPaymentProof(mock.Anything, userID, order.ID, (*usecase.FileUpload)(nil)).
			Return(nil, domainerrors.ErrScreenshotRequired)

		c, rec := newUploadContext(t, false)

		require.NoError(t, handler.UploadScreenshot(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "No file uploaded", decode(t, rec).Error.Message)
	})

	t.Run("second screenshot", func(t *testing.T) {
		handler, orderUC := newOrderHandler(t)
		orderUC.EXPECT().
			UploadPaymentProof(mock.Anything, userID, order.ID, mock.Anything).
			Return(nil, domainerrors.ErrScreenshotAlreadyAdded)

		c, rec := newUploadContext(t, true)

		require.NoError(t, handler.UploadScreenshot(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "ALREADY_PROVIDED", decode(t, rec).Error.Code)
	})
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	orderID := uuid.New()

	t.Run("unknown status", func(t *testing.T) {
		handler, orderUC := newOrderHandler(t)
		orderUC.EXPECT().UpdateStatus(mock.Anything, orderID, "Teleported").
			Return(nil, domainerrors.ErrInvalidStatus.WithDetails("Teleported"))

		c, rec := newJSONContext(http.MethodPut, "/orders/admin/"+orderID.String()+"/status", `{"status":"Teleported"}`)
		c.SetParamNames("orderId")
		c.SetParamValues(orderID.String())

		require.NoError(t, handler.UpdateStatus(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		env := decode(t, rec)
		assert.Equal(t, "INVALID_STATUS", env.Error.Code)
		assert.Equal(t, "Teleported", env.Error.Details)
	})

	t.Run("moves the order", func(t *testing.T) {
		handler, orderUC := newOrderHandler(t)
		shipped := sampleOrder(uuid.New(), entity.PaymentMethodCOD)
		shipped.Status = entity.OrderStatusShipped
		orderUC.EXPECT().UpdateStatus(mock.Anything, orderID, "Shipped").Return(shipped, nil)

		c, rec := newJSONContext(http.MethodPut, "/orders/admin/"+orderID.String()+"/status", `{"status":"Shipped"}`)
		c.SetParamNames("orderId")
		c.SetParamValues(orderID.String())

		require.NoError(t, handler.UpdateStatus(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var order OrderResponse
		decodeData(t, rec, &order)
		assert.Equal(t, "Shipped", order.Status)
	})
}

func TestOrderHandler_ListAll_FiltersByStatus(t *testing.T) {
	t.Run("valid filter", func(t *testing.T) {
		handler, orderUC := newOrderHandler(t)
		paid := entity.OrderStatusPaid
		orderUC.EXPECT().ListOrders(mock.Anything, entity.OrderFilter{Status: &paid}, entity.Page{Number: 1, Size: 10}).
			Return(&usecase.OrderPage{PageInfo: entity.NewPageInfo(entity.Page{Number: 1, Size: 10}, 0)}, nil)

		c, rec := newJSONContext(http.MethodGet, "/orders/admin/all?status=Paid", "")

		require.NoError(t, handler.ListAll(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	for _, raw := range []string{"lost", "paid"} {
		t.Run("invalid filter "+raw, func(t *testing.T) {
			handler, _ := newOrderHandler(t)

			c, rec := newJSONContext(http.MethodGet, "/orders/admin/all?status="+raw, "")

			require.NoError(t, handler.ListAll(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "INVALID_STATUS", decode(t, rec).Error.Code)
		})
	}
}

func TestOrderHandler_Export(t *testing.T) {
	handler, orderUC := newOrderHandler(t)
	orderUC.EXPECT().ExportOrders(mock.Anything, entity.OrderFilter{}).Return(&usecase.OrderExport{
		Filename:    "orders-20261018-101500.xlsx",
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        []byte("xlsx"),
	}, nil)

	c, rec := newJSONContext(http.MethodGet, "/orders/admin/export", "")

	require.NoError(t, handler.Export(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="orders-20261018-101500.xlsx"`, rec.Header().Get(echo.HeaderContentDisposition))
	assert.Equal(t, "xlsx", rec.Body.String())
}

func TestOrderHandler_LatestCodeAndQR(t *testing.T) {
	userID := uuid.New()

	t.Run("latest code", func(t *testing.T) {
		handler, orderUC := newOrderHandler(t)
		orderUC.EXPECT().LatestOrder(mock.Anything, userID).Return(sampleOrder(userID, entity.PaymentMethodCOD), nil)

		c, rec := newJSONContext(http.MethodGet, "/orders/latest-code", "")
		asCaller(c, userID)

		require.NoError(t, handler.LatestCode(c))

		var latest LatestOrderResponse
		decodeData(t, rec, &latest)
		assert.Equal(t, "ORD01J9Z3K9QF4M2V7T6N5R4P3Q2B", latest.UniqueCode)
	})

	t.Run("no orders yet", func(t *testing.T) {
		handler, orderUC := newOrderHandler(t)
		orderUC.EXPECT().LatestOrder(mock.Anything, userID).Return(nil, domainerrors.ErrNoOrders)

		c, rec := newJSONContext(http.MethodGet, "/orders/latest-code", "")
		asCaller(c, userID)

		require.NoError(t, handler.LatestCode(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "No orders found", decode(t, rec).Error.Message)
	})

	t.Run("payment qr is served as png", func(t *testing.T) {
		handler, orderUC := newOrderHandler(t)
		orderID := uuid.New()
		orderUC.EXPECT().PaymentQR(mock.Anything, userID, orderID).Return([]byte("png-bytes"), nil)

		c, rec := newJSONContext(http.MethodGet, "/orders/"+orderID.String()+"/payment-qr", "")
		c.SetParamNames("orderId")
		c.SetParamValues(orderID.String())
		asCaller(c, userID)

		require.NoError(t, handler.PaymentQR(c))
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, "png-bytes", rec.Body.String())
	})
}

func TestOrderHandler_GetByCode_PassesAdminFlag(t *testing.T) {
	handler, orderUC := newOrderHandler(t)
	adminID := uuid.New()

	orderUC.EXPECT().
		GetOrderByCode(mock.Anything, usecase.Requester{UserID: adminID, IsAdmin: true}, "ord01j9z3k9qf4m2v7t6n5r4p3q2b").
		Return(sampleOrder(uuid.New(), entity.PaymentMethodCOD), nil)

	c, rec := newJSONContext(http.MethodGet, "/orders/code/ord01j9z3k9qf4m2v7t6n5r4p3q2b", "")
	c.SetParamNames("code")
	c.SetParamValues("ord01j9z3k9qf4m2v7t6n5r4p3q2b")
	asCaller(c, adminID, "user", "admin")

	require.NoError(t, handler.GetByCode(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
