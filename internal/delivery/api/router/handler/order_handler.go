package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"storefront/config"
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const screenshotField = "screenshot"

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Config  *config.Config
}

// OrderHandler serves checkout, payment proof and order administration.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	store   *config.StoreConfig
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		store:   params.Config.Store,
	}
}

// PlaceOrderRequest is the body of POST /orders/place.
type PlaceOrderRequest struct {
	AddressID     string `json:"addressId" validate:"required,uuid"`
	PaymentMethod string `json:"paymentMethod" validate:"payment_method"`
}

// UpdateStatusRequest is the body of PUT /orders/admin/:orderId/status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// LatestOrderResponse identifies the caller's most recent order.
type LatestOrderResponse struct {
	UniqueCode string    `json:"uniqueCode"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

// PlaceOrder handles POST /orders/place.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.PlaceOrder(c.Request().Context(), &usecase.PlaceOrderInput{
		UserID:         userID,
		AddressID:      uuid.MustParse(req.AddressID),
		PaymentMethod:  req.PaymentMethod,
		IdempotencyKey: strings.TrimSpace(c.Request().Header.Get(constants.IdempotencyKeyHeader)),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toOrderResponse(order))
}

// UploadScreenshot handles POST /orders/:orderId/screenshot.
func (h *OrderHandler) UploadScreenshot(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, ok := pathUUID(c, "orderId")
	if !ok {
		return response.InvalidID(c, "order")
	}

	upload, closeFile, err := formFile(c, screenshotField)
	defer closeFile()
	if err != nil {
		return response.BindingError(c, "Invalid multipart upload")
	}

	order, err := h.orderUC.UploadPaymentProof(c.Request().Context(), userID, orderID, upload)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order))
}

// ListMyOrders handles GET /orders/my.
func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	page, err := h.orderUC.ListMyOrders(c.Request().Context(), userID, pageFromQuery(c, h.store))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paginated(c, toOrderResponses(page.Items), page.PageInfo)
}

// GetByCode handles GET /orders/code/:code.
func (h *OrderHandler) GetByCode(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	requester := usecase.Requester{UserID: userID, IsAdmin: middleware.IsAdmin(c)}
	order, err := h.orderUC.GetOrderByCode(c.Request().Context(), requester, c.Param("code"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order))
}

// LatestCode handles GET /orders/latest-code.
func (h *OrderHandler) LatestCode(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	order, err := h.orderUC.LatestOrder(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &LatestOrderResponse{
		UniqueCode: order.UniqueCode,
		Status:     order.Status.String(),
		CreatedAt:  order.CreatedAt,
	})
}

// PaymentQR handles GET /orders/:orderId/payment-qr.
func (h *OrderHandler) PaymentQR(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, ok := pathUUID(c, "orderId")
	if !ok {
		return response.InvalidID(c, "order")
	}

	png, err := h.orderUC.PaymentQR(c.Request().Context(), userID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")

	return c.Blob(http.StatusOK, "image/png", png)
}

// UpdateStatus handles PUT /orders/admin/:orderId/status.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	orderID, ok := pathUUID(c, "orderId")
	if !ok {
		return response.InvalidID(c, "order")
	}

	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid status input")
	}

	order, err := h.orderUC.UpdateStatus(c.Request().Context(), orderID, req.Status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order))
}

// ListAll handles GET /orders/admin/all.
func (h *OrderHandler) ListAll(c echo.Context) error {
	filter, err := orderFilterFromQuery(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	page, err := h.orderUC.ListOrders(c.Request().Context(), filter, pageFromQuery(c, h.store))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paginated(c, toOrderResponses(page.Items), page.PageInfo)
}

// Export handles GET /orders/admin/export.
func (h *OrderHandler) Export(c echo.Context) error {
	filter, err := orderFilterFromQuery(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	export, err := h.orderUC.ExportOrders(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", export.Filename))

	return c.Blob(http.StatusOK, export.ContentType, export.Data)
}

func orderFilterFromQuery(c echo.Context) (entity.OrderFilter, error) {
	raw := strings.TrimSpace(c.QueryParam("status"))
	if raw == "" {
		return entity.OrderFilter{}, nil
	}

	status, ok := entity.ParseOrderStatus(raw)
	if !ok {
		return entity.OrderFilter{}, domainerrors.ErrInvalidStatus.WithDetails(raw)
	}

	return entity.OrderFilter{Status: &status}, nil
}
