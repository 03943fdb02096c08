package handler

import (
	"net/http"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const qrCodeField = "qrCode"

// PaymentDetailHandlerParams holds dependencies for PaymentDetailHandler, injected by Fx.
type PaymentDetailHandlerParams struct {
	fx.In

	PaymentDetailUC usecase.PaymentDetailUsecase
}

// PaymentDetailHandler serves the UPI account customers pay into.
type PaymentDetailHandler struct {
	paymentDetailUC usecase.PaymentDetailUsecase
}

// NewPaymentDetailHandler is the constructor for PaymentDetailHandler.
func NewPaymentDetailHandler(params PaymentDetailHandlerParams) *PaymentDetailHandler {
	return &PaymentDetailHandler{paymentDetailUC: params.PaymentDetailUC}
}

// PaymentDetailForm is the multipart body of PUT /admin/payment-details.
type PaymentDetailForm struct {
	AccountHolderName string `form:"accountHolderName"`
	UPIID             string `form:"upiId"`
	Phone             string `form:"phone"`
}

// GetActive handles GET /payment-details/active.
func (h *PaymentDetailHandler) GetActive(c echo.Context) error {
	detail, err := h.paymentDetailUC.GetActive(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPaymentDetailResponse(detail))
}

// GetMine handles GET /admin/payment-details/me.
func (h *PaymentDetailHandler) GetMine(c echo.Context) error {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	detail, err := h.paymentDetailUC.GetMine(c.Request().Context(), adminID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPaymentDetailResponse(detail))
}

// Save handles PUT /admin/payment-details.
func (h *PaymentDetailHandler) Save(c echo.Context) error {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var form PaymentDetailForm
	if err := c.Bind(&form); err != nil {
		return response.BindingError(c, "Invalid payment details input")
	}

	upload, closeFile, err := formFile(c, qrCodeField)
	defer closeFile()
	if err != nil {
		return response.BindingError(c, "Invalid multipart upload")
	}

	detail, err := h.paymentDetailUC.Save(c.Request().Context(), adminID, &usecase.PaymentDetailInput{
		AccountHolderName: form.AccountHolderName,
		UPIID:             form.UPIID,
		Phone:             form.Phone,
		QRCode:            upload,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPaymentDetailResponse(detail))
}

// Deactivate handles PATCH /admin/payment-details/deactivate.
func (h *PaymentDetailHandler) Deactivate(c echo.Context) error {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	detail, err := h.paymentDetailUC.Deactivate(c.Request().Context(), adminID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPaymentDetailResponse(detail))
}

// Delete handles DELETE /admin/payment-details.
func (h *PaymentDetailHandler) Delete(c echo.Context) error {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.paymentDetailUC.Delete(c.Request().Context(), adminID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Payment details deleted")
}
