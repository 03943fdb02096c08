package handler

import (
	"net/http"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AddressHandlerParams holds dependencies for AddressHandler, injected by Fx.
type AddressHandlerParams struct {
	fx.In

	AddressUC usecase.AddressUsecase
}

// AddressHandler serves the caller's delivery addresses.
type AddressHandler struct {
	addressUC usecase.AddressUsecase
}

// NewAddressHandler is the constructor for AddressHandler.
func NewAddressHandler(params AddressHandlerParams) *AddressHandler {
	return &AddressHandler{addressUC: params.AddressUC}
}

// AddressRequest is the body of address writes. Required fields are checked by the usecase
// so that the message lists all of them at once.
type AddressRequest struct {
	Label        string   `json:"label" validate:"max=50"`
	AddressLine1 string   `json:"addressLine1" validate:"max=200"`
	AddressLine2 string   `json:"addressLine2" validate:"max=200"`
	City         string   `json:"city" validate:"max=100"`
	State        string   `json:"state" validate:"max=100"`
	Country      string   `json:"country" validate:"max=100"`
	Pincode      string   `json:"pincode" validate:"max=20"`
	Phone        string   `json:"phone" validate:"max=20"`
	Latitude     *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude    *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	IsDefault    bool     `json:"isDefault"`
}

func (r *AddressRequest) toInput() *usecase.AddressInput {
	return &usecase.AddressInput{
		Label:        r.Label,
		AddressLine1: r.AddressLine1,
		AddressLine2: r.AddressLine2,
		City:         r.City,
		State:        r.State,
		Country:      r.Country,
		Pincode:      r.Pincode,
		Phone:        r.Phone,
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
		IsDefault:    r.IsDefault,
	}
}

func (h *AddressHandler) bind(c echo.Context) (*AddressRequest, error) {
	var req AddressRequest
	if err := c.Bind(&req); err != nil {
		return nil, response.BindingError(c, "Invalid address input")
	}
	if err := c.Validate(&req); err != nil {
		return nil, response.HandleAppError(c, err)
	}

	return &req, nil
}

// ListAddresses handles GET /addresses.
func (h *AddressHandler) ListAddresses(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	addresses, err := h.addressUC.ListAddresses(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]*AddressResponse, 0, len(addresses))
	for _, address := range addresses {
		out = append(out, toAddressResponse(address))
	}

	return response.Success(c, http.StatusOK, out)
}

// GetAddress handles GET /addresses/:id.
func (h *AddressHandler) GetAddress(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	addressID, ok := pathUUID(c, "id")
	if !ok {
		return response.InvalidID(c, "address")
	}

	address, err := h.addressUC.GetAddress(c.Request().Context(), userID, addressID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAddressResponse(address))
}

// CreateAddress handles POST /addresses.
func (h *AddressHandler) CreateAddress(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	req, err := h.bind(c)
	if req == nil {
		return err
	}

	address, err := h.addressUC.CreateAddress(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toAddressResponse(address))
}

// UpdateAddress handles PUT /addresses/:id.
func (h *AddressHandler) UpdateAddress(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	addressID, ok := pathUUID(c, "id")
	if !ok {
		return response.InvalidID(c, "address")
	}

	req, err := h.bind(c)
	if req == nil {
		return err
	}

	address, err := h.addressUC.UpdateAddress(c.Request().Context(), userID, addressID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAddressResponse(address))
}

// DeleteAddress handles DELETE /addresses/:id.
func (h *AddressHandler) DeleteAddress(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	addressID, ok := pathUUID(c, "id")
	if !ok {
		return response.InvalidID(c, "address")
	}

	if err := h.addressUC.DeleteAddress(c.Request().Context(), userID, addressID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Address deleted")
}

// SetDefaultAddress handles PATCH /addresses/:id/default.
func (h *AddressHandler) SetDefaultAddress(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	addressID, ok := pathUUID(c, "id")
	if !ok {
		return response.InvalidID(c, "address")
	}

	address, err := h.addressUC.SetDefaultAddress(c.Request().Context(), userID, addressID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAddressResponse(address))
}
