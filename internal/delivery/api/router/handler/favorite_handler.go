package handler

import (
	"net/http"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FavoriteHandlerParams holds dependencies for FavoriteHandler, injected by Fx.
type FavoriteHandlerParams struct {
	fx.In

	FavoriteUC usecase.FavoriteUsecase
}

// FavoriteHandler serves the products a user marked.
type FavoriteHandler struct {
	favoriteUC usecase.FavoriteUsecase
}

// NewFavoriteHandler is the constructor for FavoriteHandler.
func NewFavoriteHandler(params FavoriteHandlerParams) *FavoriteHandler {
	return &FavoriteHandler{favoriteUC: params.FavoriteUC}
}

// ToggleResponse reports the favorite state after a toggle.
type ToggleResponse struct {
	ProductID  uuid.UUID `json:"productId"`
	IsFavorite bool      `json:"isFavorite"`
}

// Toggle handles POST /favorites/:productId/toggle.
func (h *FavoriteHandler) Toggle(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	productID, ok := pathUUID(c, "productId")
	if !ok {
		return response.InvalidID(c, "product")
	}

	isFavorite, err := h.favoriteUC.ToggleFavorite(c.Request().Context(), userID, productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &ToggleResponse{ProductID: productID, IsFavorite: isFavorite})
}

// List handles GET /favorites.
func (h *FavoriteHandler) List(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return h.list(c, userID)
}

// ListForUser handles GET /admin/favorites/users/:userId.
func (h *FavoriteHandler) ListForUser(c echo.Context) error {
	userID, ok := pathUUID(c, "userId")
	if !ok {
		return response.InvalidID(c, "user")
	}

	return h.list(c, userID)
}

func (h *FavoriteHandler) list(c echo.Context, userID uuid.UUID) error {
	favorites, err := h.favoriteUC.ListFavorites(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toFavoriteResponses(favorites))
}

// Remove handles DELETE /favorites/:productId.
func (h *FavoriteHandler) Remove(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	productID, ok := pathUUID(c, "productId")
	if !ok {
		return response.InvalidID(c, "product")
	}

	if err := h.favoriteUC.RemoveFavorite(c.Request().Context(), userID, productID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Removed from favorites")
}
