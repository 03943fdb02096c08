package handler

import (
	"net/http"

	"storefront/config"
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Config   *config.Config
}

// ReviewHandler serves customer testimonials.
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
	store    *config.StoreConfig
}

// NewReviewHandler is the constructor for ReviewHandler.
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: params.ReviewUC,
		store:    params.Config.Store,
	}
}

// ReviewRequest is the body of review writes. Missing fields are reported together by the usecase.
type ReviewRequest struct {
	Name    string `json:"name" validate:"max=100"`
	Comment string `json:"comment" validate:"max=1000"`
	Rating  int    `json:"rating"`
}

func (r *ReviewRequest) toInput() *usecase.ReviewInput {
	return &usecase.ReviewInput{Name: r.Name, Comment: r.Comment, Rating: r.Rating}
}

func (h *ReviewHandler) bind(c echo.Context) (*ReviewRequest, error) {
	var req ReviewRequest
	if err := c.Bind(&req); err != nil {
		return nil, response.BindingError(c, "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return nil, response.HandleAppError(c, err)
	}

	return &req, nil
}

// ListReviews handles GET /reviews.
func (h *ReviewHandler) ListReviews(c echo.Context) error {
	page, err := h.reviewUC.ListReviews(c.Request().Context(), pageFromQuery(c, h.store))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paginated(c, toReviewResponses(page.Items), page.PageInfo)
}

// CreateReview handles POST /reviews.
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	req, err := h.bind(c)
	if req == nil {
		return err
	}

	review, err := h.reviewUC.CreateReview(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toReviewResponse(review))
}

// UpdateReview handles PUT /reviews/:id.
func (h *ReviewHandler) UpdateReview(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	reviewID, ok := pathUUID(c, "id")
	if !ok {
		return response.InvalidID(c, "review")
	}

	req, err := h.bind(c)
	if req == nil {
		return err
	}

	review, err := h.reviewUC.UpdateReview(c.Request().Context(), userID, reviewID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toReviewResponse(review))
}

// DeleteReview handles DELETE /reviews/:id.
func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	reviewID, ok := pathUUID(c, "id")
	if !ok {
		return response.InvalidID(c, "review")
	}

	requester := usecase.Requester{UserID: userID, IsAdmin: middleware.IsAdmin(c)}
	if err := h.reviewUC.DeleteReview(c.Request().Context(), requester, reviewID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Review deleted")
}
