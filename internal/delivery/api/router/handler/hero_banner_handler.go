package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bannerImageField = "bannerImage"

// HeroBannerHandlerParams holds dependencies for HeroBannerHandler, injected by Fx.
type HeroBannerHandlerParams struct {
	fx.In

	HeroBannerUC usecase.HeroBannerUsecase
}

// HeroBannerHandler serves the home page banners.
type HeroBannerHandler struct {
	heroBannerUC usecase.HeroBannerUsecase
}

// NewHeroBannerHandler is the constructor for HeroBannerHandler.
func NewHeroBannerHandler(params HeroBannerHandlerParams) *HeroBannerHandler {
	return &HeroBannerHandler{heroBannerUC: params.HeroBannerUC}
}

// HeroBannerForm is the multipart body of banner writes.
type HeroBannerForm struct {
	Title string `form:"title"`
}

// ListBanners handles GET /hero-banners.
func (h *HeroBannerHandler) ListBanners(c echo.Context) error {
	banners, err := h.heroBannerUC.ListBanners(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]*HeroBannerResponse, 0, len(banners))
	for _, banner := range banners {
		out = append(out, toHeroBannerResponse(banner))
	}

	return response.Success(c, http.StatusOK, out)
}

// GetBanner handles GET /hero-banners/:id.
func (h *HeroBannerHandler) GetBanner(c echo.Context) error {
	bannerID, ok := pathUUID(c, "id")
	if !ok {
		return response.InvalidID(c, "banner")
	}

	banner, err := h.heroBannerUC.GetBanner(c.Request().Context(), bannerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toHeroBannerResponse(banner))
}

// CreateBanner handles POST /admin/hero-banners.
func (h *HeroBannerHandler) CreateBanner(c echo.Context) error {
	input, closeFile, err := h.bindForm(c)
	defer closeFile()
	if input == nil {
		return err
	}

	banner, err := h.heroBannerUC.CreateBanner(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toHeroBannerResponse(banner))
}

// UpdateBanner handles PUT /admin/hero-banners/:id.
func (h *HeroBannerHandler) UpdateBanner(c echo.Context) error {
	bannerID, ok := pathUUID(c, "id")
	if !ok {
		return response.InvalidID(c, "banner")
	}

	input, closeFile, err := h.bindForm(c)
	defer closeFile()
	if input == nil {
		return err
	}

	banner, err := h.heroBannerUC.UpdateBanner(c.Request().Context(), bannerID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toHeroBannerResponse(banner))
}

// DeleteBanner handles DELETE /admin/hero-banners/:id.
func (h *HeroBannerHandler) DeleteBanner(c echo.Context) error {
	bannerID, ok := pathUUID(c, "id")
	if !ok {
		return response.InvalidID(c, "banner")
	}

	if err := h.heroBannerUC.DeleteBanner(c.Request().Context(), bannerID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Hero banner deleted")
}

// bindForm reads the title and optional image. A nil input means the response was already written.
func (h *HeroBannerHandler) bindForm(c echo.Context) (*usecase.HeroBannerInput, func(), error) {
	var form HeroBannerForm
	if err := c.Bind(&form); err != nil {
		return nil, func() {}, response.BindingError(c, "Invalid hero banner input")
	}

	upload, closeFile, err := formFile(c, bannerImageField)
	if err != nil {
		return nil, closeFile, response.BindingError(c, "Invalid multipart upload")
	}

	return &usecase.HeroBannerInput{Title: form.Title, Image: upload}, closeFile, nil
}
