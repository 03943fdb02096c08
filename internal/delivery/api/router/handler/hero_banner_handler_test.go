package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newHeroBannerHandler(t *testing.T) (*HeroBannerHandler, *mockUC.MockHeroBannerUsecase) {
	bannerUC := mockUC.NewMockHeroBannerUsecase(t)

	return NewHeroBannerHandler(HeroBannerHandlerParams{HeroBannerUC: bannerUC}), bannerUC
}

func newBannerForm(t *testing.T, method, target, title string, withFile bool) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if title != "" {
		require.NoError(t, writer.WriteField("title", title))
	}
	if withFile {
		part, err := writer.CreateFormFile(bannerImageField, "banner.png")
		require.NoError(t, err)
		_, err = part.Write([]byte("\x89PNG\r\n\x1a\n"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(method, target, &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()

	return newEcho().NewContext(req, rec), rec
}

func TestHeroBannerHandler_CreateBanner(t *testing.T) {
	t.Run("forwards title and image", func(t *testing.T) {
		handler, bannerUC := newHeroBannerHandler(t)
		bannerUC.EXPECT().
			CreateBanner(mock.Anything, mock.MatchedBy(func(input *usecase.HeroBannerInput) bool {
				return input.Title == "Diwali specials" && input.Image != nil && input.Image.Filename == "banner.png"
			})).
			Return(&entity.HeroBanner{ID: uuid.New(), Title: "Diwali specials", ImageURL: "/uploads/hero-banners/x.png"}, nil)

		c, rec := newBannerForm(t, http.MethodPost, "/admin/hero-banners", "Diwali specials", true)

		require.NoError(t, handler.CreateBanner(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var banner HeroBannerResponse
		decodeData(t, rec, &banner)
		assert.Equal(t, "/uploads/hero-banners/x.png", banner.ImageURL)
	})

	t.Run("missing image", func(t *testing.T) {
		handler, bannerUC := newHeroBannerHandler(t)
		bannerUC.EXPECT().
			CreateBanner(mock.Anything, mock.MatchedBy(func(input *usecase.HeroBannerInput) bool { return input.Image == nil })).
			Return(nil, domainerrors.ErrHeroBannerIncomplete)

		c, rec := newBannerForm(t, http.MethodPost, "/admin/hero-banners", "Diwali specials", false)

		require.NoError(t, handler.CreateBanner(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHeroBannerHandler_UpdateBanner_TitleOnly(t *testing.T) {
	handler, bannerUC := newHeroBannerHandler(t)
	bannerID := uuid.New()

	bannerUC.EXPECT().
		UpdateBanner(mock.Anything, bannerID, &usecase.HeroBannerInput{Title: "Monsoon menu"}).
		Return(&entity.HeroBanner{ID: bannerID, Title: "Monsoon menu"}, nil)

	c, rec := newBannerForm(t, http.MethodPut, "/admin/hero-banners/"+bannerID.String(), "Monsoon menu", false)
	c.SetParamNames("id")
	c.SetParamValues(bannerID.String())

	require.NoError(t, handler.UpdateBanner(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHeroBannerHandler_GetAndDelete(t *testing.T) {
	bannerID := uuid.New()

	t.Run("unknown banner", func(t *testing.T) {
		handler, bannerUC := newHeroBannerHandler(t)
		bannerUC.EXPECT().GetBanner(mock.Anything, bannerID).Return(nil, domainerrors.ErrHeroBannerNotFound)

		c, rec := newJSONContext(http.MethodGet, "/hero-banners/"+bannerID.String(), "")
		c.SetParamNames("id")
		c.SetParamValues(bannerID.String())

		require.NoError(t, handler.GetBanner(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("delete", func(t *testing.T) {
		handler, bannerUC := newHeroBannerHandler(t)
		bannerUC.EXPECT().DeleteBanner(mock.Anything, bannerID).Return(nil)

		c, rec := newJSONContext(http.MethodDelete, "/hero-banners/"+bannerID.String(), "")
		c.SetParamNames("id")
		c.SetParamValues(bannerID.String())

		require.NoError(t, handler.DeleteBanner(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
