package router

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/delivery/api/validator"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	mockService "storefront/internal/mocks/service"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type routerFixture struct {
	echo      *echo.Echo
	tokenSvc  *mockService.MockTokenService
	dashboard *mockUC.MockDashboardUsecase
	reviews   *mockUC.MockReviewUsecase
	banners   *mockUC.MockHeroBannerUsecase
}

func newRouterFixture(t *testing.T) *routerFixture {
	cfg := &config.Config{
		Store:     &config.StoreConfig{DefaultPageSize: 10, MaxPageSize: 100},
		RateLimit: &config.RateLimitConfig{Rate: 1, Burst: 2, ExpiresIn: time.Minute},
	}
	logger := slog.New(slog.DiscardHandler)

	f := &routerFixture{
		tokenSvc:  mockService.NewMockTokenService(t),
		dashboard: mockUC.NewMockDashboardUsecase(t),
		reviews:   mockUC.NewMockReviewUsecase(t),
		banners:   mockUC.NewMockHeroBannerUsecase(t),
	}

	f.echo = echo.New()
	f.echo.Validator = validator.New()
	f.echo.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	NewRouter(RouterParams{
		UserHandler:          handler.NewUserHandler(handler.UserHandlerParams{UserUC: mockUC.NewMockUserUsecase(t), Logger: logger}),
		CatalogHandler:       handler.NewCatalogHandler(handler.CatalogHandlerParams{CatalogUC: mockUC.NewMockCatalogUsecase(t), Config: cfg}),
		CartHandler:          handler.NewCartHandler(handler.CartHandlerParams{CartUC: mockUC.NewMockCartUsecase(t), Config: cfg}),
		AddressHandler:       handler.NewAddressHandler(handler.AddressHandlerParams{AddressUC: mockUC.NewMockAddressUsecase(t)}),
		OrderHandler:         handler.NewOrderHandler(handler.OrderHandlerParams{OrderUC: mockUC.NewMockOrderUsecase(t), Config: cfg}),
		PaymentDetailHandler: handler.NewPaymentDetailHandler(handler.PaymentDetailHandlerParams{PaymentDetailUC: mockUC.NewMockPaymentDetailUsecase(t)}),
		FavoriteHandler:      handler.NewFavoriteHandler(handler.FavoriteHandlerParams{FavoriteUC: mockUC.NewMockFavoriteUsecase(t)}),
		DashboardHandler:     handler.NewDashboardHandler(handler.DashboardHandlerParams{DashboardUC: f.dashboard}),
		FileHandler:          handler.NewFileHandler(handler.FileHandlerParams{Storage: mockService.NewMockFileStorage(t)}),
		ReviewHandler:        handler.NewReviewHandler(handler.ReviewHandlerParams{ReviewUC: f.reviews, Config: cfg}),
		HeroBannerHandler:    handler.NewHeroBannerHandler(handler.HeroBannerHandlerParams{HeroBannerUC: f.banners}),
		AuthMiddleware:       middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{TokenService: f.tokenSvc}),
		Gatherer:             prometheus.NewRegistry(),
		Config:               cfg,
	}).RegisterRoutes(f.echo)

	return f
}

func (f *routerFixture) do(method, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func (f *routerFixture) withToken(token string, roles ...string) {
	f.tokenSvc.EXPECT().ValidateAccessToken(token).Return(&service.Claims{UserID: uuid.New(), Roles: roles}, nil)
}

func TestRouter_OpenRoutes(t *testing.T) {
	f := newRouterFixture(t)

	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/health", "").Code)

	metrics := f.do(http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, metrics.Code)
}

func TestRouter_StorefrontContentIsPublic(t *testing.T) {
	f := newRouterFixture(t)
	f.banners.EXPECT().ListBanners(mock.Anything).Return([]*entity.HeroBanner{}, nil)
	f.reviews.EXPECT().ListReviews(mock.Anything, entity.Page{Number: 1, Size: 10}).
		Return(&usecase.ReviewPage{PageInfo: entity.NewPageInfo(entity.Page{Number: 1, Size: 10}, 0)}, nil)

	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/hero-banners", "").Code)
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/reviews", "").Code)
	assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodPost, "/reviews", "").Code)
}

func TestRouter_CustomerRoutesRequireToken(t *testing.T) {
	f := newRouterFixture(t)

	for _, target := range []string{"/cart", "/addresses", "/orders/my", "/favorites", "/auth/me"} {
		rec := f.do(http.MethodGet, target, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, target)
		assert.True(t, strings.Contains(rec.Body.String(), "MISSING_TOKEN"), target)
	}
}

func TestRouter_AdminRoutes(t *testing.T) {
	t.Run("customers are forbidden", func(t *testing.T) {
		f := newRouterFixture(t)
		f.withToken("customer", entity.RoleUser.String())

		assert.Equal(t, http.StatusForbidden, f.do(http.MethodGet, "/admin/dashboard", "customer").Code)
	})

	t.Run("admins reach the dashboard", func(t *testing.T) {
		f := newRouterFixture(t)
		f.withToken("admin", entity.RoleUser.String(), entity.RoleAdmin.String())
		f.dashboard.EXPECT().GetStats(mock.Anything).Return(&entity.DashboardStats{OrdersByStatus: map[entity.OrderStatus]int64{}}, nil)

		assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/admin/dashboard", "admin").Code)
	})

	t.Run("order administration is admin only", func(t *testing.T) {
		f := newRouterFixture(t)
		f.withToken("customer", entity.RoleUser.String())

		assert.Equal(t, http.StatusForbidden, f.do(http.MethodGet, "/orders/admin/all", "customer").Code)
	})

	t.Run("banner writes are admin only", func(t *testing.T) {
		f := newRouterFixture(t)
		f.withToken("customer", entity.RoleUser.String())

		assert.Equal(t, http.StatusForbidden, f.do(http.MethodDelete, "/admin/hero-banners/"+uuid.NewString(), "customer").Code)
	})
}

func TestRouter_LoginIsRateLimited(t *testing.T) {
	f := newRouterFixture(t)

	codes := make([]int, 0, 3)
	for range 3 {
		codes = append(codes, f.do(http.MethodPost, "/auth/login", "").Code)
	}

	assert.Equal(t, http.StatusTooManyRequests, codes[2])
}
