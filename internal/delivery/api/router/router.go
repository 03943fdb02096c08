// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/config"
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler          *handler.UserHandler
	CatalogHandler       *handler.CatalogHandler
	CartHandler          *handler.CartHandler
	AddressHandler       *handler.AddressHandler
	OrderHandler         *handler.OrderHandler
	PaymentDetailHandler *handler.PaymentDetailHandler
	FavoriteHandler      *handler.FavoriteHandler
	DashboardHandler     *handler.DashboardHandler
	FileHandler          *handler.FileHandler
	ReviewHandler        *handler.ReviewHandler
	HeroBannerHandler    *handler.HeroBannerHandler
	AuthMiddleware       *middleware.AuthMiddleware
	Gatherer             prometheus.Gatherer
	Config               *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	users          *handler.UserHandler
	catalog        *handler.CatalogHandler
	cart           *handler.CartHandler
	addresses      *handler.AddressHandler
	orders         *handler.OrderHandler
	paymentDetails *handler.PaymentDetailHandler
	favorites      *handler.FavoriteHandler
	dashboard      *handler.DashboardHandler
	files          *handler.FileHandler
	reviews        *handler.ReviewHandler
	heroBanners    *handler.HeroBannerHandler
	auth           *middleware.AuthMiddleware
	gatherer       prometheus.Gatherer
	config         *config.Config
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		users:          params.UserHandler,
		catalog:        params.CatalogHandler,
		cart:           params.CartHandler,
		addresses:      params.AddressHandler,
		orders:         params.OrderHandler,
		paymentDetails: params.PaymentDetailHandler,
		favorites:      params.FavoriteHandler,
		dashboard:      params.DashboardHandler,
		files:          params.FileHandler,
		reviews:        params.ReviewHandler,
		heroBanners:    params.HeroBannerHandler,
		auth:           params.AuthMiddleware,
		gatherer:       params.Gatherer,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	limited := middleware.NewRateLimiter(r.config.RateLimit)
	authenticated := r.auth.Authenticate
	adminOnly := r.auth.RequireRole(entity.RoleAdmin)

	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})))
	e.GET("/uploads/*", r.files.Serve)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.users.Register, limited)
		authGroup.POST("/login", r.users.Login, limited)
		authGroup.POST("/refresh", r.users.Refresh, limited)
		authGroup.GET("/me", r.users.Me, authenticated)
	}

	e.GET("/products", r.catalog.ListProducts)
	e.GET("/products/:id", r.catalog.GetProduct)
	e.GET("/payment-details/active", r.paymentDetails.GetActive)
	e.GET("/hero-banners", r.heroBanners.ListBanners)
	e.GET("/hero-banners/:id", r.heroBanners.GetBanner)

	reviewGroup := e.Group("/reviews")
	{
		reviewGroup.GET("", r.reviews.ListReviews)
		reviewGroup.POST("", r.reviews.CreateReview, authenticated, limited)
		reviewGroup.PUT("/:id", r.reviews.UpdateReview, authenticated)
		reviewGroup.DELETE("/:id", r.reviews.DeleteReview, authenticated)
	}

	cartGroup := e.Group("/cart", authenticated)
	{
		cartGroup.GET("", r.cart.GetCart)
		cartGroup.POST("", r.cart.AddItem)
		cartGroup.DELETE("", r.cart.ClearCart)
		cartGroup.GET("/items", r.cart.ListItems)
		cartGroup.PATCH("/items/:productId", r.cart.UpdateItem)
		cartGroup.DELETE("/items/:productId", r.cart.RemoveItem)
	}

	addressGroup := e.Group("/addresses", authenticated)
	{
		addressGroup.GET("", r.addresses.ListAddresses)
		addressGroup.POST("", r.addresses.CreateAddress)
		addressGroup.GET("/:id", r.addresses.GetAddress)
		addressGroup.PUT("/:id", r.addresses.UpdateAddress)
		addressGroup.DELETE("/:id", r.addresses.DeleteAddress)
		addressGroup.PATCH("/:id/default", r.addresses.SetDefaultAddress)
	}

	orderGroup := e.Group("/orders", authenticated)
	{
		orderGroup.POST("/place", r.orders.PlaceOrder)
		orderGroup.GET("/my", r.orders.ListMyOrders)
		orderGroup.GET("/latest-code", r.orders.LatestCode)
		orderGroup.GET("/code/:code", r.orders.GetByCode)
		orderGroup.POST("/:orderId/screenshot", r.orders.UploadScreenshot, limited)
		orderGroup.GET("/:orderId/payment-qr", r.orders.PaymentQR)

		adminOrders := orderGroup.Group("/admin", adminOnly)
		adminOrders.GET("/all", r.orders.ListAll)
		adminOrders.GET("/export", r.orders.Export)
		adminOrders.PUT("/:orderId/status", r.orders.UpdateStatus)
	}

	favoriteGroup := e.Group("/favorites", authenticated)
	{
		favoriteGroup.GET("", r.favorites.List)
		favoriteGroup.POST("/:productId/toggle", r.favorites.Toggle)
		favoriteGroup.DELETE("/:productId", r.favorites.Remove)
	}

	adminGroup := e.Group("/admin", authenticated, adminOnly)
	{
		adminGroup.GET("/dashboard", r.dashboard.GetStats)

		adminGroup.POST("/products", r.catalog.CreateProduct)
		adminGroup.PUT("/products/:id", r.catalog.UpdateProduct)
		adminGroup.DELETE("/products/:id", r.catalog.DeleteProduct)

		adminGroup.GET("/payment-details/me", r.paymentDetails.GetMine)
		adminGroup.PUT("/payment-details", r.paymentDetails.Save, limited)
		adminGroup.PATCH("/payment-details/deactivate", r.paymentDetails.Deactivate)
		adminGroup.DELETE("/payment-details", r.paymentDetails.Delete)

		adminGroup.GET("/favorites/users/:userId", r.favorites.ListForUser)

		adminGroup.POST("/hero-banners", r.heroBanners.CreateBanner, limited)
		adminGroup.PUT("/hero-banners/:id", r.heroBanners.UpdateBanner, limited)
		adminGroup.DELETE("/hero-banners/:id", r.heroBanners.DeleteBanner)
	}
}
