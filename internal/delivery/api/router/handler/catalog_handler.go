package handler

import (
	"net/http"

	"storefront/config"
	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Config    *config.Config
}

// CatalogHandler serves the menu and its admin maintenance.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	store     *config.StoreConfig
}

// NewCatalogHandler is the constructor for CatalogHandler.
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		store:     params.Config.Store,
	}
}

// ProductRequest is the body of admin product writes.
type ProductRequest struct {
	Name    string          `json:"name" validate:"required,max=200"`
	Price   decimal.Decimal `json:"price" validate:"gt=0"`
	Stock   int             `json:"stock" validate:"gte=0"`
	Image   string          `json:"image" validate:"omitempty,url"`
	Type    string          `json:"type" validate:"max=50"`
	Cuisine string          `json:"cuisine" validate:"max=50"`
	Meat    string          `json:"meat" validate:"max=50"`
}

func (r *ProductRequest) toInput() *usecase.ProductInput {
	return &usecase.ProductInput{
		Name:    r.Name,
		Price:   r.Price,
		Stock:   r.Stock,
		Image:   r.Image,
		Type:    r.Type,
		Cuisine: r.Cuisine,
		Meat:    r.Meat,
	}
}

// ListProducts handles GET /products.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	filter := entity.ProductFilter{
		Type:    c.QueryParam("type"),
		Cuisine: c.QueryParam("cuisine"),
		Meat:    c.QueryParam("meat"),
		Search:  c.QueryParam("q"),
	}

	page, err := h.catalogUC.ListProducts(c.Request().Context(), filter, pageFromQuery(c, h.store))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paginated(c, toProductResponses(page.Items), page.PageInfo)
}

// GetProduct handles GET /products/:id.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	productID, ok := pathUUID(c, "id")
	if !ok {
		return response.InvalidID(c, "product")
	}

	product, err := h.catalogUC.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product))
}

// CreateProduct handles POST /admin/products.
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.catalogUC.CreateProduct(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toProductResponse(product))
}

// UpdateProduct handles PUT /admin/products/:id.
func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	productID, ok := pathUUID(c, "id")
	if !ok {
		return response.InvalidID(c, "product")
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.catalogUC.UpdateProduct(c.Request().Context(), productID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product))
}

// DeleteProduct handles DELETE /admin/products/:id.
func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	productID, ok := pathUUID(c, "id")
	if !ok {
		return response.InvalidID(c, "product")
	}

	if err := h.catalogUC.DeleteProduct(c.Request().Context(), productID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Product deleted")
}
