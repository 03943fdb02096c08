package handler

import (
	"strconv"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const moneyPlaces = 2

// UserResponse is the public view of an account.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Phone:     user.Phone,
		Role:      user.Role.String(),
		CreatedAt: user.CreatedAt,
	}
}

// ProductResponse is a catalog entry.
type ProductResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Price     string    `json:"price"`
	Stock     int       `json:"stock"`
	Image     string    `json:"image,omitempty"`
	Type      string    `json:"type,omitempty"`
	Cuisine   string    `json:"cuisine,omitempty"`
	Meat      string    `json:"meat,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toProductResponse(product *entity.Product) *ProductResponse {
	if product == nil {
		return nil
	}

	return &ProductResponse{
		ID:        product.ID,
		Name:      product.Name,
		Price:     product.Price.StringFixed(moneyPlaces),
		Stock:     product.Stock,
		Image:     product.Image,
		Type:      product.Type,
		Cuisine:   product.Cuisine,
		Meat:      product.Meat,
		CreatedAt: product.CreatedAt,
		UpdatedAt: product.UpdatedAt,
	}
}

func toProductResponses(products []*entity.Product) []*ProductResponse {
	out := make([]*ProductResponse, 0, len(products))
	for _, product := range products {
		out = append(out, toProductResponse(product))
	}

	return out
}

// CartItemResponse is a cart line priced at the current catalog price.
type CartItemResponse struct {
	ProductID uuid.UUID        `json:"productId"`
	Quantity  int              `json:"quantity"`
	Product   *ProductResponse `json:"product"`
	Subtotal  string           `json:"subtotal"`
	AddedAt   time.Time        `json:"addedAt"`
}

// CartResponse is the caller's cart with its running total.
type CartResponse struct {
	Items     []*CartItemResponse `json:"items"`
	Total     string              `json:"total"`
	ItemCount int                 `json:"itemCount"`
}

func toCartItemResponses(items []entity.CartItem) []*CartItemResponse {
	out := make([]*CartItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, &CartItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Product:   toProductResponse(item.Product),
			Subtotal:  item.Subtotal().StringFixed(moneyPlaces),
			AddedAt:   item.AddedAt,
		})
	}

	return out
}

func toCartResponse(cart *entity.Cart) *CartResponse {
	return &CartResponse{
		Items:     toCartItemResponses(cart.Items),
		Total:     cart.Total().StringFixed(moneyPlaces),
		ItemCount: cart.ItemCount(),
	}
}

// AddressResponse is a delivery address.
type AddressResponse struct {
	ID           uuid.UUID `json:"id"`
	Label        string    `json:"label,omitempty"`
	AddressLine1 string    `json:"addressLine1"`
	AddressLine2 string    `json:"addressLine2,omitempty"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	Country      string    `json:"country"`
	Pincode      string    `json:"pincode"`
	Phone        string    `json:"phone,omitempty"`
	Latitude     *float64  `json:"latitude,omitempty"`
	Longitude    *float64  `json:"longitude,omitempty"`
	IsDefault    bool      `json:"isDefault"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toAddressResponse(address *entity.Address) *AddressResponse {
	if address == nil {
		return nil
	}

	return &AddressResponse{
		ID:           address.ID,
		Label:        address.Label,
		AddressLine1: address.AddressLine1,
		AddressLine2: address.AddressLine2,
		City:         address.City,
		State:        address.State,
		Country:      address.Country,
		Pincode:      address.Pincode,
		Phone:        address.Phone,
		Latitude:     address.Latitude,
		Longitude:    address.Longitude,
		IsDefault:    address.IsDefault,
		CreatedAt:    address.CreatedAt,
	}
}

// OrderItemResponse is a frozen order line.
type OrderItemResponse struct {
	ProductID    uuid.UUID `json:"productId"`
	ProductName  string    `json:"productName"`
	Quantity     int       `json:"quantity"`
	PriceAtOrder string    `json:"priceAtOrder"`
	Subtotal     string    `json:"subtotal"`
}

// OrderResponse is an order as shown to its owner and to admins.
type OrderResponse struct {
	ID                uuid.UUID            `json:"id"`
	UniqueCode        string               `json:"uniqueCode"`
	UserID            uuid.UUID            `json:"userId"`
	AddressID         uuid.UUID            `json:"addressId"`
	Address           *AddressResponse     `json:"address,omitempty"`
	Items             []*OrderItemResponse `json:"items"`
	TotalAmount       string               `json:"totalAmount"`
	PaymentMethod     string               `json:"paymentMethod"`
	Status            string               `json:"status"`
	PaymentScreenshot string               `json:"paymentScreenshot,omitempty"`
	CreatedAt         time.Time            `json:"createdAt"`
	UpdatedAt         time.Time            `json:"updatedAt"`
}

func toOrderResponse(order *entity.Order) *OrderResponse {
	items := make([]*OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, &OrderItemResponse{
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			Quantity:     item.Quantity,
			PriceAtOrder: item.PriceAtOrder.StringFixed(moneyPlaces),
			Subtotal:     item.Subtotal().StringFixed(moneyPlaces),
		})
	}

	return &OrderResponse{
		ID:                order.ID,
		UniqueCode:        order.UniqueCode,
		UserID:            order.UserID,
		AddressID:         order.AddressID,
		Address:           toAddressResponse(order.Address),
		Items:             items,
		TotalAmount:       order.TotalAmount.StringFixed(moneyPlaces),
		PaymentMethod:     order.PaymentMethod.String(),
		Status:            order.Status.String(),
		PaymentScreenshot: order.PaymentScreenshot,
		CreatedAt:         order.CreatedAt,
		UpdatedAt:         order.UpdatedAt,
	}
}

func toOrderResponses(orders []*entity.Order) []*OrderResponse {
	out := make([]*OrderResponse, 0, len(orders))
	for _, order := range orders {
		out = append(out, toOrderResponse(order))
	}

	return out
}

// PaymentDetailResponse is the UPI account customers pay into.
type PaymentDetailResponse struct {
	ID                uuid.UUID `json:"id"`
	AccountHolderName string    `json:"accountHolderName"`
	UPIID             string    `json:"upiId"`
	Phone             string    `json:"phone"`
	QRCodeImage       string    `json:"qrCodeImage"`
	IsActive          bool      `json:"isActive"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func toPaymentDetailResponse(detail *entity.PaymentDetail) *PaymentDetailResponse {
	return &PaymentDetailResponse{
		ID:                detail.ID,
		AccountHolderName: detail.AccountHolderName,
		UPIID:             detail.UPIID,
		Phone:             detail.Phone,
		QRCodeImage:       detail.QRCodeImage,
		IsActive:          detail.IsActive,
		UpdatedAt:         detail.UpdatedAt,
	}
}

// FavoriteResponse is a marked product.
type FavoriteResponse struct {
	ProductID uuid.UUID        `json:"productId"`
	Product   *ProductResponse `json:"product,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
}

func toFavoriteResponses(favorites []*entity.Favorite) []*FavoriteResponse {
	out := make([]*FavoriteResponse, 0, len(favorites))
	for _, favorite := range favorites {
		out = append(out, &FavoriteResponse{
			ProductID: favorite.ProductID,
			Product:   toProductResponse(favorite.Product),
			CreatedAt: favorite.CreatedAt,
		})
	}

	return out
}

// DashboardResponse summarises the store for admins.
type DashboardResponse struct {
	TotalUsers       int64              `json:"totalUsers"`
	TotalProducts    int64              `json:"totalProducts"`
	TotalOrders      int64              `json:"totalOrders"`
	Revenue          string             `json:"revenue"`
	OrdersByStatus   map[string]int64   `json:"ordersByStatus"`
	LowStockProducts []*ProductResponse `json:"lowStockProducts"`
}

func toDashboardResponse(stats *entity.DashboardStats) *DashboardResponse {
	byStatus := make(map[string]int64, len(stats.OrdersByStatus))
	for status, count := range stats.OrdersByStatus {
		byStatus[status.String()] = count
	}

	return &DashboardResponse{
		TotalUsers:       stats.TotalUsers,
		TotalProducts:    stats.TotalProducts,
		TotalOrders:      stats.TotalOrders,
		Revenue:          stats.Revenue.StringFixed(moneyPlaces),
		OrdersByStatus:   byStatus,
		LowStockProducts: toProductResponses(stats.LowStockProducts),
	}
}

// ReviewResponse is a customer testimonial.
type ReviewResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Name      string    `json:"name"`
	Comment   string    `json:"comment"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toReviewResponse(review *entity.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:        review.ID,
		UserID:    review.UserID,
		Name:      review.Name,
		Comment:   review.Comment,
		Rating:    review.Rating,
		CreatedAt: review.CreatedAt,
		UpdatedAt: review.UpdatedAt,
	}
}

func toReviewResponses(reviews []*entity.Review) []*ReviewResponse {
	out := make([]*ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		out = append(out, toReviewResponse(review))
	}

	return out
}

// HeroBannerResponse is a home page banner.
type HeroBannerResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	ImageURL  string    `json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

func toHeroBannerResponse(banner *entity.HeroBanner) *HeroBannerResponse {
	return &HeroBannerResponse{
		ID:        banner.ID,
		Title:     banner.Title,
		ImageURL:  banner.ImageURL,
		CreatedAt: banner.CreatedAt,
	}
}

// pageFromQuery reads ?page and ?limit, falling back to the store defaults.
func pageFromQuery(c echo.Context, store *config.StoreConfig) entity.Page {
	number, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("limit"))

	return entity.NewPage(number, size, store.DefaultPageSize, store.MaxPageSize)
}

// pathUUID parses a UUID path parameter.
func pathUUID(c echo.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))

	return id, err == nil
}
