package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// PlaceOrderInput defines the data required to check out the caller's cart.
type PlaceOrderInput struct {
	UserID         uuid.UUID
	AddressID      uuid.UUID
	PaymentMethod  string
	IdempotencyKey string // Optional; repeated keys return the first order.
}

// Requester identifies who is reading an order.
type Requester struct {
	UserID  uuid.UUID
	IsAdmin bool
}

// OrderPage is one page of orders.
type OrderPage struct {
	Items    []*entity.Order
	PageInfo entity.PageInfo
}

// OrderExport is a rendered order report.
type OrderExport struct {
	Filename    string
	ContentType string
	Data        []byte
}

// OrderUsecase turns carts into orders and drives them through their lifecycle.
type OrderUsecase interface {
	// PlaceOrder snapshots the cart into a Pending order, reserves stock and deletes the cart
	// in one transaction.
	PlaceOrder(ctx context.Context, input *PlaceOrderInput) (*entity.Order, error)

	// UploadPaymentProof attaches a screenshot to the caller's UPI order and marks it Paid.
	UploadPaymentProof(ctx context.Context, userID, orderID uuid.UUID, file *FileUpload) (*entity.Order, error)

	// UpdateStatus moves an order to status. Cancelling returns the stock.
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status string) (*entity.Order, error)

	ListMyOrders(ctx context.Context, userID uuid.UUID, page entity.Page) (*OrderPage, error)
	ListOrders(ctx context.Context, filter entity.OrderFilter, page entity.Page) (*OrderPage, error)

	// GetOrderByCode returns the order for its owner or an admin.
	GetOrderByCode(ctx context.Context, requester Requester, code string) (*entity.Order, error)

	// LatestOrder returns the caller's most recent order.
	LatestOrder(ctx context.Context, userID uuid.UUID) (*entity.Order, error)

	// PaymentQR renders a UPI QR for the order amount payable to the active payment details.
	PaymentQR(ctx context.Context, userID, orderID uuid.UUID) ([]byte, error)

	ExportOrders(ctx context.Context, filter entity.OrderFilter) (*OrderExport, error)
}
