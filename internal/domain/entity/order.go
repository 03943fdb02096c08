package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the closed set of states an order moves through.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusPaid       OrderStatus = "Paid"
	OrderStatusVerified   OrderStatus = "Verified"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// orderTransitions lists the statuses reachable from each status.
// Admins may move an order backwards while it is still open; terminal states have no exits.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusPaid, OrderStatusVerified, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusPaid:       {OrderStatusPending, OrderStatusVerified, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusVerified:   {OrderStatusPending, OrderStatusPaid, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusPending, OrderStatusPaid, OrderStatusVerified, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusPending, OrderStatusPaid, OrderStatusVerified, OrderStatusProcessing, OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusDelivered:  {},
	OrderStatusCancelled:  {},
}

// OrderStatuses returns every valid status in lifecycle order.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusPending,
		OrderStatusPaid,
		OrderStatusVerified,
		OrderStatusProcessing,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
	}
}

// ParseOrderStatus accepts s only when it is exactly one of the valid statuses.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	status := OrderStatus(s)
	if !status.IsValid() {
		return "", false
	}

	return status, true
}

// String returns the string representation of the status.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid reports whether s belongs to the closed set.
func (s OrderStatus) IsValid() bool {
	_, ok := orderTransitions[s]

	return ok
}

// IsTerminal reports whether no further transitions are allowed.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransitionTo reports whether an order in s may be moved to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, candidate := range orderTransitions[s] {
		if candidate == next {
			return true
		}
	}

	return false
}

// CountsAsRevenue reports whether orders in s are included in revenue figures.
func (s OrderStatus) CountsAsRevenue() bool {
	return s == OrderStatusPaid || s == OrderStatusVerified || s == OrderStatusDelivered
}

// PaymentMethod is how the customer settles an order.
type PaymentMethod string

const (
	PaymentMethodCOD PaymentMethod = "COD"
	PaymentMethodUPI PaymentMethod = "UPI"
)

// ParsePaymentMethod parses s, defaulting to cash on delivery when empty.
func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", string(PaymentMethodCOD):
		return PaymentMethodCOD, true
	case string(PaymentMethodUPI):
		return PaymentMethodUPI, true
	default:
		return "", false
	}
}

// String returns the string representation of the payment method.
func (m PaymentMethod) String() string {
	return string(m)
}

// OrderItem is a frozen copy of a cart line taken at checkout.
type OrderItem struct {
	ProductID    uuid.UUID       // The product that was ordered.
	ProductName  string          // Product name at order time.
	Quantity     int             // Units ordered.
	PriceAtOrder decimal.Decimal // Unit price captured at checkout, never recomputed.
}

// Subtotal is the line value at the captured price.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.PriceAtOrder.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order is the immutable record of a checkout. Only Status and the payment proof change after creation.
type Order struct {
	ID                    uuid.UUID       // The Global Unique Identifier (GUID) for the order.
	UserID                uuid.UUID       // The customer who placed the order.
	AddressID             uuid.UUID       // Delivery address, owned by UserID.
	Address               *Address        // Resolved address, when loaded.
	Items                 []OrderItem     // Snapshotted cart lines.
	TotalAmount           decimal.Decimal // Sum of PriceAtOrder × Quantity at checkout.
	PaymentMethod         PaymentMethod   // COD or UPI.
	Status                OrderStatus     // Current lifecycle state.
	PaymentScreenshot     string          // Public URL of the payment proof.
	PaymentScreenshotPath string          // Storage key of the payment proof.
	UniqueCode            string          // Human-readable identifier shown to customers.
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// HasPaymentProof reports whether a screenshot was already attached.
func (o *Order) HasPaymentProof() bool {
	return o.PaymentScreenshot != "" || o.PaymentScreenshotPath != ""
}

// IsOwnedBy reports whether userID placed the order.
func (o *Order) IsOwnedBy(userID uuid.UUID) bool {
	return o.UserID == userID
}

// SnapshotCart freezes the cart lines at current prices and returns them with their total.
// Lines whose product no longer exists are skipped.
func SnapshotCart(cart *Cart) ([]OrderItem, decimal.Decimal) {
	items := make([]OrderItem, 0, len(cart.Items))
	total := decimal.Zero

	for _, line := range cart.Items {
		if line.Product == nil {
			continue
		}

		item := OrderItem{
			ProductID:    line.ProductID,
			ProductName:  line.Product.Name,
			Quantity:     line.Quantity,
			PriceAtOrder: line.Product.Price,
		}
		items = append(items, item)
		total = total.Add(item.Subtotal())
	}

	return items, total
}

// OrderFilter narrows admin order listings.
type OrderFilter struct {
	Status *OrderStatus
}
