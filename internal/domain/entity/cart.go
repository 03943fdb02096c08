package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cart is the mutable basket of a single user. It is created lazily on the first add.
type Cart struct {
	ID        uuid.UUID  // The Global Unique Identifier (GUID) for the cart.
	UserID    uuid.UUID  // Owner; a user has at most one cart.
	Items     []CartItem // One line per product.
	CreatedAt time.Time  // Timestamp of when this cart was created.
	UpdatedAt time.Time  // Timestamp of the last modification.
}

// CartItem is a cart line keyed by product.
type CartItem struct {
	ProductID uuid.UUID // The product this line refers to.
	Quantity  int       // Always at least 1.
	Product   *Product  // Current product state, nil when the product was removed from the catalog.
	AddedAt   time.Time // When the line was first created.
}

// Subtotal is the line value at the current catalog price.
func (i CartItem) Subtotal() decimal.Decimal {
	if i.Product == nil {
		return decimal.Zero
	}

	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return c == nil || len(c.Items) == 0
}

// Item returns the line for productID, if present.
func (c *Cart) Item(productID uuid.UUID) (*CartItem, bool) {
	if c == nil {
		return nil, false
	}

	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i], true
		}
	}

	return nil, false
}

// Total sums all lines at current catalog prices.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	if c == nil {
		return total
	}

	for _, item := range c.Items {
		total = total.Add(item.Subtotal())
	}

	return total
}

// ItemCount returns the number of units across all lines.
func (c *Cart) ItemCount() int {
	if c == nil {
		return 0
	}

	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}

	return count
}
