package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a dish on the menu.
type Product struct {
	ID        uuid.UUID       // The Global Unique Identifier (GUID) for the product.
	Name      string          // Display name.
	Price     decimal.Decimal // Current unit price, always positive.
	Stock     int             // Units available, never negative.
	Image     string          // Public URL of the product image.
	Type      string          // Catalog tag, e.g. "starter", "main".
	Cuisine   string          // Catalog tag, e.g. "north-indian".
	Meat      string          // Catalog tag, e.g. "veg", "chicken".
	CreatedAt time.Time       // Timestamp of when this product was created.
	UpdatedAt time.Time       // Timestamp of the last modification.
}

// HasStock reports whether quantity units can be sold right now.
func (p *Product) HasStock(quantity int) bool {
	return quantity <= p.Stock
}

// IsLowStock reports whether stock is at or below threshold.
func (p *Product) IsLowStock(threshold int) bool {
	return p.Stock <= threshold
}

// ProductFilter narrows catalog listings. Empty fields match everything.
type ProductFilter struct {
	Type    string
	Cuisine string
	Meat    string
	Search  string
}
