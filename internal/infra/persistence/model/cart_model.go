package model

import (
	"time"

	"github.com/google/uuid"
)

// CartModel mirrors the 'carts' table. A user owns at most one cart.
type CartModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	Items     []CartItemModel `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}

// CartItemModel mirrors the 'cart_items' table. (cart_id, product_id) is the primary key,
// so a product appears once per cart.
type CartItemModel struct {
	CartID    uuid.UUID     `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID     `gorm:"type:uuid;primaryKey"`
	Quantity  int           `gorm:"not null;check:chk_cart_items_quantity_positive,quantity >= 1"`
	Product   *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}
