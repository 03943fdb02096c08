package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string          `gorm:"type:varchar(200);not null"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null;check:chk_products_price_positive,price > 0"`
	Stock     int             `gorm:"not null;default:0;check:chk_products_stock_non_negative,stock >= 0"`
	Image     string          `gorm:"type:text"`
	Type      string          `gorm:"type:varchar(50);index"`
	Cuisine   string          `gorm:"type:varchar(50);index"`
	Meat      string          `gorm:"type:varchar(50);index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
