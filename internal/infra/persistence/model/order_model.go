package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID                    uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID                uuid.UUID        `gorm:"type:uuid;not null;index:idx_orders_on_user_created,priority:1"`
	AddressID             uuid.UUID        `gorm:"type:uuid;not null"`
	Address               *AddressModel    `gorm:"foreignKey:AddressID;constraint:OnDelete:RESTRICT"`
	Items                 []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	TotalAmount           decimal.Decimal  `gorm:"type:numeric(12,2);not null"`
	PaymentMethod         string           `gorm:"type:varchar(10);not null"`
	Status                string           `gorm:"type:varchar(20);not null;default:Pending;index"`
	PaymentScreenshot     *string          `gorm:"type:text"`
	PaymentScreenshotPath *string          `gorm:"type:text"`
	UniqueCode            string           `gorm:"type:varchar(32);not null;uniqueIndex"`
	CreatedAt             time.Time        `gorm:"index:idx_orders_on_user_created,priority:2,sort:desc"`
	UpdatedAt             time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. Rows are written once with the order.
type OrderItemModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrderID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID    uuid.UUID       `gorm:"type:uuid;not null"`
	ProductName  string          `gorm:"type:varchar(200);not null"`
	Quantity     int             `gorm:"not null;check:chk_order_items_quantity_positive,quantity >= 1"`
	PriceAtOrder decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Position     int             `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
