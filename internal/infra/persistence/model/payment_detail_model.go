package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentDetailModel mirrors the 'payment_details' table, one row per admin.
type PaymentDetailModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	AdminID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	AccountHolderName string    `gorm:"type:varchar(100);not null"`
	UPIID             string    `gorm:"column:upi_id;type:varchar(100);not null"`
	Phone             string    `gorm:"type:varchar(20)"`
	QRCodeImage       string    `gorm:"column:qr_code_image;type:text;not null"`
	QRCodePath        string    `gorm:"column:qr_code_path;type:text"`
	IsActive          bool      `gorm:"not null;default:true;index"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentDetailModel) TableName() string {
	return "payment_details"
}
