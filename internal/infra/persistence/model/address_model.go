package model

import (
	"time"

	"github.com/google/uuid"
)

// AddressModel is the GORM-specific struct for the 'addresses' table.
type AddressModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index:idx_addresses_on_user"`
	Label        string    `gorm:"type:varchar(100)"`
	AddressLine1 string    `gorm:"type:text;not null"`
	AddressLine2 string    `gorm:"type:text"`
	City         string    `gorm:"type:varchar(100);not null"`
	State        string    `gorm:"type:varchar(100);not null"`
	Country      string    `gorm:"type:varchar(100);not null;default:India"`
	Pincode      string    `gorm:"type:varchar(12);not null"`
	Phone        string    `gorm:"type:varchar(20)"`
	Latitude     *float64  `gorm:"type:decimal(10,8)"`
	Longitude    *float64  `gorm:"type:decimal(11,8)"`
	IsDefault    bool      `gorm:"not null;default:false;index:idx_addresses_on_user"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
