package model

import (
	"time"

	"github.com/google/uuid"
)

// HeroBannerModel mirrors the 'hero_banners' table.
type HeroBannerModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title     string    `gorm:"type:varchar(200);not null"`
	ImageURL  string    `gorm:"column:image_url;type:text;not null"`
	ImagePath string    `gorm:"column:image_path;type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (HeroBannerModel) TableName() string {
	return "hero_banners"
}
