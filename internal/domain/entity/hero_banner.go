package entity

import (
	"time"

	"github.com/google/uuid"
)

// HeroBanner is a headline image on the storefront home page.
type HeroBanner struct {
	ID        uuid.UUID
	Title     string
	ImageURL  string // Public URL of the banner image.
	ImagePath string // Storage key of the banner image.
	CreatedAt time.Time
	UpdatedAt time.Time
}
