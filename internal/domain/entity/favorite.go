package entity

import (
	"time"

	"github.com/google/uuid"
)

// Favorite marks a product a user wants to find again. (UserID, ProductID) is unique.
type Favorite struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ProductID uuid.UUID
	Product   *Product // Resolved product, when loaded.
	CreatedAt time.Time
}
