package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review ratings are whole stars.
const (
	MinReviewRating = 1
	MaxReviewRating = 5
)

// Review is a customer testimonial shown on the storefront.
type Review struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the review.
	UserID    uuid.UUID // Author; only the author may edit it.
	Name      string    // Display name chosen by the author.
	Comment   string
	Rating    int // Between MinReviewRating and MaxReviewRating.
	CreatedAt time.Time
	UpdatedAt time.Time
}
