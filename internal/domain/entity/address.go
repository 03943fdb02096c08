package entity

import (
	"time"

	"github.com/google/uuid"
)

// Address is a delivery address owned by a user.
type Address struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the address.
	UserID       uuid.UUID // The owner of this address.
	Label        string    // A user-defined label, e.g., "Home", "Office".
	AddressLine1 string    // Street and house number.
	AddressLine2 string    // Optional extra line.
	City         string
	State        string
	Country      string
	Pincode      string
	Phone        string   // Contact phone for the delivery.
	Latitude     *float64 // Optional geographic latitude.
	Longitude    *float64 // Optional geographic longitude.
	IsDefault    bool     // At most one default address per user.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasCoordinates reports whether both latitude and longitude are set.
func (a *Address) HasCoordinates() bool {
	return a.Latitude != nil && a.Longitude != nil
}
