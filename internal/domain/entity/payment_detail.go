package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentDetail holds the UPI account an admin collects payments on.
type PaymentDetail struct {
	ID                uuid.UUID // The Global Unique Identifier (GUID) for the record.
	AdminID           uuid.UUID // One record per admin.
	AccountHolderName string    // Name shown next to the QR code.
	UPIID             string    // Virtual payment address, stored lower-cased.
	Phone             string    // Contact number of the account holder.
	QRCodeImage       string    // Public URL of the uploaded QR image.
	QRCodePath        string    // Storage key of the uploaded QR image.
	IsActive          bool      // Only active details are shown to customers.
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
