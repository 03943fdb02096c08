package service

import (
	"github.com/shopspring/decimal"
)

// UPIPayment describes a UPI collect request encoded in a QR code.
type UPIPayment struct {
	PayeeVPA  string          // UPI id of the merchant
	PayeeName string          // Name shown in the payer's app
	Amount    decimal.Decimal // Zero leaves the amount to the payer
	Note      string          // Transaction note, usually the order code
}

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// BuildUPILink returns the upi://pay deep link for payment
	BuildUPILink(payment UPIPayment) (string, error)

	// GenerateUPIQR renders the deep link for payment as a PNG
	GenerateUPIQR(payment UPIPayment) ([]byte, error)
}
