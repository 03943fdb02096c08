package qrcode

import (
	"fmt"
	"net/url"
	"strings"

	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/skip2/go-qrcode"
)

const (
	upiScheme   = "upi://pay"
	upiCurrency = "INR"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// BuildUPILink returns the upi://pay deep link. Parameters keep the order UPI apps expect.
func (s *qrcodeService) BuildUPILink(payment service.UPIPayment) (string, error) {
	vpa := strings.TrimSpace(payment.PayeeVPA)
	if vpa == "" || !strings.Contains(vpa, "@") {
		return "", errors.Errorf("invalid UPI id %q", payment.PayeeVPA)
	}
	if payment.Amount.IsNegative() {
		return "", errors.New("UPI amount must not be negative")
	}

	params := []string{"pa=" + escape(strings.ToLower(vpa))}
	if name := strings.TrimSpace(payment.PayeeName); name != "" {
		params = append(params, "pn="+escape(name))
	}
	if payment.Amount.GreaterThan(decimal.Zero) {
		params = append(params, "am="+payment.Amount.StringFixed(2), "cu="+upiCurrency)
	}
	if note := strings.TrimSpace(payment.Note); note != "" {
		params = append(params, "tn="+escape(note))
	}

	return upiScheme + "?" + strings.Join(params, "&"), nil
}

// GenerateUPIQR renders the UPI deep link as a PNG
func (s *qrcodeService) GenerateUPIQR(payment service.UPIPayment) ([]byte, error) {
	link, err := s.BuildUPILink(payment)
	if err != nil {
		return nil, err
	}

	qrCode, err := qrcode.New(link, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

func escape(s string) string {
	return url.PathEscape(s)
}
