package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// PaymentDetailInput carries the fields an admin submits. QRCode is optional on updates.
type PaymentDetailInput struct {
	AccountHolderName string
	UPIID             string
	Phone             string
	QRCode            *FileUpload
}

// PaymentDetailUsecase manages the UPI account customers pay into.
type PaymentDetailUsecase interface {
	// GetActive returns the details shown to customers.
	GetActive(ctx context.Context) (*entity.PaymentDetail, error)

	GetMine(ctx context.Context, adminID uuid.UUID) (*entity.PaymentDetail, error)

	// Save creates or replaces the admin's details and activates them.
	Save(ctx context.Context, adminID uuid.UUID, input *PaymentDetailInput) (*entity.PaymentDetail, error)

	Deactivate(ctx context.Context, adminID uuid.UUID) (*entity.PaymentDetail, error)

	// Delete removes deactivated details together with their QR image.
	Delete(ctx context.Context, adminID uuid.UUID) error
}
