package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrPaymentDetailNotFound is returned when no payment details match.
var ErrPaymentDetailNotFound = errors.New("payment detail not found")

// PaymentDetailRepository defines the interface for payment detail persistence.
type PaymentDetailRepository interface {
	// FindByAdmin returns the admin's payment details.
	FindByAdmin(ctx context.Context, adminID uuid.UUID) (*entity.PaymentDetail, error)

	// FindActive returns the most recently updated active record.
	FindActive(ctx context.Context) (*entity.PaymentDetail, error)

	// Upsert creates or replaces the admin's record.
	Upsert(ctx context.Context, detail *entity.PaymentDetail) error

	Delete(ctx context.Context, adminID uuid.UUID) error
}
