package service

import (
	"context"

	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrIdempotencyInProgress is returned when another request holds the same key.
var ErrIdempotencyInProgress = errors.New("idempotent request in progress")

// IdempotencyStore remembers which order a client-supplied key produced.
type IdempotencyStore interface {
	// Reserve claims key. If the key already completed, the recorded order id is returned
	// with found set. If it is still pending, ErrIdempotencyInProgress is returned.
	Reserve(ctx context.Context, key string) (orderID uuid.UUID, found bool, err error)

	// Complete records the order produced for key.
	Complete(ctx context.Context, key string, orderID uuid.UUID) error

	// Release forgets a reservation whose request failed.
	Release(ctx context.Context, key string) error
}
