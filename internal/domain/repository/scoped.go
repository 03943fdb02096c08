package repository

import (
	"context"

	"github.com/google/uuid"
)

// OwnedRepository looks up records through their owner. A record that exists but belongs
// to someone else is reported exactly like a missing one.
type OwnedRepository[T any] interface {
	// FindOwned returns the record with id if ownerID owns it.
	FindOwned(ctx context.Context, id, ownerID uuid.UUID) (*T, error)
}
