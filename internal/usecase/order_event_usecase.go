package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// OrderEventUsecase reacts to published order events in the worker.
type OrderEventUsecase interface {
	// HandleOrderEvent notifies the customer and the admins about the event.
	HandleOrderEvent(ctx context.Context, event *entity.OrderEvent) error
}
