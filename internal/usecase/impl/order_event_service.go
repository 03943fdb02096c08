package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type orderEventService struct {
	notifier service.NotificationService
	logger   *slog.Logger
}

// OrderEventServiceParams holds dependencies for OrderEventService, injected by Fx.
type OrderEventServiceParams struct {
	fx.In

	Notifier service.NotificationService
	Logger   *slog.Logger
}

// NewOrderEventService creates the worker-side order event handler.
func NewOrderEventService(params OrderEventServiceParams) usecase.OrderEventUsecase {
	return &orderEventService{
		notifier: params.Notifier,
		logger:   params.Logger,
	}
}

func (srv *orderEventService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

type notification struct {
	topic string
	title string
	body  string
}

// HandleOrderEvent sends one notification to the customer's topic and one to the admins'.
// Unknown event types are ignored.
func (srv *orderEventService) HandleOrderEvent(ctx context.Context, event *entity.OrderEvent) error {
	notifications := buildNotifications(event)
	if len(notifications) == 0 {
		srv.log(ctx).Warn("Ignoring unknown order event", slog.String("type", string(event.Type)))

		return nil
	}

	data := map[string]string{
		"type":       string(event.Type),
		"orderId":    event.OrderID.String(),
		"uniqueCode": event.UniqueCode,
		"status":     event.Status.String(),
	}

	var errs []error
	for _, n := range notifications {
		if err := srv.notifier.SendToTopic(ctx, n.topic, n.title, n.body, data); err != nil {
			srv.log(ctx).Error("Failed to send notification",
				slog.String("topic", n.topic),
				slog.String("order_id", event.OrderID.String()),
				slog.Any("error", err),
			)
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return errors.Wrapf(errs[0], "%d of %d notifications failed", len(errs), len(notifications))
	}

	srv.log(ctx).Info("Order event handled",
		slog.String("type", string(event.Type)),
		slog.String("order_id", event.OrderID.String()),
	)

	return nil
}

func buildNotifications(event *entity.OrderEvent) []notification {
	userTopic := constants.UserTopicPrefix + event.UserID.String()

	switch event.Type {
	case entity.OrderEventPlaced:
		return []notification{
			{userTopic, "Order placed", fmt.Sprintf("Your order %s for ₹%s has been placed.", event.UniqueCode, event.TotalAmount)},
			{constants.AdminOrdersTopic, "New order", fmt.Sprintf("Order %s received for ₹%s.", event.UniqueCode, event.TotalAmount)},
		}
	case entity.OrderEventPaymentProofUploaded:
		return []notification{
			{userTopic, "Payment received", fmt.Sprintf("We received your payment proof for order %s.", event.UniqueCode)},
			{constants.AdminOrdersTopic, "Payment proof uploaded", fmt.Sprintf("Order %s is waiting for payment verification.", event.UniqueCode)},
		}
	case entity.OrderEventStatusChanged:
		return []notification{
			{userTopic, "Order update", fmt.Sprintf("Your order %s is now %s.", event.UniqueCode, event.Status)},
			{constants.AdminOrdersTopic, "Order status changed", fmt.Sprintf("Order %s moved from %s to %s.", event.UniqueCode, event.PreviousStatus, event.Status)},
		}
	default:
		return nil
	}
}
