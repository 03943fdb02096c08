package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	mockSvc "storefront/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderEventService_HandleOrderEvent_NotifiesCustomerAndAdmins(t *testing.T) {
	notifier := mockSvc.NewMockNotificationService(t)
	srv := NewOrderEventService(OrderEventServiceParams{Notifier: notifier, Logger: newDiscardLogger()})

	ctx := context.Background()
	event := &entity.OrderEvent{
		Type:           entity.OrderEventStatusChanged,
		OrderID:        uuid.New(),
		UserID:         uuid.New(),
		UniqueCode:     "ORD01HZX",
		Status:         entity.OrderStatusShipped,
		PreviousStatus: entity.OrderStatusProcessing,
	}
	data := mock.MatchedBy(func(data map[string]string) bool {
		return data["orderId"] == event.OrderID.String() && data["status"] == "Shipped"
	})

	notifier.EXPECT().SendToTopic(ctx, "user-"+event.UserID.String(), "Order update", "Your order ORD01HZX is now Shipped.", data).Return(nil)
	notifier.EXPECT().SendToTopic(ctx, "admin-orders", "Order status changed", "Order ORD01HZX moved from Processing to Shipped.", data).Return(nil)

	require.NoError(t, srv.HandleOrderEvent(ctx, event))
}

func TestOrderEventService_HandleOrderEvent_UnknownTypeIgnored(t *testing.T) {
	notifier := mockSvc.NewMockNotificationService(t)
	srv := NewOrderEventService(OrderEventServiceParams{Notifier: notifier, Logger: newDiscardLogger()})

	err := srv.HandleOrderEvent(context.Background(), &entity.OrderEvent{Type: "order.refunded"})

	require.NoError(t, err)
	notifier.AssertNotCalled(t, "SendToTopic", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderEventService_HandleOrderEvent_PartialFailure(t *testing.T) {
	notifier := mockSvc.NewMockNotificationService(t)
	srv := NewOrderEventService(OrderEventServiceParams{Notifier: notifier, Logger: newDiscardLogger()})
	event := &entity.OrderEvent{Type: entity.OrderEventPlaced, UserID: uuid.New(), UniqueCode: "ORD1", TotalAmount: "250.00"}

	notifier.EXPECT().SendToTopic(mock.Anything, "user-"+event.UserID.String(), mock.Anything, mock.Anything, mock.Anything).Return(errors.New("unregistered"))
	notifier.EXPECT().SendToTopic(mock.Anything, "admin-orders", "New order", "Order ORD1 received for ₹250.00.", mock.Anything).Return(nil)

	err := srv.HandleOrderEvent(context.Background(), event)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 notifications failed")
}
