package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderEventType identifies what happened to an order.
type OrderEventType string

const (
	OrderEventPlaced               OrderEventType = "order.placed"
	OrderEventPaymentProofUploaded OrderEventType = "order.payment_proof_uploaded"
	OrderEventStatusChanged        OrderEventType = "order.status_changed"
)

// OrderEvent is published after an order change is committed.
type OrderEvent struct {
	Type           OrderEventType `json:"type"`
	OrderID        uuid.UUID      `json:"orderId"`
	UserID         uuid.UUID      `json:"userId"`
	UniqueCode     string         `json:"uniqueCode"`
	Status         OrderStatus    `json:"status"`
	PreviousStatus OrderStatus    `json:"previousStatus,omitempty"`
	TotalAmount    string         `json:"totalAmount"`
	OccurredAt     time.Time      `json:"occurredAt"`
	RequestID      string         `json:"requestId,omitempty"`
}

// NewOrderEvent builds an event describing the current state of order.
func NewOrderEvent(eventType OrderEventType, order *Order) *OrderEvent {
	return &OrderEvent{
		Type:        eventType,
		OrderID:     order.ID,
		UserID:      order.UserID,
		UniqueCode:  order.UniqueCode,
		Status:      order.Status,
		TotalAmount: order.TotalAmount.StringFixed(2),
		OccurredAt:  time.Now().UTC(),
	}
}
