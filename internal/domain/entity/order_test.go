package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseOrderStatus(t *testing.T) {
	tests := []struct {
		input  string
		want   OrderStatus
		wantOK bool
	}{
		{input: "Pending", want: OrderStatusPending, wantOK: true},
		{input: "Shipped", want: OrderStatusShipped, wantOK: true},
		{input: "paid", wantOK: false},
		{input: "cancelled", wantOK: false},
		{input: " SHIPPED ", wantOK: false},
		{input: "Refunded", wantOK: false},
		{input: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseOrderStatus(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, OrderStatusPending.CanTransitionTo(OrderStatusPaid))
	assert.True(t, OrderStatusShipped.CanTransitionTo(OrderStatusProcessing), "open orders may move backwards")
	assert.True(t, OrderStatusVerified.CanTransitionTo(OrderStatusCancelled))

	for _, next := range OrderStatuses() {
		assert.False(t, OrderStatusDelivered.CanTransitionTo(next))
		assert.False(t, OrderStatusCancelled.CanTransitionTo(next))
	}

	assert.False(t, OrderStatusPending.CanTransitionTo(OrderStatus("Refunded")))
}

func TestOrderStatus_Terminal(t *testing.T) {
	for _, status := range OrderStatuses() {
		want := status == OrderStatusDelivered || status == OrderStatusCancelled
		assert.Equal(t, want, status.IsTerminal(), status)
		assert.True(t, status.IsValid())
	}
	assert.False(t, OrderStatus("Lost").IsValid())
}

func TestParsePaymentMethod(t *testing.T) {
	method, ok := ParsePaymentMethod("")
	assert.True(t, ok)
	assert.Equal(t, PaymentMethodCOD, method)

	method, ok = ParsePaymentMethod("upi")
	assert.True(t, ok)
	assert.Equal(t, PaymentMethodUPI, method)

	_, ok = ParsePaymentMethod("CARD")
	assert.False(t, ok)
}

func TestSnapshotCart_FreezesCurrentPrices(t *testing.T) {
	productA := &Product{ID: uuid.New(), Name: "Paneer Tikka", Price: decimal.NewFromInt(100), Stock: 10}
	productB := &Product{ID: uuid.New(), Name: "Dal Makhani", Price: decimal.NewFromInt(50), Stock: 10}
	cart := &Cart{Items: []CartItem{
		{ProductID: productA.ID, Quantity: 2, Product: productA},
		{ProductID: productB.ID, Quantity: 1, Product: productB},
	}}

	items, total := SnapshotCart(cart)

	assert.Len(t, items, 2)
	assert.True(t, total.Equal(decimal.NewFromInt(250)))
	assert.True(t, items[0].PriceAtOrder.Equal(decimal.NewFromInt(100)))

	productA.Price = decimal.NewFromInt(999)
	assert.True(t, items[0].PriceAtOrder.Equal(decimal.NewFromInt(100)), "snapshot must not follow catalog changes")
}

func TestSnapshotCart_SkipsRemovedProducts(t *testing.T) {
	cart := &Cart{Items: []CartItem{{ProductID: uuid.New(), Quantity: 3}}}

	items, total := SnapshotCart(cart)

	assert.Empty(t, items)
	assert.True(t, total.IsZero())
}
