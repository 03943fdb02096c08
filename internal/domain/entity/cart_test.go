package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCart_TotalUsesCurrentPrices(t *testing.T) {
	product := &Product{ID: uuid.New(), Price: decimal.RequireFromString("12.50")}
	cart := &Cart{Items: []CartItem{{ProductID: product.ID, Quantity: 4, Product: product}}}

	assert.True(t, cart.Total().Equal(decimal.NewFromInt(50)))

	product.Price = decimal.NewFromInt(20)
	assert.True(t, cart.Total().Equal(decimal.NewFromInt(80)))
	assert.Equal(t, 4, cart.ItemCount())
}

func TestCart_NilIsEmpty(t *testing.T) {
	var cart *Cart

	assert.True(t, cart.IsEmpty())
	assert.True(t, cart.Total().IsZero())
	_, ok := cart.Item(uuid.New())
	assert.False(t, ok)
}
