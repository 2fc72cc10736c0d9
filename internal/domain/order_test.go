package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderNumber(t *testing.T) {
	now := time.UnixMilli(1756000012345)

	number := OrderNumber(now)

	require.Len(t, number, 10)
	assert.Equal(t, "TO", number[:2])
	assert.Equal(t, "00012345", number[2:])
}

func TestNewOrder(t *testing.T) {
	cart := NewCart()
	cart.Add(priced("Widget", 100))
	require.NoError(t, cart.Increment("Widget"))
	cart.Add(priced("Gadget", 15))

	now := time.Date(2026, time.August, 23, 10, 0, 0, 0, time.UTC)
	info := CustomerInfo{Name: "Alex Chen", ShippingMethod: "express"}

	order := NewOrder(cart, info, now)

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, 215.00, order.Subtotal)
	assert.Equal(t, ShippingExpress, order.Shipping)
	assert.Equal(t, 240.00, order.Total)
	assert.Equal(t, now, order.Timestamp)
	assert.Equal(t, info, order.CustomerInfo)
	require.Len(t, order.Items, 2)

	// Items are a snapshot: clearing the cart must not touch the order.
	cart.Clear()
	assert.Len(t, order.Items, 2)
}
