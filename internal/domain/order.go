package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerInfo is the snapshot of the checkout form taken when an order is
// placed. Card details are deliberately not part of the snapshot.
type CustomerInfo struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Mobile         string `json:"mobile"`
	Address        string `json:"address"`
	City           string `json:"city"`
	State          string `json:"state"`
	Postcode       string `json:"postcode"`
	ShippingMethod string `json:"shippingMethod"`
}

// Order is the ephemeral result of a simulated checkout. It is appended to
// local order history and never transmitted anywhere.
type Order struct {
	ID           string       `json:"id"`
	OrderNumber  string       `json:"orderNumber"`
	CustomerInfo CustomerInfo `json:"customerInfo"`
	Items        []LineItem   `json:"items"`
	Subtotal     float64      `json:"subtotal"`
	Shipping     float64      `json:"shipping"`
	Total        float64      `json:"total"`
	Timestamp    time.Time    `json:"timestamp"`
}

// NewOrder assembles an order from the cart contents and the validated
// customer snapshot, computing totals from the line-item price snapshots.
func NewOrder(cart *Cart, info CustomerInfo, now time.Time) *Order {
	subtotal := cart.Total()
	shipping := ShippingCost(info.ShippingMethod)
	total, _ := decimal.NewFromFloat(subtotal).
		Add(decimal.NewFromFloat(shipping)).
		Round(2).Float64()

	items := make([]LineItem, len(cart.Items))
	copy(items, cart.Items)

	return &Order{
		ID:           uuid.New().String(),
		OrderNumber:  OrderNumber(now),
		CustomerInfo: info,
		Items:        items,
		Subtotal:     subtotal,
		Shipping:     shipping,
		Total:        total,
		Timestamp:    now,
	}
}

// OrderNumber fabricates a display order number from the last eight digits of
// the millisecond timestamp, prefixed with "TO".
func OrderNumber(now time.Time) string {
	millis := fmt.Sprintf("%d", now.UnixMilli())
	if len(millis) > 8 {
		millis = millis[len(millis)-8:]
	}
	return "TO" + millis
}
