package dto

import (
	"time"

	"github.com/techoutlet/storefront-api/internal/domain"
)

// CheckoutRequest carries the checkout form fields as submitted.
type CheckoutRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Mobile         string `json:"mobile"`
	Address        string `json:"address"`
	City           string `json:"city"`
	State          string `json:"state"`
	Postcode       string `json:"postcode"`
	CardNumber     string `json:"cardNumber"`
	ExpiryDate     string `json:"expiryDate"`
	CVV            string `json:"cvv"`
	CardName       string `json:"cardName"`
	ShippingMethod string `json:"shippingMethod"`
}

// Fields returns the form as a field-to-value map for the rule table.
func (r *CheckoutRequest) Fields() map[string]string {
	return map[string]string{
		"name":           r.Name,
		"email":          r.Email,
		"mobile":         r.Mobile,
		"address":        r.Address,
		"city":           r.City,
		"state":          r.State,
		"postcode":       r.Postcode,
		"cardNumber":     r.CardNumber,
		"expiryDate":     r.ExpiryDate,
		"cvv":            r.CVV,
		"cardName":       r.CardName,
		"shippingMethod": r.ShippingMethod,
	}
}

// CustomerInfo snapshots the non-payment fields into the order record.
func (r *CheckoutRequest) CustomerInfo() domain.CustomerInfo {
	return domain.CustomerInfo{
		Name:           r.Name,
		Email:          r.Email,
		Mobile:         r.Mobile,
		Address:        r.Address,
		City:           r.City,
		State:          r.State,
		Postcode:       r.Postcode,
		ShippingMethod: r.ShippingMethod,
	}
}

// OrderResponse is a placed order.
type OrderResponse struct {
	ID           string              `json:"id"`
	OrderNumber  string              `json:"orderNumber"`
	CustomerInfo domain.CustomerInfo `json:"customerInfo"`
	Items        []LineItemResponse  `json:"items"`
	Subtotal     float64             `json:"subtotal"`
	Shipping     float64             `json:"shipping"`
	Total        float64             `json:"total"`
	Timestamp    time.Time           `json:"timestamp"`
}

// ToOrderResponse converts a domain order to its response shape.
func ToOrderResponse(o *domain.Order) *OrderResponse {
	cart := &domain.Cart{Items: o.Items}
	return &OrderResponse{
		ID:           o.ID,
		OrderNumber:  o.OrderNumber,
		CustomerInfo: o.CustomerInfo,
		Items:        ToCartResponse(cart).Items,
		Subtotal:     o.Subtotal,
		Shipping:     o.Shipping,
		Total:        o.Total,
		Timestamp:    o.Timestamp,
	}
}

// ToOrderResponseList converts order history to response shapes.
func ToOrderResponseList(orders []domain.Order) []*OrderResponse {
	responses := make([]*OrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToOrderResponse(&orders[i])
	}
	return responses
}
