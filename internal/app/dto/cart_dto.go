package dto

import (
	"github.com/shopspring/decimal"

	"github.com/techoutlet/storefront-api/internal/domain"
)

// AddItemRequest names the product to add to the cart.
type AddItemRequest struct {
	Name string `json:"name"`
}

// UpdateQuantityRequest sets a line's quantity. Zero or less removes the line.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// LineItemResponse is one cart row with its derived amounts.
type LineItemResponse struct {
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Quantity      int     `json:"quantity"`
	OriginalPrice float64 `json:"originalPrice"`
	IsDiscounted  bool    `json:"isDiscounted"`
	Savings       float64 `json:"savings,omitempty"`
	LineTotal     float64 `json:"lineTotal"`
}

// CartResponse is the whole cart with totals.
type CartResponse struct {
	Items         []LineItemResponse `json:"items"`
	TotalQuantity int                `json:"totalQuantity"`
	Total         float64            `json:"total"`
}

// ToCartResponse converts a domain cart to its response shape.
func ToCartResponse(cart *domain.Cart) *CartResponse {
	items := make([]LineItemResponse, len(cart.Items))
	for i, li := range cart.Items {
		lineTotal, _ := decimal.NewFromFloat(li.Price).
			Mul(decimal.NewFromInt(int64(li.Quantity))).
			Round(2).Float64()
		items[i] = LineItemResponse{
			Name:          li.Name,
			Price:         li.Price,
			Quantity:      li.Quantity,
			OriginalPrice: li.OriginalPrice,
			IsDiscounted:  li.IsDiscounted,
			Savings:       li.Savings(),
			LineTotal:     lineTotal,
		}
	}
	return &CartResponse{
		Items:         items,
		TotalQuantity: cart.TotalQuantity(),
		Total:         cart.Total(),
	}
}
