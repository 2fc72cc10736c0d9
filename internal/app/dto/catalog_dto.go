package dto

import "github.com/techoutlet/storefront-api/internal/domain"

// ProductResponse is a catalog product with the discount policy applied.
// Price is the effective price; OriginalPrice the catalog price.
type ProductResponse struct {
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"originalPrice"`
	IsDiscounted  bool    `json:"isDiscounted"`
	Savings       float64 `json:"savings,omitempty"`
	Description   string  `json:"description"`
	Image         string  `json:"image"`
	Category      string  `json:"category"`
}

// ToProductResponse converts a priced domain product to its response shape.
func ToProductResponse(p domain.PricedProduct) *ProductResponse {
	return &ProductResponse{
		Name:          p.Name,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		IsDiscounted:  p.IsDiscounted,
		Savings:       p.Savings,
		Description:   p.Description,
		Image:         p.Image,
		Category:      p.Category,
	}
}
