package domain

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
)

// Product is a read-only catalog entry. The catalog carries no surrogate IDs;
// Name is the unique key and the cart references products by it.
type Product struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
}
