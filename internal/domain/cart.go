package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrCartEmpty          = errors.New("cart is empty")
	ErrLineItemNotFound   = errors.New("cart line item not found")
	ErrCheckoutInProgress = errors.New("checkout already in progress")
)

// LineItem is one row in the cart, keyed by product name. Price is a snapshot
// taken at add time and may already include the featured discount.
type LineItem struct {
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Quantity      int     `json:"quantity"`
	OriginalPrice float64 `json:"originalPrice"`
	IsDiscounted  bool    `json:"isDiscounted"`
}

// Savings returns the per-unit discount amount.
func (li LineItem) Savings() float64 {
	saved, _ := decimal.NewFromFloat(li.OriginalPrice).
		Sub(decimal.NewFromFloat(li.Price)).
		Round(2).Float64()
	return saved
}

// Cart is an insertion-ordered sequence of line items with at most one line
// per product name and no line with quantity below 1.
type Cart struct {
	Items []LineItem `json:"items"`
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{Items: []LineItem{}}
}

func (c *Cart) find(name string) int {
	for i := range c.Items {
		if c.Items[i].Name == name {
			return i
		}
	}
	return -1
}

// Find returns the line item for name, if present.
func (c *Cart) Find(name string) (LineItem, bool) {
	if i := c.find(name); i >= 0 {
		return c.Items[i], true
	}
	return LineItem{}, false
}

// IsEmpty reports whether the cart holds no line items.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Add merges a priced product into the cart: an existing line gets its
// quantity bumped by one, otherwise a new line is appended with quantity 1.
func (c *Cart) Add(p PricedProduct) {
	if i := c.find(p.Name); i >= 0 {
		c.Items[i].Quantity++
		return
	}
	c.Items = append(c.Items, LineItem{
		Name:          p.Name,
		Price:         p.Price,
		Quantity:      1,
		OriginalPrice: p.OriginalPrice,
		IsDiscounted:  p.IsDiscounted,
	})
}

// SetQuantity sets the quantity of the named line. A quantity of zero or less
// removes the line. Returns ErrLineItemNotFound when the line does not exist.
func (c *Cart) SetQuantity(name string, quantity int) error {
	i := c.find(name)
	if i < 0 {
		return ErrLineItemNotFound
	}
	if quantity <= 0 {
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
		return nil
	}
	c.Items[i].Quantity = quantity
	return nil
}

// Increment bumps the named line's quantity by one.
func (c *Cart) Increment(name string) error {
	i := c.find(name)
	if i < 0 {
		return ErrLineItemNotFound
	}
	return c.SetQuantity(name, c.Items[i].Quantity+1)
}

// Decrement lowers the named line's quantity by one. A line at quantity 1 is
// removed rather than left at zero.
func (c *Cart) Decrement(name string) error {
	i := c.find(name)
	if i < 0 {
		return ErrLineItemNotFound
	}
	return c.SetQuantity(name, c.Items[i].Quantity-1)
}

// Remove deletes the named line. Removing an absent line is a no-op.
func (c *Cart) Remove(name string) {
	if i := c.find(name); i >= 0 {
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = []LineItem{}
}

// TotalQuantity returns the number of units across all lines.
func (c *Cart) TotalQuantity() int {
	n := 0
	for _, li := range c.Items {
		n += li.Quantity
	}
	return n
}

// Total returns the cart total as Σ price×quantity, rounded to cents.
func (c *Cart) Total() float64 {
	total := decimal.Zero
	for _, li := range c.Items {
		line := decimal.NewFromFloat(li.Price).Mul(decimal.NewFromInt(int64(li.Quantity)))
		total = total.Add(line)
	}
	f, _ := total.Round(2).Float64()
	return f
}
