package domain

import "github.com/shopspring/decimal"

// FeaturedDiscountRate is the automatic markdown applied to the first catalog
// entry wherever featured UI is rendered.
const FeaturedDiscountRate = 0.20

// Shipping rates by method, in the catalog currency.
const (
	ShippingStandard = 10.00
	ShippingExpress  = 25.00
)

// PricedProduct is a catalog product with the discount policy applied: Price
// is the effective price that gets snapshotted into a cart line.
type PricedProduct struct {
	Product
	OriginalPrice float64
	IsDiscounted  bool
	Savings       float64
}

// ApplyDiscountPolicy prices a product according to its catalog position.
// Position 0 is the featured entry and receives FeaturedDiscountRate off.
func ApplyDiscountPolicy(p Product, position int) PricedProduct {
	pp := PricedProduct{Product: p, OriginalPrice: p.Price}
	if position != 0 {
		return pp
	}
	orig := decimal.NewFromFloat(p.Price)
	price := orig.Mul(decimal.NewFromFloat(1 - FeaturedDiscountRate)).Round(2)
	pp.Price, _ = price.Float64()
	pp.IsDiscounted = true
	pp.Savings, _ = orig.Sub(price).Round(2).Float64()
	return pp
}

// ShippingCost maps a shipping method to its flat rate. Unknown methods are
// rejected upstream by field validation, so this defaults to standard.
func ShippingCost(method string) float64 {
	if method == "express" {
		return ShippingExpress
	}
	return ShippingStandard
}
