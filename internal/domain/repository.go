package domain

import "context"

// CatalogRepository defines read access to the product catalog. The catalog
// is an external data source; there is no write path back to it.
type CatalogRepository interface {
	FindAll(ctx context.Context) ([]Product, error)
	FindByName(ctx context.Context, name string) (Product, int, error)
}

// CartStore persists the single cart blob. Load never fails on a corrupted
// value: the store resets to an empty cart instead.
type CartStore interface {
	Load(ctx context.Context) *Cart
	Save(ctx context.Context, cart *Cart) error
	Clear(ctx context.Context) error
}

// OrderRepository keeps local order history.
type OrderRepository interface {
	Append(ctx context.Context, order *Order) error
	FindAll(ctx context.Context) ([]Order, error)
}
