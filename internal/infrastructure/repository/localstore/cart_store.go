// Package localstore adapts the JSON-blob store to the domain repository
// contracts: a single cart blob and an append-only order history.
package localstore

import (
	"context"
	"log/slog"

	"github.com/techoutlet/storefront-api/internal/domain"
	"github.com/techoutlet/storefront-api/internal/infrastructure/blobstore"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const cartKey = "cart"

// CartStore persists the cart under a single storage key, overwriting the
// whole blob on every save.
type CartStore struct {
	store  *blobstore.Store
	tracer trace.Tracer
	logger *slog.Logger
}

// NewCartStore creates a cart store over the given blob store.
func NewCartStore(store *blobstore.Store, tracer trace.Tracer, logger *slog.Logger) *CartStore {
	return &CartStore{store: store, tracer: tracer, logger: logger}
}

// Load reads the persisted cart. The stored value is the bare line-item
// array. A missing or corrupted value yields an empty cart; the failure is
// logged inside the blob store, never surfaced.
func (s *CartStore) Load(ctx context.Context) *domain.Cart {
	_, span := s.tracer.Start(ctx, "CartStore.Load")
	defer span.End()

	var items []domain.LineItem
	if !s.store.Read(cartKey, &items) {
		span.SetAttributes(attribute.Bool("cart.reset", true))
		return domain.NewCart()
	}
	span.SetAttributes(attribute.Int("cart.lines", len(items)))
	return &domain.Cart{Items: items}
}

// Save overwrites the persisted cart with the given one.
func (s *CartStore) Save(ctx context.Context, cart *domain.Cart) error {
	ctx, span := s.tracer.Start(ctx, "CartStore.Save")
	defer span.End()

	span.SetAttributes(attribute.Int("cart.lines", len(cart.Items)))

	if err := s.store.Write(cartKey, cart.Items); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to persist cart")
		s.logger.ErrorContext(ctx, "Failed to persist cart",
			slog.String("error", err.Error()),
		)
		return err
	}
	return nil
}

// Clear deletes the cart's storage key entirely.
func (s *CartStore) Clear(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "CartStore.Clear")
	defer span.End()

	if err := s.store.Delete(cartKey); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to clear cart storage")
		s.logger.ErrorContext(ctx, "Failed to clear cart storage",
			slog.String("error", err.Error()),
		)
		return err
	}
	return nil
}
