package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techoutlet/storefront-api/internal/domain"
)

func newCartService(t *testing.T) *CartService {
	t.Helper()
	tracer, meter, logger := testTelemetry()
	return NewCartService(newCartStore(t), demoCatalog(), tracer, meter, logger)
}

func TestCartServiceAddItem(t *testing.T) {
	svc := newCartService(t)
	ctx := context.Background()

	cart, err := svc.AddItem(ctx, "Plain Speaker")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)
	assert.Equal(t, 15.00, cart.Items[0].Price)
	assert.False(t, cart.Items[0].IsDiscounted)

	// Adding again merges into the existing line.
	cart, err = svc.AddItem(ctx, "Plain Speaker")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestCartServiceAddFeaturedSnapshotsDiscountedPrice(t *testing.T) {
	svc := newCartService(t)

	cart, err := svc.AddItem(context.Background(), "Featured Phones")
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.True(t, cart.Items[0].IsDiscounted)
	assert.Equal(t, 80.00, cart.Items[0].Price)
	assert.Equal(t, 100.00, cart.Items[0].OriginalPrice)
	assert.Equal(t, 20.00, cart.Items[0].Savings)
}

func TestCartServiceAddUnknownProductLeavesCartUntouched(t *testing.T) {
	svc := newCartService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "Ghost Product")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	assert.Empty(t, svc.GetCart(ctx).Items)
}

func TestCartServicePersistsAcrossLoads(t *testing.T) {
	tracer, meter, logger := testTelemetry()
	store := newCartStore(t)
	catalog := demoCatalog()

	svc := NewCartService(store, catalog, tracer, meter, logger)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "Desk Lamp")
	require.NoError(t, err)
	_, err = svc.IncrementItem(ctx, "Desk Lamp")
	require.NoError(t, err)

	// A second service over the same store simulates a page reload.
	reloaded := NewCartService(store, catalog, tracer, meter, logger)
	cart := reloaded.GetCart(ctx)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, "Desk Lamp", cart.Items[0].Name)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestCartServiceQuantityFlows(t *testing.T) {
	svc := newCartService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "Plain Speaker")
	require.NoError(t, err)

	cart, err := svc.UpdateQuantity(ctx, "Plain Speaker", 4)
	require.NoError(t, err)
	assert.Equal(t, 4, cart.Items[0].Quantity)
	assert.Equal(t, 60.00, cart.Total)

	cart, err = svc.UpdateQuantity(ctx, "Plain Speaker", 0)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	_, err = svc.UpdateQuantity(ctx, "Plain Speaker", 2)
	assert.ErrorIs(t, err, domain.ErrLineItemNotFound)
}

func TestCartServiceDecrementToRemoval(t *testing.T) {
	svc := newCartService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "Plain Speaker")
	require.NoError(t, err)

	cart, err := svc.DecrementItem(ctx, "Plain Speaker")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCartServiceRemoveAndClear(t *testing.T) {
	svc := newCartService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "Plain Speaker")
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "Desk Lamp")
	require.NoError(t, err)

	cart, err := svc.RemoveItem(ctx, "Plain Speaker")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)

	// Removing an absent line is a no-op, not an error.
	cart, err = svc.RemoveItem(ctx, "Plain Speaker")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)

	require.NoError(t, svc.ClearCart(ctx))
	assert.Empty(t, svc.GetCart(ctx).Items)
}

func TestCartServiceTotals(t *testing.T) {
	svc := newCartService(t)
	ctx := context.Background()

	// Discounted featured at 80 x2 plus a full-price 15 x1.
	_, err := svc.AddItem(ctx, "Featured Phones")
	require.NoError(t, err)
	_, err = svc.IncrementItem(ctx, "Featured Phones")
	require.NoError(t, err)
	cart, err := svc.AddItem(ctx, "Plain Speaker")
	require.NoError(t, err)

	assert.Equal(t, 175.00, cart.Total)
	assert.Equal(t, 3, cart.TotalQuantity)
}
