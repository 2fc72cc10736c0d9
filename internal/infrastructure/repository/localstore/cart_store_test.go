package localstore

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techoutlet/storefront-api/internal/domain"
	"github.com/techoutlet/storefront-api/internal/infrastructure/blobstore"
	"go.opentelemetry.io/otel/trace/noop"
)

func newTestCartStore(t *testing.T) (*CartStore, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := blobstore.New(dir, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	tracer := noop.NewTracerProvider().Tracer("test")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewCartStore(store, tracer, logger), dir
}

func TestCartStoreRoundTrip(t *testing.T) {
	cartStore, _ := newTestCartStore(t)
	ctx := context.Background()

	cart := domain.NewCart()
	cart.Add(domain.PricedProduct{
		Product:       domain.Product{Name: "Widget", Price: 80},
		OriginalPrice: 100,
		IsDiscounted:  true,
	})
	require.NoError(t, cart.Increment("Widget"))

	require.NoError(t, cartStore.Save(ctx, cart))

	// A fresh load simulates a reload and must reproduce the same lines.
	loaded := cartStore.Load(ctx)
	assert.Equal(t, cart.Items, loaded.Items)
}

func TestCartStoreLoadMissingIsEmpty(t *testing.T) {
	cartStore, _ := newTestCartStore(t)

	loaded := cartStore.Load(context.Background())

	assert.True(t, loaded.IsEmpty())
}

func TestCartStoreLoadCorruptedIsEmpty(t *testing.T) {
	cartStore, dir := newTestCartStore(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "cart.json"), []byte("][ nope"), 0o644))

	loaded := cartStore.Load(context.Background())
	assert.True(t, loaded.IsEmpty())
}

func TestCartStoreClearDeletesKey(t *testing.T) {
	cartStore, dir := newTestCartStore(t)
	ctx := context.Background()

	cart := domain.NewCart()
	cart.Add(domain.PricedProduct{Product: domain.Product{Name: "Widget", Price: 10}, OriginalPrice: 10})
	require.NoError(t, cartStore.Save(ctx, cart))

	require.NoError(t, cartStore.Clear(ctx))

	_, err := os.Stat(filepath.Join(dir, "cart.json"))
	assert.True(t, os.IsNotExist(err))
	assert.True(t, cartStore.Load(ctx).IsEmpty())
}

func TestOrderRepositoryAppendAndList(t *testing.T) {
	dir := t.TempDir()
	store, err := blobstore.New(dir, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	tracer := noop.NewTracerProvider().Tracer("test")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := NewOrderRepository(store, tracer, logger)
	ctx := context.Background()

	orders, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)

	first := &domain.Order{ID: "1", OrderNumber: "TO00000001", Total: 50}
	second := &domain.Order{ID: "2", OrderNumber: "TO00000002", Total: 75}
	require.NoError(t, repo.Append(ctx, first))
	require.NoError(t, repo.Append(ctx, second))

	orders, err = repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "TO00000001", orders[0].OrderNumber)
	assert.Equal(t, "TO00000002", orders[1].OrderNumber)
}

func TestOrderRepositoryShapeMismatchIsEmpty(t *testing.T) {
	dir := t.TempDir()
	store, err := blobstore.New(dir, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "orders.json"), []byte(`{"orders": 1}`), 0o644))

	tracer := noop.NewTracerProvider().Tracer("test")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := NewOrderRepository(store, tracer, logger)

	orders, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
}
