package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/techoutlet/storefront-api/internal/domain"
	"github.com/techoutlet/storefront-api/internal/infrastructure/blobstore"
	"github.com/techoutlet/storefront-api/internal/infrastructure/repository/localstore"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// Validation time pinned for deterministic expiry checks.
var testNow = func() time.Time {
	return time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
}

// Long enough that cancellation always beats the simulated delay.
const testLongDelay = time.Minute

func testTelemetry() (trace.Tracer, metric.Meter, *slog.Logger) {
	return tracenoop.NewTracerProvider().Tracer("test"),
		metricnoop.NewMeterProvider().Meter("test"),
		slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeCatalog is a fixed in-memory domain.CatalogRepository.
type fakeCatalog struct {
	products []domain.Product
}

func (f *fakeCatalog) FindAll(ctx context.Context) ([]domain.Product, error) {
	return f.products, nil
}

func (f *fakeCatalog) FindByName(ctx context.Context, name string) (domain.Product, int, error) {
	for i, p := range f.products {
		if p.Name == name {
			return p, i, nil
		}
	}
	return domain.Product{}, -1, domain.ErrProductNotFound
}

func demoCatalog() *fakeCatalog {
	return &fakeCatalog{products: []domain.Product{
		{Name: "Featured Phones", Price: 100, Description: "noise cancelling", Category: "audio"},
		{Name: "Plain Speaker", Price: 15, Description: "bluetooth speaker", Category: "audio"},
		{Name: "Desk Lamp", Price: 40, Description: "warm light", Category: "home"},
	}}
}

func newCartStore(t *testing.T) *localstore.CartStore {
	t.Helper()
	tracer, _, logger := testTelemetry()
	store, err := blobstore.New(t.TempDir(), logger)
	require.NoError(t, err)
	return localstore.NewCartStore(store, tracer, logger)
}

func newOrderRepo(t *testing.T) *localstore.OrderRepository {
	t.Helper()
	tracer, _, logger := testTelemetry()
	store, err := blobstore.New(t.TempDir(), logger)
	require.NoError(t, err)
	return localstore.NewOrderRepository(store, tracer, logger)
}
