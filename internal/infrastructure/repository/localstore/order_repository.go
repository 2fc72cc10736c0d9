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

const ordersKey = "orders"

// OrderRepository keeps local order history as a single JSON array blob. A
// shape mismatch on read is treated as an empty history.
type OrderRepository struct {
	store  *blobstore.Store
	tracer trace.Tracer
	logger *slog.Logger
}

// NewOrderRepository creates an order repository over the given blob store.
func NewOrderRepository(store *blobstore.Store, tracer trace.Tracer, logger *slog.Logger) *OrderRepository {
	return &OrderRepository{store: store, tracer: tracer, logger: logger}
}

// Append adds an order to the history and overwrites the blob.
func (r *OrderRepository) Append(ctx context.Context, order *domain.Order) error {
	ctx, span := r.tracer.Start(ctx, "OrderRepository.Append")
	defer span.End()

	span.SetAttributes(attribute.String("order.number", order.OrderNumber))

	var orders []domain.Order
	r.store.Read(ordersKey, &orders)
	orders = append(orders, *order)

	if err := r.store.Write(ordersKey, orders); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to persist order history")
		r.logger.ErrorContext(ctx, "Failed to persist order history",
			slog.String("order_number", order.OrderNumber),
			slog.String("error", err.Error()),
		)
		return err
	}

	r.logger.InfoContext(ctx, "Order appended to history",
		slog.String("order_number", order.OrderNumber),
	)
	return nil
}

// FindAll returns the order history, oldest first.
func (r *OrderRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	_, span := r.tracer.Start(ctx, "OrderRepository.FindAll")
	defer span.End()

	var orders []domain.Order
	r.store.Read(ordersKey, &orders)

	span.SetAttributes(attribute.Int("order.count", len(orders)))
	return orders, nil
}
