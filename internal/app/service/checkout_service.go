package service

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/techoutlet/storefront-api/internal/app/dto"
	"github.com/techoutlet/storefront-api/internal/domain"
	"github.com/techoutlet/storefront-api/internal/domain/validation"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// CheckoutService runs the simulated checkout: empty-cart gate, all-fields
// validation, a fake payment delay, then order creation and cart clearing.
type CheckoutService struct {
	carts        domain.CartStore
	orders       domain.OrderRepository
	rules        validation.RuleSet
	delay        time.Duration
	now          func() time.Time
	processing   atomic.Bool
	tracer       trace.Tracer
	logger       *slog.Logger
	ordersPlaced metric.Int64Counter
	attempts     metric.Int64Counter
}

// NewCheckoutService creates a new checkout service. now is injectable for
// tests; nil means the wall clock.
func NewCheckoutService(
	carts domain.CartStore,
	orders domain.OrderRepository,
	delay time.Duration,
	now func() time.Time,
	tracer trace.Tracer,
	meter metric.Meter,
	logger *slog.Logger,
) *CheckoutService {
	if now == nil {
		now = time.Now
	}

	ordersPlaced, _ := meter.Int64Counter(
		"orders.placed",
		metric.WithDescription("Total number of orders placed"),
	)
	attempts, _ := meter.Int64Counter(
		"checkout.attempts",
		metric.WithDescription("Total number of checkout attempts"),
	)

	return &CheckoutService{
		carts:        carts,
		orders:       orders,
		rules:        validation.CheckoutRules(now),
		delay:        delay,
		now:          now,
		tracer:       tracer,
		logger:       logger,
		ordersPlaced: ordersPlaced,
		attempts:     attempts,
	}
}

func (s *CheckoutService) recordAttempt(ctx context.Context, result string) {
	s.attempts.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
}

// PlaceOrder processes a checkout submission. The empty-cart check runs
// before field validation and fails with a distinct error, so an invalid form
// over an empty cart still reports the empty cart. One submission at a time.
func (s *CheckoutService) PlaceOrder(ctx context.Context, req *dto.CheckoutRequest) (*dto.OrderResponse, error) {
	ctx, span := s.tracer.Start(ctx, "CheckoutService.PlaceOrder")
	defer span.End()

	if !s.processing.CompareAndSwap(false, true) {
		span.SetStatus(codes.Error, "Checkout already in progress")
		s.recordAttempt(ctx, "in_progress")
		return nil, domain.ErrCheckoutInProgress
	}
	defer s.processing.Store(false)

	cart := s.carts.Load(ctx)
	if cart.IsEmpty() {
		span.SetStatus(codes.Error, "Cart is empty")
		s.logger.WarnContext(ctx, "Checkout attempted with empty cart")
		s.recordAttempt(ctx, "empty_cart")
		return nil, domain.ErrCartEmpty
	}

	if err := validation.Check(s.rules, req.Fields()); err != nil {
		span.SetStatus(codes.Error, "Validation failed")
		s.logger.WarnContext(ctx, "Checkout validation failed",
			slog.Int("failed_fields", len(err.(*validation.Errors).Fields)),
		)
		s.recordAttempt(ctx, "invalid")
		return nil, err
	}

	// Simulated payment-provider round-trip. Cancellable, unlike a real
	// charge would be.
	select {
	case <-time.After(s.delay):
	case <-ctx.Done():
		s.recordAttempt(ctx, "cancelled")
		return nil, ctx.Err()
	}

	order := domain.NewOrder(cart, req.CustomerInfo(), s.now())
	span.SetAttributes(
		attribute.String("order.number", order.OrderNumber),
		attribute.Float64("order.total", order.Total),
	)

	if err := s.orders.Append(ctx, order); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to record order")
		s.recordAttempt(ctx, "failure")
		return nil, err
	}

	if err := s.carts.Clear(ctx); err != nil {
		// The order stands; an uncleared cart is logged, not fatal.
		s.logger.ErrorContext(ctx, "Failed to clear cart after checkout",
			slog.String("order_number", order.OrderNumber),
			slog.String("error", err.Error()),
		)
	}

	s.ordersPlaced.Add(ctx, 1)
	s.recordAttempt(ctx, "success")

	s.logger.InfoContext(ctx, "Order placed",
		slog.String("order_number", order.OrderNumber),
		slog.Float64("total", order.Total),
		slog.Int("lines", len(order.Items)),
	)

	span.SetStatus(codes.Ok, "Order placed")
	return dto.ToOrderResponse(order), nil
}

// ListOrders returns local order history.
func (s *CheckoutService) ListOrders(ctx context.Context) ([]*dto.OrderResponse, error) {
	ctx, span := s.tracer.Start(ctx, "CheckoutService.ListOrders")
	defer span.End()

	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to load order history")
		return nil, err
	}

	span.SetAttributes(attribute.Int("order.count", len(orders)))
	return dto.ToOrderResponseList(orders), nil
}
