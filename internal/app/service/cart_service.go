package service

import (
	"context"
	"log/slog"

	"github.com/techoutlet/storefront-api/internal/app/dto"
	"github.com/techoutlet/storefront-api/internal/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// CartService handles cart use cases. Every mutation loads the persisted
// cart, applies the change and saves the whole cart back.
type CartService struct {
	carts          domain.CartStore
	catalog        domain.CatalogRepository
	tracer         trace.Tracer
	logger         *slog.Logger
	itemsAdded     metric.Int64Counter
	cartOperations metric.Int64Counter
}

// NewCartService creates a new cart service
func NewCartService(
	carts domain.CartStore,
	catalog domain.CatalogRepository,
	tracer trace.Tracer,
	meter metric.Meter,
	logger *slog.Logger,
) *CartService {
	itemsAdded, _ := meter.Int64Counter(
		"cart.items.added",
		metric.WithDescription("Total number of items added to the cart"),
	)
	cartOperations, _ := meter.Int64Counter(
		"cart.operations",
		metric.WithDescription("Total number of cart operations"),
	)

	return &CartService{
		carts:          carts,
		catalog:        catalog,
		tracer:         tracer,
		logger:         logger,
		itemsAdded:     itemsAdded,
		cartOperations: cartOperations,
	}
}

func (s *CartService) recordOperation(ctx context.Context, op, result string) {
	s.cartOperations.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("operation", op),
			attribute.String("result", result),
		),
	)
}

// GetCart returns the persisted cart with totals.
func (s *CartService) GetCart(ctx context.Context) *dto.CartResponse {
	ctx, span := s.tracer.Start(ctx, "CartService.GetCart")
	defer span.End()

	cart := s.carts.Load(ctx)
	span.SetAttributes(attribute.Int("cart.lines", len(cart.Items)))
	return dto.ToCartResponse(cart)
}

// AddItem looks the product up in the catalog and adds it to the cart,
// snapshotting the featured-discounted price when the product is featured.
// An unknown product leaves the cart untouched.
func (s *CartService) AddItem(ctx context.Context, name string) (*dto.CartResponse, error) {
	ctx, span := s.tracer.Start(ctx, "CartService.AddItem")
	defer span.End()

	span.SetAttributes(attribute.String("product.name", name))

	product, position, err := s.catalog.FindByName(ctx, name)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Product not found")
		s.logger.WarnContext(ctx, "Cannot add unknown product to cart",
			slog.String("product_name", name),
		)
		s.recordOperation(ctx, "add", "not_found")
		return nil, err
	}

	cart := s.carts.Load(ctx)
	cart.Add(domain.ApplyDiscountPolicy(product, position))

	if err := s.carts.Save(ctx, cart); err != nil {
		s.recordOperation(ctx, "add", "failure")
		return nil, err
	}

	s.itemsAdded.Add(ctx, 1, metric.WithAttributes(attribute.String("product.name", name)))
	s.recordOperation(ctx, "add", "success")

	s.logger.InfoContext(ctx, "Item added to cart",
		slog.String("product_name", name),
		slog.Int("cart_lines", len(cart.Items)),
	)
	return dto.ToCartResponse(cart), nil
}

// UpdateQuantity sets a line's quantity; zero or less removes the line.
func (s *CartService) UpdateQuantity(ctx context.Context, name string, quantity int) (*dto.CartResponse, error) {
	ctx, span := s.tracer.Start(ctx, "CartService.UpdateQuantity")
	defer span.End()

	span.SetAttributes(
		attribute.String("product.name", name),
		attribute.Int("cart.quantity", quantity),
	)

	cart := s.carts.Load(ctx)
	if err := cart.SetQuantity(name, quantity); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Line item not found")
		s.recordOperation(ctx, "update", "not_found")
		return nil, err
	}

	if err := s.carts.Save(ctx, cart); err != nil {
		s.recordOperation(ctx, "update", "failure")
		return nil, err
	}

	s.recordOperation(ctx, "update", "success")
	return dto.ToCartResponse(cart), nil
}

// IncrementItem bumps a line's quantity by one.
func (s *CartService) IncrementItem(ctx context.Context, name string) (*dto.CartResponse, error) {
	return s.step(ctx, "CartService.IncrementItem", "increment", name, (*domain.Cart).Increment)
}

// DecrementItem lowers a line's quantity by one, removing the line at one.
func (s *CartService) DecrementItem(ctx context.Context, name string) (*dto.CartResponse, error) {
	return s.step(ctx, "CartService.DecrementItem", "decrement", name, (*domain.Cart).Decrement)
}

func (s *CartService) step(
	ctx context.Context,
	spanName, op, name string,
	mutate func(*domain.Cart, string) error,
) (*dto.CartResponse, error) {
	ctx, span := s.tracer.Start(ctx, spanName)
	defer span.End()

	span.SetAttributes(attribute.String("product.name", name))

	cart := s.carts.Load(ctx)
	if err := mutate(cart, name); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Line item not found")
		s.recordOperation(ctx, op, "not_found")
		return nil, err
	}

	if err := s.carts.Save(ctx, cart); err != nil {
		s.recordOperation(ctx, op, "failure")
		return nil, err
	}

	s.recordOperation(ctx, op, "success")
	return dto.ToCartResponse(cart), nil
}

// RemoveItem deletes a line. Removing an absent line succeeds.
func (s *CartService) RemoveItem(ctx context.Context, name string) (*dto.CartResponse, error) {
	ctx, span := s.tracer.Start(ctx, "CartService.RemoveItem")
	defer span.End()

	span.SetAttributes(attribute.String("product.name", name))

	cart := s.carts.Load(ctx)
	cart.Remove(name)

	if err := s.carts.Save(ctx, cart); err != nil {
		s.recordOperation(ctx, "remove", "failure")
		return nil, err
	}

	s.recordOperation(ctx, "remove", "success")
	return dto.ToCartResponse(cart), nil
}

// ClearCart empties the cart and deletes its storage key.
func (s *CartService) ClearCart(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "CartService.ClearCart")
	defer span.End()

	if err := s.carts.Clear(ctx); err != nil {
		s.recordOperation(ctx, "clear", "failure")
		return err
	}

	s.recordOperation(ctx, "clear", "success")
	s.logger.InfoContext(ctx, "Cart cleared")
	return nil
}
