package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/techoutlet/storefront-api/internal/app/dto"
	"github.com/techoutlet/storefront-api/internal/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// CatalogService serves the product listing with the discount policy applied.
type CatalogService struct {
	catalog       domain.CatalogRepository
	tracer        trace.Tracer
	logger        *slog.Logger
	searchCounter metric.Int64Counter
}

// NewCatalogService creates a new catalog service
func NewCatalogService(
	catalog domain.CatalogRepository,
	tracer trace.Tracer,
	meter metric.Meter,
	logger *slog.Logger,
) *CatalogService {
	searchCounter, _ := meter.Int64Counter(
		"catalog.searches",
		metric.WithDescription("Total number of filtered catalog listings"),
	)

	return &CatalogService{
		catalog:       catalog,
		tracer:        tracer,
		logger:        logger,
		searchCounter: searchCounter,
	}
}

// ListProducts returns the catalog with featured pricing applied, optionally
// filtered by the search query. The featured discount follows catalog
// position, so filtering never changes which product is discounted.
func (s *CatalogService) ListProducts(ctx context.Context, query string) ([]*dto.ProductResponse, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.ListProducts")
	defer span.End()

	products, err := s.catalog.FindAll(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to load catalog")
		s.logger.ErrorContext(ctx, "Failed to load catalog",
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	query = strings.TrimSpace(query)
	if query != "" {
		span.SetAttributes(attribute.String("catalog.query", query))
		s.searchCounter.Add(ctx, 1)
	}

	q := strings.ToLower(query)
	responses := make([]*dto.ProductResponse, 0, len(products))
	for i, p := range products {
		if q != "" && !matchesQuery(p, q) {
			continue
		}
		responses = append(responses, dto.ToProductResponse(domain.ApplyDiscountPolicy(p, i)))
	}

	span.SetAttributes(attribute.Int("product.count", len(responses)))
	return responses, nil
}

func matchesQuery(p domain.Product, q string) bool {
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(p.Category), q)
}

// GetProduct returns a single product with featured pricing applied.
func (s *CatalogService) GetProduct(ctx context.Context, name string) (*dto.ProductResponse, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.GetProduct")
	defer span.End()

	span.SetAttributes(attribute.String("product.name", name))

	product, position, err := s.catalog.FindByName(ctx, name)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Product not found")
		s.logger.WarnContext(ctx, "Product not found",
			slog.String("product_name", name),
		)
		return nil, err
	}

	return dto.ToProductResponse(domain.ApplyDiscountPolicy(product, position)), nil
}
