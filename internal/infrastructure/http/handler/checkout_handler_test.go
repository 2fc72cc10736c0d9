package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techoutlet/storefront-api/internal/app/service"
	"github.com/techoutlet/storefront-api/internal/domain"
	"github.com/techoutlet/storefront-api/internal/infrastructure/blobstore"
	"github.com/techoutlet/storefront-api/internal/infrastructure/http/response"
	"github.com/techoutlet/storefront-api/internal/infrastructure/repository/localstore"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

type stubCatalog struct{}

func (stubCatalog) FindAll(ctx context.Context) ([]domain.Product, error) {
	return []domain.Product{{Name: "Widget", Price: 20}}, nil
}

func (stubCatalog) FindByName(ctx context.Context, name string) (domain.Product, int, error) {
	if name == "Widget" {
		return domain.Product{Name: "Widget", Price: 20}, 1, nil
	}
	return domain.Product{}, -1, domain.ErrProductNotFound
}

func newCheckoutHandler(t *testing.T) (*CheckoutHandler, *service.CartService) {
	t.Helper()
	tracer := tracenoop.NewTracerProvider().Tracer("test")
	meter := metricnoop.NewMeterProvider().Meter("test")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store, err := blobstore.New(t.TempDir(), logger)
	require.NoError(t, err)
	cartStore := localstore.NewCartStore(store, tracer, logger)
	orderRepo := localstore.NewOrderRepository(store, tracer, logger)

	now := func() time.Time { return time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC) }
	checkoutSvc := service.NewCheckoutService(cartStore, orderRepo, 0, now, tracer, meter, logger)
	cartSvc := service.NewCartService(cartStore, stubCatalog{}, tracer, meter, logger)

	return NewCheckoutHandler(checkoutSvc, logger), cartSvc
}

const validCheckoutBody = `{
	"name": "Alex Chen",
	"email": "alex@example.com",
	"mobile": "0412 345 678",
	"address": "1 Example Street",
	"city": "Sydney",
	"state": "NSW",
	"postcode": "2000",
	"cardNumber": "4111 1111 1111 1111",
	"expiryDate": "03/26",
	"cvv": "123",
	"cardName": "Alex Chen",
	"shippingMethod": "standard"
}`

func TestPlaceOrderEmptyCartReturnsDistinctError(t *testing.T) {
	h, _ := newCheckoutHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(validCheckoutBody))
	rec := httptest.NewRecorder()
	h.PlaceOrder(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "cart_empty", body.Error)
	assert.Empty(t, body.Fields)
}

func TestPlaceOrderValidationErrorsCarryFieldMap(t *testing.T) {
	h, cartSvc := newCheckoutHandler(t)
	_, err := cartSvc.AddItem(context.Background(), "Widget")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(`{"email":"nope"}`))
	rec := httptest.NewRecorder()
	h.PlaceOrder(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "validation_failed", body.Error)
	assert.Contains(t, body.Fields, "email")
	assert.Contains(t, body.Fields, "cardNumber")
}

func TestPlaceOrderSuccess(t *testing.T) {
	h, cartSvc := newCheckoutHandler(t)
	_, err := cartSvc.AddItem(context.Background(), "Widget")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(validCheckoutBody))
	rec := httptest.NewRecorder()
	h.PlaceOrder(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		OrderNumber string  `json:"orderNumber"`
		Total       float64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Regexp(t, `^TO\d{8}$`, body.OrderNumber)
	assert.Equal(t, 30.00, body.Total)
}

func TestPlaceOrderMalformedBody(t *testing.T) {
	h, _ := newCheckoutHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader("{nope"))
	rec := httptest.NewRecorder()
	h.PlaceOrder(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
