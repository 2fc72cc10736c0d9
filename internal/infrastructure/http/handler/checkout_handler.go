package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/techoutlet/storefront-api/internal/app/dto"
	"github.com/techoutlet/storefront-api/internal/app/service"
	"github.com/techoutlet/storefront-api/internal/domain"
	"github.com/techoutlet/storefront-api/internal/domain/validation"
	"github.com/techoutlet/storefront-api/internal/infrastructure/http/response"
)

// CheckoutHandler handles HTTP requests for checkout and order history
type CheckoutHandler struct {
	service *service.CheckoutService
	logger  *slog.Logger
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(service *service.CheckoutService, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{service: service, logger: logger}
}

// PlaceOrder handles POST /checkout. The empty-cart block is reported with
// its own error type, distinct from field-validation failures.
func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req dto.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to decode request body",
			slog.String("error", err.Error()),
		)
		response.Error(w, http.StatusBadRequest, err)
		return
	}

	order, err := h.service.PlaceOrder(r.Context(), &req)
	if err != nil {
		var verr *validation.Errors
		switch {
		case errors.Is(err, domain.ErrCartEmpty):
			response.Blocked(w, "cart_empty", err)
		case errors.Is(err, domain.ErrCheckoutInProgress):
			response.Blocked(w, "checkout_in_progress", err)
		case errors.As(err, &verr):
			response.ValidationFailed(w, verr)
		default:
			response.Error(w, http.StatusInternalServerError, err)
		}
		return
	}

	response.JSON(w, http.StatusCreated, order)
}

// ListOrders handles GET /orders
func (h *CheckoutHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListOrders(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, err)
		return
	}

	response.JSON(w, http.StatusOK, orders)
}
