package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/techoutlet/storefront-api/internal/app/dto"
	"github.com/techoutlet/storefront-api/internal/app/service"
	"github.com/techoutlet/storefront-api/internal/domain"
	"github.com/techoutlet/storefront-api/internal/infrastructure/http/response"
)

// CartHandler handles HTTP requests for the cart
type CartHandler struct {
	service *service.CartService
	logger  *slog.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(service *service.CartService, logger *slog.Logger) *CartHandler {
	return &CartHandler{service: service, logger: logger}
}

func (h *CartHandler) respond(w http.ResponseWriter, cart *dto.CartResponse, err error) {
	switch err {
	case nil:
		response.JSON(w, http.StatusOK, cart)
	case domain.ErrProductNotFound, domain.ErrLineItemNotFound:
		response.Error(w, http.StatusNotFound, err)
	default:
		response.Error(w, http.StatusInternalServerError, err)
	}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.service.GetCart(r.Context()))
}

// AddItem handles POST /cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req dto.AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to decode request body",
			slog.String("error", err.Error()),
		)
		response.Error(w, http.StatusBadRequest, err)
		return
	}

	cart, err := h.service.AddItem(r.Context(), req.Name)
	h.respond(w, cart, err)
}

// UpdateQuantity handles PUT /cart/items/{name}
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, err)
		return
	}

	cart, err := h.service.UpdateQuantity(r.Context(), chi.URLParam(r, "name"), req.Quantity)
	h.respond(w, cart, err)
}

// IncrementItem handles POST /cart/items/{name}/increment
func (h *CartHandler) IncrementItem(w http.ResponseWriter, r *http.Request) {
	cart, err := h.service.IncrementItem(r.Context(), chi.URLParam(r, "name"))
	h.respond(w, cart, err)
}

// DecrementItem handles POST /cart/items/{name}/decrement
func (h *CartHandler) DecrementItem(w http.ResponseWriter, r *http.Request) {
	cart, err := h.service.DecrementItem(r.Context(), chi.URLParam(r, "name"))
	h.respond(w, cart, err)
}

// RemoveItem handles DELETE /cart/items/{name}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	cart, err := h.service.RemoveItem(r.Context(), chi.URLParam(r, "name"))
	h.respond(w, cart, err)
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ClearCart(r.Context()); err != nil {
		response.Error(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
