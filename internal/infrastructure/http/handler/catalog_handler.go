package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/techoutlet/storefront-api/internal/app/service"
	"github.com/techoutlet/storefront-api/internal/domain"
	"github.com/techoutlet/storefront-api/internal/infrastructure/http/response"
)

// CatalogHandler handles HTTP requests for the product catalog
type CatalogHandler struct {
	service *service.CatalogService
	logger  *slog.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(service *service.CatalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{service: service, logger: logger}
}

// ListProducts handles GET /products. The q query parameter applies the
// search filter; absence means unfiltered.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListProducts(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		response.Error(w, http.StatusInternalServerError, err)
		return
	}

	response.JSON(w, http.StatusOK, products)
}

// GetProduct handles GET /products/{name}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	product, err := h.service.GetProduct(r.Context(), name)
	if err != nil {
		if err == domain.ErrProductNotFound {
			response.Error(w, http.StatusNotFound, err)
		} else {
			response.Error(w, http.StatusInternalServerError, err)
		}
		return
	}

	response.JSON(w, http.StatusOK, product)
}
