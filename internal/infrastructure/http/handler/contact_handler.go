package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/techoutlet/storefront-api/internal/app/dto"
	"github.com/techoutlet/storefront-api/internal/app/service"
	"github.com/techoutlet/storefront-api/internal/domain/validation"
	"github.com/techoutlet/storefront-api/internal/infrastructure/http/response"
)

// ContactHandler handles HTTP requests for the contact form
type ContactHandler struct {
	service *service.ContactService
	logger  *slog.Logger
}

// NewContactHandler creates a new contact handler
func NewContactHandler(service *service.ContactService, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{service: service, logger: logger}
}

// Submit handles POST /contact
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req dto.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to decode request body",
			slog.String("error", err.Error()),
		)
		response.Error(w, http.StatusBadRequest, err)
		return
	}

	ack, err := h.service.Submit(r.Context(), &req)
	if err != nil {
		var verr *validation.Errors
		if errors.As(err, &verr) {
			response.ValidationFailed(w, verr)
		} else {
			response.Error(w, http.StatusInternalServerError, err)
		}
		return
	}

	response.JSON(w, http.StatusOK, ack)
}
