package response

import (
	"encoding/json"
	"net/http"

	"github.com/techoutlet/storefront-api/internal/domain/validation"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// JSON sends a JSON response
func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// Error sends an error response
func Error(w http.ResponseWriter, status int, err error) {
	errorType := "error"
	switch status {
	case http.StatusNotFound:
		errorType = "not_found"
	case http.StatusBadRequest:
		errorType = "bad_request"
	case http.StatusConflict:
		errorType = "conflict"
	case http.StatusInternalServerError:
		errorType = "internal_server_error"
	}

	JSON(w, status, ErrorResponse{
		Error:   errorType,
		Message: err.Error(),
	})
}

// ValidationFailed sends the per-field failure map of an all-fields
// validation pass.
func ValidationFailed(w http.ResponseWriter, verr *validation.Errors) {
	JSON(w, http.StatusUnprocessableEntity, ErrorResponse{
		Error:   "validation_failed",
		Message: "Please correct the highlighted fields",
		Fields:  verr.Fields,
	})
}

// Blocked sends a distinctly-typed blocking error, such as the empty-cart
// message at checkout.
func Blocked(w http.ResponseWriter, errorType string, err error) {
	JSON(w, http.StatusConflict, ErrorResponse{
		Error:   errorType,
		Message: err.Error(),
	})
}
