package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/soham999a/spaceship/internal/domain"
)

// ErrorResponse is the uniform error body for every non-2xx JSON response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries the machine-readable code, a human-readable message,
// and, for validation failures, the per-field messages the UI renders inline.
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// writeJSON encodes v with the given status. Encoding failures are logged;
// by then the status line is already on the wire.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// writeNotFound writes a 404 with the handler-supplied message — the handler
// is the layer that knows what was being looked up.
func writeNotFound(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusNotFound, ErrorResponse{
		Error: ErrorDetail{Code: "not_found", Message: message},
	})
}

// writeBadRequest writes a 400 for requests rejected before reaching the
// service layer (missing or malformed body).
func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{
		Error: ErrorDetail{Code: "bad_request", Message: message},
	})
}

// writeValidation writes a 422 carrying the field map extracted from a
// wrapped domain.FieldErrors.
func writeValidation(w http.ResponseWriter, err error) {
	detail := ErrorDetail{Code: "validation_error", Message: unwrapMessage(err)}
	var fields domain.FieldErrors
	if errors.As(err, &fields) {
		detail.Fields = fields
	}
	writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: detail})
}

// writeError maps a service error onto the right HTTP response.
// Unknown errors become a 500 with no internal detail leaked.
func writeError(w http.ResponseWriter, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeNotFound(w, notFoundMessage)
	case errors.Is(err, domain.ErrValidation):
		writeValidation(w, err)
	default:
		slog.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error: ErrorDetail{Code: "internal_error", Message: "internal server error"},
		})
	}
}

// unwrapMessage strips the "layer.Type.Method: " wrapping prefixes from a
// service error, leaving the human-readable part.
// e.g. "service.BookingService.Confirm: validation error: email: Email is invalid"
// → "validation error: email: Email is invalid".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if idx := strings.Index(msg, "validation error:"); idx > 0 {
		return msg[idx:]
	}
	return msg
}
