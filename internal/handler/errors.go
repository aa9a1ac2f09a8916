package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/creekriver/campground/internal/domain"
)

// errorResponse is the uniform error body for every non-2xx response.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON serializes v as the response body with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// notFound writes a 404 with the supplied human-readable message.
// The handler is the layer that knows what was being looked up
// (e.g. "campsite not found").
func notFound(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusNotFound, errorResponse{Error: errorDetail{Code: "not_found", Message: message}})
}

// conflict writes a 409 for availability conflicts and in-use deletions.
func conflict(w http.ResponseWriter, code, message string) {
	writeJSON(w, http.StatusConflict, errorResponse{Error: errorDetail{Code: code, Message: message}})
}

// unprocessable writes a 422 for a request rejected before reaching the
// service layer (e.g. missing body, malformed UUID or date).
func unprocessable(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: errorDetail{Code: "validation_error", Message: message}})
}

// validationFailed writes a 422 for a domain validation failure, extracting
// the human-readable reason from the wrapped sentinel error.
func validationFailed(w http.ResponseWriter, err error) {
	unprocessable(w, reasonOf(err))
}

// internalError logs the unexpected error and writes an opaque 500.
// Persistence faults land here; their details never reach the client.
func internalError(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "request failed", "error", err, "path", r.URL.Path)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: errorDetail{Code: "internal_error", Message: "internal server error"}})
}

// reasonOf extracts the human-readable part from a wrapped sentinel error.
// Domain errors are built as "<sentinel>: <reason>" and then wrapped with
// "layer.Type.Op:" prefixes on the way up, so the reason is whatever follows
// the last sentinel marker in the chain.
// e.g. "service.CampsiteService.Create: validation error: nickname is required"
// → "nickname is required".
func reasonOf(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, marker := range []string{
		"validation error: ",
		"invalid date range: ",
	} {
		if i := strings.Index(msg, marker); i >= 0 {
			return msg[i+len(marker):]
		}
	}
	return msg
}

// isStayTooLong unwraps err to the typed stay-length error, when present.
func isStayTooLong(err error) (*domain.StayTooLongError, bool) {
	var stayErr *domain.StayTooLongError
	if errors.As(err, &stayErr) {
		return stayErr, true
	}
	return nil, false
}

// isUnavailable unwraps err to the typed availability-conflict error. A bare
// domain.ErrCampsiteUnavailable (no typed payload) still reports true with a
// nil payload, covering conflicts detected by the storage constraint.
func isUnavailable(err error) (*domain.UnavailableError, bool) {
	var unavailErr *domain.UnavailableError
	if errors.As(err, &unavailErr) {
		return unavailErr, true
	}
	if errors.Is(err, domain.ErrCampsiteUnavailable) {
		return nil, true
	}
	return nil, false
}
