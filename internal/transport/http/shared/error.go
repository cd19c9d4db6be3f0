package shared

import (
	"errors"
	"net/http"

	"mergington/internal/transport/http/shared/json"
	dErrors "mergington/pkg/domain-errors"
)

// ErrorResponse is the error envelope of the API: a single human-readable
// detail string.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// WriteError centralizes domain error translation to HTTP responses.
// It translates transport-agnostic domain errors into HTTP status codes and
// the detail envelope.
func WriteError(w http.ResponseWriter, err error) {
	var domainErr *dErrors.Error
	if errors.As(err, &domainErr) {
		json.WriteJSON(w, DomainCodeToHTTPStatus(domainErr.Code), ErrorResponse{
			Detail: domainErr.Error(),
		})
		return
	}

	// Fallback for unexpected errors
	json.WriteJSON(w, http.StatusInternalServerError, ErrorResponse{
		Detail: "internal server error",
	})
}

// DomainCodeToHTTPStatus translates domain error codes to HTTP status codes.
// Signing up an already-registered participant is a 400 state conflict;
// unregistering an absent participant is a 404, matching the absence of the
// named roster entry.
func DomainCodeToHTTPStatus(code dErrors.Code) int {
	switch code {
	case dErrors.CodeNotFound, dErrors.CodeNotRegistered:
		return http.StatusNotFound
	case dErrors.CodeAlreadyRegistered, dErrors.CodeBadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
