package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/wanderplan/wanderplan/internal/domain"
	"github.com/wanderplan/wanderplan/internal/middleware"
)

// errorDetail is the machine-readable part of every error response.
type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errorBody is the envelope for all non-2xx responses. RedirectTo is set only
// for auth failures, pointing the client at the sign-in screen.
type errorBody struct {
	Error      errorDetail `json:"error"`
	RedirectTo string      `json:"redirect_to,omitempty"`
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("handler: encode response", "error", err)
	}
}

// writeError maps a service error onto the flat error taxonomy:
// validation failures are 422, missing records 404, lost sessions 401 with a
// redirect, and everything else (Supabase or the recommendation function
// misbehaving) a 502 whose body carries the upstream message unchanged.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusUnprocessableEntity, errorBody{
			Error: errorDetail{Code: "validation_error", Message: unwrapMessage(err)},
		})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{
			Error: errorDetail{Code: "not_found", Message: unwrapMessage(err)},
		})
	case errors.Is(err, domain.ErrAuthRequired):
		writeJSON(w, http.StatusUnauthorized, errorBody{
			Error:      errorDetail{Code: "auth_required", Message: "authentication required"},
			RedirectTo: middleware.AuthPath,
		})
	default:
		slog.Error("handler: upstream failure", "error", err)
		writeJSON(w, http.StatusBadGateway, errorBody{
			Error: errorDetail{Code: "upstream_error", Message: unwrapMessage(err)},
		})
	}
}

// writeRequestError rejects a request before it reaches the service layer,
// e.g. a malformed body or an unparseable path parameter.
func writeRequestError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusUnprocessableEntity, errorBody{
		Error: errorDetail{Code: "validation_error", Message: message},
	})
}

// unwrapMessage strips the operation prefixes the service and store layers
// add when wrapping errors, leaving the upstream message intact.
// e.g. "service.TripService.Create: validation error: destination is required"
// becomes "destination is required".
//
// Only leading "pkg.Type.Method: " tokens are removed. The remainder passes
// through whole, colons and all, so a Postgres or edge-function message is
// never truncated.
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for {
		i := strings.Index(msg, ": ")
		if i < 0 {
			break
		}
		token := msg[:i]
		if strings.ContainsRune(token, ' ') || !strings.ContainsRune(token, '.') {
			break
		}
		msg = msg[i+2:]
	}
	for _, sentinel := range []string{
		domain.ErrValidation.Error() + ": ",
		domain.ErrNotFound.Error() + ": ",
	} {
		msg = strings.TrimPrefix(msg, sentinel)
	}
	return msg
}
