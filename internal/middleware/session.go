package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/wanderplan/wanderplan/internal/auth"
	"github.com/wanderplan/wanderplan/internal/domain"
)

// AuthPath is the client-side route unauthenticated visitors are sent to.
const AuthPath = "/auth"

// SessionVerifier turns a bearer token into a session. Implemented by
// auth.Verifier; defined here so guard tests can inject a stub.
type SessionVerifier interface {
	Verify(token string) (domain.Session, error)
}

// NewSessionGuard returns a middleware that requires a valid session on every
// request it wraps. The session and the raw access token are placed in the
// request context for handlers to use.
//
// A missing, malformed, expired, or otherwise invalid token is not
// distinguished by kind: the response is always 401 with redirect_to set to
// the auth screen, and the wrapped handler never runs, so no data fetch can
// happen without a session.
func NewSessionGuard(verifier SessionVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				writeAuthRequired(w)
				return
			}

			sess, err := verifier.Verify(token)
			if err != nil {
				writeAuthRequired(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.NewContext(r.Context(), sess, token)))
		})
	}
}

// bearerToken extracts the token from an "Authorization: Bearer x" header.
// Returns "" when the header is absent or not a bearer scheme.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

func writeAuthRequired(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]string{
			"code":    "auth_required",
			"message": "authentication required",
		},
		"redirect_to": AuthPath,
	})
}
