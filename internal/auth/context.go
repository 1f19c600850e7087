package auth

import (
	"context"

	"github.com/wanderplan/wanderplan/internal/domain"
)

type ctxKey int

const (
	sessionKey ctxKey = iota
	tokenKey
)

// NewContext returns ctx carrying the verified session and the raw access
// token it was derived from. The token travels alongside the session because
// downstream calls to GoTrue and the recommendation function present it as
// their own bearer credential.
func NewContext(ctx context.Context, s domain.Session, token string) context.Context {
	ctx = context.WithValue(ctx, sessionKey, s)
	return context.WithValue(ctx, tokenKey, token)
}

// SessionFromContext returns the session stored by the guard middleware.
func SessionFromContext(ctx context.Context) (domain.Session, bool) {
	s, ok := ctx.Value(sessionKey).(domain.Session)
	return s, ok
}

// TokenFromContext returns the raw access token stored by the guard middleware.
func TokenFromContext(ctx context.Context) (string, bool) {
	t, ok := ctx.Value(tokenKey).(string)
	return t, ok
}
