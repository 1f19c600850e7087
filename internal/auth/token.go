// Package auth implements session handling for the Wanderplan API: local
// verification of Supabase access tokens, the GoTrue-backed sign-in/sign-out
// surface, and the auth state notifier.
package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/wanderplan/wanderplan/internal/domain"
)

// supabaseAudience is the audience GoTrue stamps into every user access token.
const supabaseAudience = "authenticated"

// Verifier validates Supabase access tokens locally using the project's JWT
// secret (HS256), avoiding a GoTrue round trip on every guarded request.
type Verifier struct {
	secret []byte
}

// NewVerifier constructs a Verifier for the given project JWT secret.
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// accessClaims is the subset of Supabase JWT claims the guard cares about.
type accessClaims struct {
	jwt.RegisteredClaims
	Email        string         `json:"email"`
	UserMetadata map[string]any `json:"user_metadata"`
}

// Verify checks signature, expiry, and audience, and returns the session the
// token represents. Every failure kind collapses into domain.ErrAuthRequired;
// callers redirect to the auth screen without distinguishing why.
func (v *Verifier) Verify(token string) (domain.Session, error) {
	var claims accessClaims
	_, err := jwt.ParseWithClaims(token, &claims,
		func(*jwt.Token) (any, error) { return v.secret, nil },
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithAudience(supabaseAudience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return domain.Session{}, fmt.Errorf("auth.Verifier.Verify: %v: %w", err, domain.ErrAuthRequired)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return domain.Session{}, fmt.Errorf("auth.Verifier.Verify: subject is not a user id: %w", domain.ErrAuthRequired)
	}

	return domain.Session{
		UserID: userID,
		Email:  claims.Email,
		Name:   metadataName(claims.UserMetadata),
	}, nil
}

// metadataName extracts the display name from GoTrue user metadata.
func metadataName(md map[string]any) string {
	if name, ok := md["name"].(string); ok {
		return name
	}
	return ""
}
