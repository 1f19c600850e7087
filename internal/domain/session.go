package domain

import "github.com/google/uuid"

// Session identifies the authenticated user behind a request.
// It is derived from a verified Supabase access token (or a GoTrue user
// lookup) and is observed, never mutated, by handlers.
type Session struct {
	UserID uuid.UUID `json:"id"`
	Email  string    `json:"email"`
	Name   string    `json:"name,omitempty"` // from user_metadata; may be empty
}

// AuthSession is the full token bundle returned by sign-in and refresh.
// The client presents AccessToken as a bearer token on every guarded call
// and exchanges RefreshToken when it expires.
type AuthSession struct {
	AccessToken  string  `json:"access_token"`
	RefreshToken string  `json:"refresh_token"`
	ExpiresIn    int     `json:"expires_in"` // seconds until AccessToken expires
	User         Session `json:"user"`
}
