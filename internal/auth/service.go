package auth

import (
	"context"
	"fmt"

	"github.com/supabase-community/gotrue-go/types"

	"github.com/wanderplan/wanderplan/internal/domain"
)

// Service implements the sign-in/sign-up/sign-out/refresh flows against
// GoTrue and announces every state transition through the Notifier.
//
// The ctx parameter on each method keeps call sites uniform with the rest of
// the codebase; the GoTrue client manages its own HTTP lifecycle.
type Service struct {
	api      API
	notifier *Notifier
}

// NewService constructs a Service backed by the provided GoTrue API.
func NewService(api API, notifier *Notifier) *Service {
	return &Service{api: api, notifier: notifier}
}

// SignIn exchanges credentials for a session and emits EventSignedIn.
func (s *Service) SignIn(_ context.Context, email, password string) (domain.AuthSession, error) {
	resp, err := s.api.SignIn(email, password)
	if err != nil {
		return domain.AuthSession{}, fmt.Errorf("auth.Service.SignIn: %w", err)
	}

	sess := toAuthSession(resp)
	s.notifier.Emit(EventSignedIn, sess.User)
	return sess, nil
}

// SignUp registers a new user, attaching the display name as user metadata,
// then signs the user straight in so the client lands with a usable session.
func (s *Service) SignUp(ctx context.Context, email, password, name string) (domain.AuthSession, error) {
	metadata := map[string]interface{}{}
	if name != "" {
		metadata["name"] = name
	}

	if err := s.api.SignUp(email, password, metadata); err != nil {
		return domain.AuthSession{}, fmt.Errorf("auth.Service.SignUp: %w", err)
	}
	return s.SignIn(ctx, email, password)
}

// SignOut revokes the session behind accessToken and emits EventSignedOut.
// Callers redirect to the auth screen whether or not this returns an error;
// the error only changes the message they show.
func (s *Service) SignOut(_ context.Context, sess domain.Session, accessToken string) error {
	if err := s.api.SignOut(accessToken); err != nil {
		return fmt.Errorf("auth.Service.SignOut: %w", err)
	}
	s.notifier.Emit(EventSignedOut, sess)
	return nil
}

// Refresh exchanges a refresh token for a new session and emits
// EventTokenRefreshed.
func (s *Service) Refresh(_ context.Context, refreshToken string) (domain.AuthSession, error) {
	resp, err := s.api.Refresh(refreshToken)
	if err != nil {
		return domain.AuthSession{}, fmt.Errorf("auth.Service.Refresh: %w", err)
	}

	sess := toAuthSession(resp)
	s.notifier.Emit(EventTokenRefreshed, sess.User)
	return sess, nil
}

// CurrentUser fetches the user record behind accessToken from GoTrue.
// Any failure means "no session" as far as callers are concerned.
func (s *Service) CurrentUser(_ context.Context, accessToken string) (domain.Session, error) {
	resp, err := s.api.GetUser(accessToken)
	if err != nil {
		return domain.Session{}, fmt.Errorf("auth.Service.CurrentUser: %v: %w", err, domain.ErrAuthRequired)
	}
	return domain.Session{
		UserID: resp.ID,
		Email:  resp.Email,
		Name:   metadataName(resp.UserMetadata),
	}, nil
}

func toAuthSession(resp *types.TokenResponse) domain.AuthSession {
	return domain.AuthSession{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresIn:    resp.ExpiresIn,
		User: domain.Session{
			UserID: resp.User.ID,
			Email:  resp.User.Email,
			Name:   metadataName(resp.User.UserMetadata),
		},
	}
}
