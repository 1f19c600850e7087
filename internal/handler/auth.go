package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/wanderplan/wanderplan/internal/auth"
	"github.com/wanderplan/wanderplan/internal/domain"
	"github.com/wanderplan/wanderplan/internal/middleware"
)

type signUpRequest struct {
	Email    openapi_types.Email `json:"email" validate:"required,email"`
	Password string              `json:"password" validate:"required,min=6"`
	Name     string              `json:"name" validate:"required"`
}

type signInRequest struct {
	Email    openapi_types.Email `json:"email" validate:"required,email"`
	Password string              `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// signOutResponse is returned by SignOut regardless of outcome: the client
// always drops its session and navigates to the auth screen.
type signOutResponse struct {
	Message    string `json:"message"`
	RedirectTo string `json:"redirect_to"`
}

// SignUp handles POST /auth/signup. A successful registration signs the new
// account in immediately and returns the same token bundle as SignIn.
func (s *Server) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRequestError(w, "invalid request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeRequestError(w, "email, password (6+ characters), and name are required")
		return
	}

	sess, err := s.auth.SignUp(r.Context(), string(req.Email), req.Password, req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sess)
}

// SignIn handles POST /auth/signin.
func (s *Server) SignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRequestError(w, "invalid request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeRequestError(w, "email and password are required")
		return
	}

	sess, err := s.auth.SignIn(r.Context(), string(req.Email), req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

// Refresh handles POST /auth/refresh, exchanging a refresh token for a new
// token bundle.
func (s *Server) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRequestError(w, "invalid request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeRequestError(w, "refresh_token is required")
		return
	}

	sess, err := s.auth.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

// GetSession handles GET /auth/session. The guard already verified the token
// locally; this asks GoTrue for the user record behind it, so a revoked
// session is caught even before the token expires.
func (s *Server) GetSession(w http.ResponseWriter, r *http.Request) {
	token, ok := auth.TokenFromContext(r.Context())
	if !ok {
		writeError(w, domain.ErrAuthRequired)
		return
	}

	sess, err := s.auth.CurrentUser(r.Context(), token)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

// SignOut handles POST /auth/signout. The response is 200 with a redirect to
// the auth screen whether or not Supabase accepted the revocation; a failure
// only changes the message, since the client discards its tokens either way.
func (s *Server) SignOut(w http.ResponseWriter, r *http.Request) {
	sess, _ := auth.SessionFromContext(r.Context())
	token, _ := auth.TokenFromContext(r.Context())

	resp := signOutResponse{Message: "signed out", RedirectTo: middleware.AuthPath}
	if err := s.auth.SignOut(r.Context(), sess, token); err != nil {
		slog.Warn("auth: sign out", "error", err)
		resp.Message = "sign out failed, session cleared locally"
	}
	writeJSON(w, http.StatusOK, resp)
}
