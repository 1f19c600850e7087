package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/wanderplan/wanderplan/internal/auth"
	"github.com/wanderplan/wanderplan/internal/domain"
)

type createDestinationRequest struct {
	Name        string `json:"name" validate:"required"`
	Location    string `json:"location" validate:"required"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

type createDestinationResponse struct {
	Destination  domain.SavedDestination   `json:"destination"`
	Destinations []domain.SavedDestination `json:"destinations"`
}

// ListDestinations handles GET /destinations.
func (s *Server) ListDestinations(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.SessionFromContext(r.Context())
	if !ok {
		writeError(w, domain.ErrAuthRequired)
		return
	}

	dests, err := s.destinations.List(r.Context(), sess.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"destinations": dests})
}

// CreateDestination handles POST /destinations, saving a place from the
// discover page.
func (s *Server) CreateDestination(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.SessionFromContext(r.Context())
	if !ok {
		writeError(w, domain.ErrAuthRequired)
		return
	}

	var req createDestinationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRequestError(w, "invalid request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeRequestError(w, "name and location are required")
		return
	}

	created, dests, err := s.destinations.Create(r.Context(), domain.SavedDestination{
		UserID:      sess.UserID,
		Name:        req.Name,
		Location:    req.Location,
		Description: req.Description,
		Category:    req.Category,
		Notes:       req.Notes,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, createDestinationResponse{Destination: created, Destinations: dests})
}

// DeleteDestination handles DELETE /destinations/{destinationID}.
func (s *Server) DeleteDestination(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.SessionFromContext(r.Context())
	if !ok {
		writeError(w, domain.ErrAuthRequired)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "destinationID"))
	if err != nil {
		writeRequestError(w, "destination id must be a UUID")
		return
	}

	if err := s.destinations.Delete(r.Context(), sess.UserID, id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
