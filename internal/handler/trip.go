package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/wanderplan/wanderplan/internal/auth"
	"github.com/wanderplan/wanderplan/internal/domain"
)

type createTripRequest struct {
	Destination string             `json:"destination" validate:"required"`
	StartDate   openapi_types.Date `json:"start_date" validate:"required"`
	EndDate     openapi_types.Date `json:"end_date" validate:"required"`
	Budget      float64            `json:"budget" validate:"gte=0"`
	TravelType  string             `json:"travel_type" validate:"required"`
	Status      string             `json:"status,omitempty"`
	Notes       string             `json:"notes,omitempty"`
}

// createTripResponse returns the created trip together with the re-fetched
// full list, so the client renders exactly what the store now holds.
type createTripResponse struct {
	Trip  domain.Trip   `json:"trip"`
	Trips []domain.Trip `json:"trips"`
}

// ListTrips handles GET /trips.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.SessionFromContext(r.Context())
	if !ok {
		writeError(w, domain.ErrAuthRequired)
		return
	}

	trips, err := s.trips.List(r.Context(), sess.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"trips": trips})
}

// CreateTrip handles POST /trips. Status defaults to planned when omitted,
// which is how the plan-trip flow saves a generated plan; the save-trip flow
// on the discover page sets it explicitly.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.SessionFromContext(r.Context())
	if !ok {
		writeError(w, domain.ErrAuthRequired)
		return
	}

	var req createTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRequestError(w, "invalid request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeRequestError(w, "destination, start_date, end_date, and travel_type are required")
		return
	}

	created, trips, err := s.trips.Create(r.Context(), domain.Trip{
		UserID:      sess.UserID,
		Destination: req.Destination,
		StartDate:   req.StartDate.Time,
		EndDate:     req.EndDate.Time,
		Budget:      req.Budget,
		TravelType:  domain.TravelType(req.TravelType),
		Status:      domain.TripStatus(req.Status),
		Notes:       req.Notes,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, createTripResponse{Trip: created, Trips: trips})
}

// DeleteTrip handles DELETE /trips/{tripID}.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.SessionFromContext(r.Context())
	if !ok {
		writeError(w, domain.ErrAuthRequired)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "tripID"))
	if err != nil {
		writeRequestError(w, "trip id must be a UUID")
		return
	}

	if err := s.trips.Delete(r.Context(), sess.UserID, id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
