package handler

import (
	"encoding/json"
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/wanderplan/wanderplan/internal/auth"
	"github.com/wanderplan/wanderplan/internal/domain"
	"github.com/wanderplan/wanderplan/internal/service"
)

type recommendRequest struct {
	Destination string             `json:"destination" validate:"required"`
	Budget      float64            `json:"budget" validate:"gt=0"`
	TravelType  string             `json:"travel_type" validate:"required"`
	Interests   []string           `json:"interests" validate:"required,min=1"`
	StartDate   openapi_types.Date `json:"start_date" validate:"required"`
	EndDate     openapi_types.Date `json:"end_date" validate:"required"`
}

// Recommend handles POST /recommendations. The result is the recommendation
// function's free text, returned unchanged; it is not persisted. Saving the
// plan as a trip is a separate POST /trips.
func (s *Server) Recommend(w http.ResponseWriter, r *http.Request) {
	_, ok := auth.SessionFromContext(r.Context())
	if !ok {
		writeError(w, domain.ErrAuthRequired)
		return
	}
	token, _ := auth.TokenFromContext(r.Context())

	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRequestError(w, "invalid request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeRequestError(w, "destination, budget, travel_type, interests, start_date, and end_date are required")
		return
	}

	text, err := s.plan.Recommend(r.Context(), token, service.PlanInput{
		Destination: req.Destination,
		Budget:      req.Budget,
		TravelType:  domain.TravelType(req.TravelType),
		Interests:   req.Interests,
		StartDate:   req.StartDate.Time,
		EndDate:     req.EndDate.Time,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"recommendations": text})
}
