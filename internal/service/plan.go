package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/wanderplan/wanderplan/internal/domain"
)

// Recommender is the single-call contract of the external recommendation
// function, defined here so PlanService can be tested with a stub.
type Recommender interface {
	Request(ctx context.Context, accessToken string, req domain.RecommendationRequest) (string, error)
}

// PlanInput is the raw plan-trip form: destination, budget, travel type,
// interest tags, and the trip's date range. The day count sent to the
// recommendation function is derived from the dates, never supplied directly.
type PlanInput struct {
	Destination string
	Budget      float64
	TravelType  domain.TravelType
	Interests   []string
	StartDate   time.Time
	EndDate     time.Time
}

// PlanService validates plan-trip input and requests recommendations.
// Persisting the (possibly edited) result as a trip is a separate, explicit
// TripService.Create call; nothing is saved here.
type PlanService struct {
	recommender Recommender
}

// NewPlanService constructs a PlanService backed by the provided Recommender.
func NewPlanService(r Recommender) *PlanService {
	return &PlanService{recommender: r}
}

// Recommend validates in, invokes the recommendation function once, and
// returns its free text unchanged. Validation failures reject the request
// before any network call is made.
func (s *PlanService) Recommend(ctx context.Context, accessToken string, in PlanInput) (string, error) {
	req, err := buildRequest(in)
	if err != nil {
		return "", err
	}

	text, err := s.recommender.Request(ctx, accessToken, req)
	if err != nil {
		return "", fmt.Errorf("service.PlanService.Recommend: %w", err)
	}
	return text, nil
}

// buildRequest checks the client-side preconditions and derives the day count.
func buildRequest(in PlanInput) (domain.RecommendationRequest, error) {
	if strings.TrimSpace(in.Destination) == "" {
		return domain.RecommendationRequest{}, fmt.Errorf("%w: destination is required", domain.ErrValidation)
	}
	if in.Budget <= 0 {
		return domain.RecommendationRequest{}, fmt.Errorf("%w: budget is required", domain.ErrValidation)
	}
	if !in.TravelType.Valid() {
		return domain.RecommendationRequest{}, fmt.Errorf("%w: unknown travel type %q", domain.ErrValidation, in.TravelType)
	}
	if len(in.Interests) == 0 {
		return domain.RecommendationRequest{}, fmt.Errorf("%w: select at least one interest", domain.ErrValidation)
	}

	days := daysBetween(in.StartDate, in.EndDate)
	if days <= 0 {
		return domain.RecommendationRequest{}, fmt.Errorf("%w: end date must be after start date", domain.ErrValidation)
	}

	return domain.RecommendationRequest{
		Destination: in.Destination,
		Budget:      in.Budget,
		TravelType:  in.TravelType,
		Interests:   in.Interests,
		Days:        days,
	}, nil
}

// daysBetween returns the calendar-day difference between two dates,
// ignoring any time-of-day component. 2024-01-01 to 2024-01-05 is 4 days.
func daysBetween(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s) / (24 * time.Hour))
}
