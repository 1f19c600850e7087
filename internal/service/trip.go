// Package service contains the business logic for the Wanderplan API.
// Services validate inputs, enforce business rules, and orchestrate store
// calls. No query building lives here; services depend on store interfaces,
// not implementations.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/wanderplan/wanderplan/internal/domain"
	"github.com/wanderplan/wanderplan/internal/store"
)

// TripService implements business logic for Trip operations.
type TripService struct {
	store store.TripStore
}

// NewTripService constructs a TripService backed by the provided TripStore.
func NewTripService(s store.TripStore) *TripService {
	return &TripService{store: s}
}

// List returns all trips belonging to userID, newest first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) List(ctx context.Context, userID uuid.UUID) ([]domain.Trip, error) {
	trips, err := s.store.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	if trips == nil {
		return []domain.Trip{}, nil
	}
	return trips, nil
}

// Create validates and persists a new trip, then re-fetches the full list.
// Re-listing after every insert is deliberate: the caller replaces its local
// state wholesale instead of merging the new record in, so the view can never
// drift from the store.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, []domain.Trip, error) {
	if trip.Status == "" {
		trip.Status = domain.StatusPlanned
	}
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, nil, err
	}

	created, err := s.store.Insert(ctx, trip)
	if err != nil {
		return domain.Trip{}, nil, fmt.Errorf("service.TripService.Create: %w", err)
	}

	trips, err := s.List(ctx, trip.UserID)
	if err != nil {
		return created, nil, fmt.Errorf("service.TripService.Create: re-list: %w", err)
	}
	return created, trips, nil
}

// Delete removes a trip by ID, scoped to userID.
// Returns domain.ErrNotFound if no such trip belongs to the user.
func (s *TripService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.store.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// validateTrip enforces business rules on a new trip.
//   - Destination must be non-empty (whitespace-only is rejected).
//   - Budget must be non-negative.
//   - TravelType and Status must be known enum members.
//
// End date is deliberately NOT required to follow start date here; only the
// recommendation flow, which derives a positive day count, checks ordering.
func validateTrip(trip domain.Trip) error {
	if strings.TrimSpace(trip.Destination) == "" {
		return fmt.Errorf("%w: destination is required", domain.ErrValidation)
	}
	if trip.StartDate.IsZero() || trip.EndDate.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", domain.ErrValidation)
	}
	if trip.Budget < 0 {
		return fmt.Errorf("%w: budget must not be negative", domain.ErrValidation)
	}
	if !trip.TravelType.Valid() {
		return fmt.Errorf("%w: unknown travel type %q", domain.ErrValidation, trip.TravelType)
	}
	if !trip.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", domain.ErrValidation, trip.Status)
	}
	return nil
}
