package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"

	"github.com/wanderplan/wanderplan/internal/domain"
)

const tripsTable = "trips"

// TripStore defines the remote persistence operations for Trips.
// The service layer depends on this interface, not the Supabase client,
// which allows the service to be unit-tested with a mock.
//
// The ctx parameter is accepted for interface uniformity across the codebase;
// the PostgREST client executes without one, so requests are bounded by the
// HTTP server's write timeout rather than per-call cancellation.
type TripStore interface {
	// List returns all trips belonging to userID, newest first.
	List(ctx context.Context, userID uuid.UUID) ([]domain.Trip, error)

	// Insert writes a new trip (with trip.UserID set explicitly) and returns
	// the persisted record with server-generated id and created_at populated.
	Insert(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// Delete removes exactly one trip by primary key, scoped to userID.
	// Returns domain.ErrNotFound when no matching row was deleted.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// supabaseTripStore is the PostgREST implementation of TripStore.
type supabaseTripStore struct {
	client *supabase.Client
}

// NewTripStore constructs a TripStore backed by the provided Supabase client.
func NewTripStore(client *supabase.Client) TripStore {
	return &supabaseTripStore{client: client}
}

// tripRow is the wire representation of a trips row. Date columns arrive as
// "2006-01-02" strings, which time.Time cannot decode directly.
type tripRow struct {
	ID          uuid.UUID          `json:"id"`
	UserID      uuid.UUID          `json:"user_id"`
	Destination string             `json:"destination"`
	StartDate   openapi_types.Date `json:"start_date"`
	EndDate     openapi_types.Date `json:"end_date"`
	Budget      float64            `json:"budget"`
	TravelType  string             `json:"travel_type"`
	Status      string             `json:"status"`
	Notes       string             `json:"notes"`
	CreatedAt   time.Time          `json:"created_at"`
}

// newTripRow is the insert payload. The server generates id and created_at.
type newTripRow struct {
	UserID      uuid.UUID          `json:"user_id"`
	Destination string             `json:"destination"`
	StartDate   openapi_types.Date `json:"start_date"`
	EndDate     openapi_types.Date `json:"end_date"`
	Budget      float64            `json:"budget"`
	TravelType  string             `json:"travel_type"`
	Status      string             `json:"status"`
	Notes       string             `json:"notes"`
}

func (r tripRow) toDomain() domain.Trip {
	return domain.Trip{
		ID:          r.ID,
		UserID:      r.UserID,
		Destination: r.Destination,
		StartDate:   r.StartDate.Time,
		EndDate:     r.EndDate.Time,
		Budget:      r.Budget,
		TravelType:  domain.TravelType(r.TravelType),
		Status:      domain.TripStatus(r.Status),
		Notes:       r.Notes,
		CreatedAt:   r.CreatedAt,
	}
}

// List returns all trips for userID ordered by created_at descending.
func (s *supabaseTripStore) List(_ context.Context, userID uuid.UUID) ([]domain.Trip, error) {
	var rows []tripRow
	_, err := s.client.From(tripsTable).
		Select("*", "", false).
		Eq("user_id", userID.String()).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("store.TripStore.List: %w", err)
	}

	trips := make([]domain.Trip, 0, len(rows))
	for _, r := range rows {
		trips = append(trips, r.toDomain())
	}
	return trips, nil
}

// Insert writes a new trip row and returns the full persisted record.
func (s *supabaseTripStore) Insert(_ context.Context, trip domain.Trip) (domain.Trip, error) {
	payload := newTripRow{
		UserID:      trip.UserID,
		Destination: trip.Destination,
		StartDate:   openapi_types.Date{Time: trip.StartDate},
		EndDate:     openapi_types.Date{Time: trip.EndDate},
		Budget:      trip.Budget,
		TravelType:  string(trip.TravelType),
		Status:      string(trip.Status),
		Notes:       trip.Notes,
	}

	var rows []tripRow
	_, err := s.client.From(tripsTable).
		Insert(payload, false, "", "representation", "").
		ExecuteTo(&rows)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("store.TripStore.Insert: %w", err)
	}
	if len(rows) == 0 {
		return domain.Trip{}, fmt.Errorf("store.TripStore.Insert: empty representation in response")
	}
	return rows[0].toDomain(), nil
}

// Delete removes a trip by primary key, scoped to userID.
func (s *supabaseTripStore) Delete(_ context.Context, userID, id uuid.UUID) error {
	data, _, err := s.client.From(tripsTable).
		Delete("representation", "").
		Eq("id", id.String()).
		Eq("user_id", userID.String()).
		Execute()
	if err != nil {
		return fmt.Errorf("store.TripStore.Delete: %w", err)
	}

	n, err := rowsAffected(data)
	if err != nil {
		return fmt.Errorf("store.TripStore.Delete: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("store.TripStore.Delete: %w", domain.ErrNotFound)
	}
	return nil
}
