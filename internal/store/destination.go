package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"

	"github.com/wanderplan/wanderplan/internal/domain"
)

const destinationsTable = "saved_destinations"

// DestinationStore defines the remote persistence operations for saved
// destinations.
type DestinationStore interface {
	// List returns all saved destinations belonging to userID, newest first.
	List(ctx context.Context, userID uuid.UUID) ([]domain.SavedDestination, error)

	// Insert writes a new saved destination and returns the persisted record.
	Insert(ctx context.Context, dest domain.SavedDestination) (domain.SavedDestination, error)

	// Delete removes exactly one saved destination by primary key, scoped to
	// userID. Returns domain.ErrNotFound when no matching row was deleted.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type supabaseDestinationStore struct {
	client *supabase.Client
}

// NewDestinationStore constructs a DestinationStore backed by the provided
// Supabase client.
func NewDestinationStore(client *supabase.Client) DestinationStore {
	return &supabaseDestinationStore{client: client}
}

// destinationRow needs no separate wire type for dates; the table has none.
type destinationRow struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
}

type newDestinationRow struct {
	UserID      uuid.UUID `json:"user_id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Notes       string    `json:"notes"`
}

func (r destinationRow) toDomain() domain.SavedDestination {
	return domain.SavedDestination{
		ID:          r.ID,
		UserID:      r.UserID,
		Name:        r.Name,
		Location:    r.Location,
		Description: r.Description,
		Category:    r.Category,
		Notes:       r.Notes,
		CreatedAt:   r.CreatedAt,
	}
}

// List returns all saved destinations for userID ordered by created_at
// descending.
func (s *supabaseDestinationStore) List(_ context.Context, userID uuid.UUID) ([]domain.SavedDestination, error) {
	var rows []destinationRow
	_, err := s.client.From(destinationsTable).
		Select("*", "", false).
		Eq("user_id", userID.String()).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("store.DestinationStore.List: %w", err)
	}

	dests := make([]domain.SavedDestination, 0, len(rows))
	for _, r := range rows {
		dests = append(dests, r.toDomain())
	}
	return dests, nil
}

// Insert writes a new saved destination row and returns the persisted record.
func (s *supabaseDestinationStore) Insert(_ context.Context, dest domain.SavedDestination) (domain.SavedDestination, error) {
	payload := newDestinationRow{
		UserID:      dest.UserID,
		Name:        dest.Name,
		Location:    dest.Location,
		Description: dest.Description,
		Category:    dest.Category,
		Notes:       dest.Notes,
	}

	var rows []destinationRow
	_, err := s.client.From(destinationsTable).
		Insert(payload, false, "", "representation", "").
		ExecuteTo(&rows)
	if err != nil {
		return domain.SavedDestination{}, fmt.Errorf("store.DestinationStore.Insert: %w", err)
	}
	if len(rows) == 0 {
		return domain.SavedDestination{}, fmt.Errorf("store.DestinationStore.Insert: empty representation in response")
	}
	return rows[0].toDomain(), nil
}

// Delete removes a saved destination by primary key, scoped to userID.
func (s *supabaseDestinationStore) Delete(_ context.Context, userID, id uuid.UUID) error {
	data, _, err := s.client.From(destinationsTable).
		Delete("representation", "").
		Eq("id", id.String()).
		Eq("user_id", userID.String()).
		Execute()
	if err != nil {
		return fmt.Errorf("store.DestinationStore.Delete: %w", err)
	}

	n, err := rowsAffected(data)
	if err != nil {
		return fmt.Errorf("store.DestinationStore.Delete: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("store.DestinationStore.Delete: %w", domain.ErrNotFound)
	}
	return nil
}
