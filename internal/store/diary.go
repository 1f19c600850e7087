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

const diaryTable = "diary_entries"

// DiaryStore defines the remote persistence operations for diary entries.
type DiaryStore interface {
	// List returns all entries belonging to userID, most recent entry date first.
	List(ctx context.Context, userID uuid.UUID) ([]domain.DiaryEntry, error)

	// Insert writes a new entry and returns the persisted record.
	Insert(ctx context.Context, entry domain.DiaryEntry) (domain.DiaryEntry, error)

	// Delete removes exactly one entry by primary key, scoped to userID.
	// Returns domain.ErrNotFound when no matching row was deleted.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type supabaseDiaryStore struct {
	client *supabase.Client
}

// NewDiaryStore constructs a DiaryStore backed by the provided Supabase client.
func NewDiaryStore(client *supabase.Client) DiaryStore {
	return &supabaseDiaryStore{client: client}
}

type diaryRow struct {
	ID        uuid.UUID          `json:"id"`
	UserID    uuid.UUID          `json:"user_id"`
	Title     string             `json:"title"`
	Content   string             `json:"content"`
	EntryDate openapi_types.Date `json:"entry_date"`
	Location  string             `json:"location"`
	CreatedAt time.Time          `json:"created_at"`
}

type newDiaryRow struct {
	UserID    uuid.UUID          `json:"user_id"`
	Title     string             `json:"title"`
	Content   string             `json:"content"`
	EntryDate openapi_types.Date `json:"entry_date"`
	Location  string             `json:"location"`
}

func (r diaryRow) toDomain() domain.DiaryEntry {
	return domain.DiaryEntry{
		ID:        r.ID,
		UserID:    r.UserID,
		Title:     r.Title,
		Content:   r.Content,
		EntryDate: r.EntryDate.Time,
		Location:  r.Location,
		CreatedAt: r.CreatedAt,
	}
}

// List returns all diary entries for userID ordered by entry_date descending.
func (s *supabaseDiaryStore) List(_ context.Context, userID uuid.UUID) ([]domain.DiaryEntry, error) {
	var rows []diaryRow
	_, err := s.client.From(diaryTable).
		Select("*", "", false).
		Eq("user_id", userID.String()).
		Order("entry_date", &postgrest.OrderOpts{Ascending: false}).
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("store.DiaryStore.List: %w", err)
	}

	entries := make([]domain.DiaryEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, r.toDomain())
	}
	return entries, nil
}

// Insert writes a new diary entry row and returns the full persisted record.
func (s *supabaseDiaryStore) Insert(_ context.Context, entry domain.DiaryEntry) (domain.DiaryEntry, error) {
	payload := newDiaryRow{
		UserID:    entry.UserID,
		Title:     entry.Title,
		Content:   entry.Content,
		EntryDate: openapi_types.Date{Time: entry.EntryDate},
		Location:  entry.Location,
	}

	var rows []diaryRow
	_, err := s.client.From(diaryTable).
		Insert(payload, false, "", "representation", "").
		ExecuteTo(&rows)
	if err != nil {
		return domain.DiaryEntry{}, fmt.Errorf("store.DiaryStore.Insert: %w", err)
	}
	if len(rows) == 0 {
		return domain.DiaryEntry{}, fmt.Errorf("store.DiaryStore.Insert: empty representation in response")
	}
	return rows[0].toDomain(), nil
}

// Delete removes a diary entry by primary key, scoped to userID.
func (s *supabaseDiaryStore) Delete(_ context.Context, userID, id uuid.UUID) error {
	data, _, err := s.client.From(diaryTable).
		Delete("representation", "").
		Eq("id", id.String()).
		Eq("user_id", userID.String()).
		Execute()
	if err != nil {
		return fmt.Errorf("store.DiaryStore.Delete: %w", err)
	}

	n, err := rowsAffected(data)
	if err != nil {
		return fmt.Errorf("store.DiaryStore.Delete: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("store.DiaryStore.Delete: %w", domain.ErrNotFound)
	}
	return nil
}
