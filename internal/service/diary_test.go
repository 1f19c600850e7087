package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/wanderplan/internal/domain"
	"github.com/wanderplan/wanderplan/internal/service"
	"github.com/wanderplan/wanderplan/internal/store"
)

type mockDiaryStore struct {
	list   func(ctx context.Context, userID uuid.UUID) ([]domain.DiaryEntry, error)
	insert func(ctx context.Context, entry domain.DiaryEntry) (domain.DiaryEntry, error)
	delete func(ctx context.Context, userID, id uuid.UUID) error
}

func (m *mockDiaryStore) List(ctx context.Context, userID uuid.UUID) ([]domain.DiaryEntry, error) {
	return m.list(ctx, userID)
}
func (m *mockDiaryStore) Insert(ctx context.Context, entry domain.DiaryEntry) (domain.DiaryEntry, error) {
	return m.insert(ctx, entry)
}
func (m *mockDiaryStore) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return m.delete(ctx, userID, id)
}

var _ store.DiaryStore = (*mockDiaryStore)(nil)

func validEntry(userID uuid.UUID) domain.DiaryEntry {
	return domain.DiaryEntry{
		UserID:    userID,
		Title:     "First day in Kyoto",
		Content:   "Arrived by shinkansen.",
		EntryDate: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestDiaryService_Create_InsertThenReList(t *testing.T) {
	userID := uuid.New()
	var calls []string
	st := &mockDiaryStore{
		insert: func(_ context.Context, entry domain.DiaryEntry) (domain.DiaryEntry, error) {
			calls = append(calls, "insert")
			entry.ID = uuid.New()
			return entry, nil
		},
		list: func(context.Context, uuid.UUID) ([]domain.DiaryEntry, error) {
			calls = append(calls, "list")
			return []domain.DiaryEntry{validEntry(userID)}, nil
		},
	}

	created, entries, err := service.NewDiaryService(st).Create(context.Background(), validEntry(userID))

	require.NoError(t, err)
	assert.Equal(t, []string{"insert", "list"}, calls)
	assert.NotEqual(t, uuid.Nil, created.ID)
	require.Len(t, entries, 1)
}

func TestDiaryService_Create_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.DiaryEntry)
	}{
		{"missing title", func(e *domain.DiaryEntry) { e.Title = "" }},
		{"missing content", func(e *domain.DiaryEntry) { e.Content = " " }},
		{"missing entry date", func(e *domain.DiaryEntry) { e.EntryDate = time.Time{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := &mockDiaryStore{}

			entry := validEntry(uuid.New())
			tt.mutate(&entry)
			_, _, err := service.NewDiaryService(st).Create(context.Background(), entry)

			require.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

// Location is an optional field; an entry without one is valid.
func TestDiaryService_Create_LocationOptional(t *testing.T) {
	st := &mockDiaryStore{
		insert: func(_ context.Context, e domain.DiaryEntry) (domain.DiaryEntry, error) { return e, nil },
		list:   func(context.Context, uuid.UUID) ([]domain.DiaryEntry, error) { return nil, nil },
	}

	entry := validEntry(uuid.New())
	entry.Location = ""
	_, entries, err := service.NewDiaryService(st).Create(context.Background(), entry)

	require.NoError(t, err)
	assert.NotNil(t, entries)
}

func TestDiaryService_Delete_PassesThroughNotFound(t *testing.T) {
	st := &mockDiaryStore{delete: func(context.Context, uuid.UUID, uuid.UUID) error {
		return domain.ErrNotFound
	}}

	err := service.NewDiaryService(st).Delete(context.Background(), uuid.New(), uuid.New())

	require.ErrorIs(t, err, domain.ErrNotFound)
}
