package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/wanderplan/wanderplan/internal/domain"
	"github.com/wanderplan/wanderplan/internal/store"
)

// DiaryService implements business logic for diary entry operations.
type DiaryService struct {
	store store.DiaryStore
}

// NewDiaryService constructs a DiaryService backed by the provided DiaryStore.
func NewDiaryService(s store.DiaryStore) *DiaryService {
	return &DiaryService{store: s}
}

// List returns all diary entries belonging to userID, most recent entry date
// first. Always returns a non-nil slice.
func (s *DiaryService) List(ctx context.Context, userID uuid.UUID) ([]domain.DiaryEntry, error) {
	entries, err := s.store.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service.DiaryService.List: %w", err)
	}
	if entries == nil {
		return []domain.DiaryEntry{}, nil
	}
	return entries, nil
}

// Create validates and persists a new entry, then re-fetches the full list.
func (s *DiaryService) Create(ctx context.Context, entry domain.DiaryEntry) (domain.DiaryEntry, []domain.DiaryEntry, error) {
	if err := validateDiaryEntry(entry); err != nil {
		return domain.DiaryEntry{}, nil, err
	}

	created, err := s.store.Insert(ctx, entry)
	if err != nil {
		return domain.DiaryEntry{}, nil, fmt.Errorf("service.DiaryService.Create: %w", err)
	}

	entries, err := s.List(ctx, entry.UserID)
	if err != nil {
		return created, nil, fmt.Errorf("service.DiaryService.Create: re-list: %w", err)
	}
	return created, entries, nil
}

// Delete removes a diary entry by ID, scoped to userID.
func (s *DiaryService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.store.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("service.DiaryService.Delete: %w", err)
	}
	return nil
}

// validateDiaryEntry enforces business rules on a new entry.
// Location is optional; everything else is required.
func validateDiaryEntry(entry domain.DiaryEntry) error {
	if strings.TrimSpace(entry.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if strings.TrimSpace(entry.Content) == "" {
		return fmt.Errorf("%w: content is required", domain.ErrValidation)
	}
	if entry.EntryDate.IsZero() {
		return fmt.Errorf("%w: entry date is required", domain.ErrValidation)
	}
	return nil
}
