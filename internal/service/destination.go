package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/wanderplan/wanderplan/internal/domain"
	"github.com/wanderplan/wanderplan/internal/store"
)

// DestinationService implements business logic for saved destinations.
type DestinationService struct {
	store store.DestinationStore
}

// NewDestinationService constructs a DestinationService backed by the
// provided DestinationStore.
func NewDestinationService(s store.DestinationStore) *DestinationService {
	return &DestinationService{store: s}
}

// List returns all saved destinations belonging to userID, newest first.
// Always returns a non-nil slice.
func (s *DestinationService) List(ctx context.Context, userID uuid.UUID) ([]domain.SavedDestination, error) {
	dests, err := s.store.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service.DestinationService.List: %w", err)
	}
	if dests == nil {
		return []domain.SavedDestination{}, nil
	}
	return dests, nil
}

// Create validates and persists a new saved destination, then re-fetches the
// full list.
func (s *DestinationService) Create(ctx context.Context, dest domain.SavedDestination) (domain.SavedDestination, []domain.SavedDestination, error) {
	if err := validateDestination(dest); err != nil {
		return domain.SavedDestination{}, nil, err
	}

	created, err := s.store.Insert(ctx, dest)
	if err != nil {
		return domain.SavedDestination{}, nil, fmt.Errorf("service.DestinationService.Create: %w", err)
	}

	dests, err := s.List(ctx, dest.UserID)
	if err != nil {
		return created, nil, fmt.Errorf("service.DestinationService.Create: re-list: %w", err)
	}
	return created, dests, nil
}

// Delete removes a saved destination by ID, scoped to userID.
func (s *DestinationService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.store.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("service.DestinationService.Delete: %w", err)
	}
	return nil
}

// validateDestination enforces business rules on a new saved destination.
// Description, category, and notes are optional.
func validateDestination(dest domain.SavedDestination) error {
	if strings.TrimSpace(dest.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(dest.Location) == "" {
		return fmt.Errorf("%w: location is required", domain.ErrValidation)
	}
	return nil
}
