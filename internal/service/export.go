package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/wanderplan/wanderplan/internal/domain"
	"github.com/wanderplan/wanderplan/internal/store"
)

// ExportService assembles a flat, string-formatted export of a user's trips.
type ExportService struct {
	trips store.TripStore
}

// NewExportService constructs an ExportService backed by the provided
// TripStore.
func NewExportService(trips store.TripStore) *ExportService {
	return &ExportService{trips: trips}
}

// Export returns one row per trip for userID, in the same newest-first order
// the trips list uses. Always returns a non-nil slice.
func (s *ExportService) Export(ctx context.Context, userID uuid.UUID) ([]domain.TripExportRow, error) {
	trips, err := s.trips.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	rows := make([]domain.TripExportRow, 0, len(trips))
	for _, t := range trips {
		rows = append(rows, domain.TripExportRow{
			ID:          t.ID.String(),
			Destination: t.Destination,
			StartDate:   t.StartDate.Format("2006-01-02"),
			EndDate:     t.EndDate.Format("2006-01-02"),
			Budget:      strconv.FormatFloat(t.Budget, 'f', 2, 64),
			TravelType:  string(t.TravelType),
			Status:      string(t.Status),
			Notes:       t.Notes,
		})
	}
	return rows, nil
}
