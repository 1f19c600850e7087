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
)

func TestExportService_Export_FormatsRows(t *testing.T) {
	tripID := uuid.New()
	st := &mockTripStore{list: func(context.Context, uuid.UUID) ([]domain.Trip, error) {
		return []domain.Trip{{
			ID:          tripID,
			Destination: "Tokyo, Japan",
			StartDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:     time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			Budget:      1000,
			TravelType:  domain.TravelSolo,
			Status:      domain.StatusPlanned,
			Notes:       "Day 1: ...",
		}}, nil
	}}

	rows, err := service.NewExportService(st).Export(context.Background(), uuid.New())

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, tripID.String(), rows[0].ID)
	assert.Equal(t, "2024-01-01", rows[0].StartDate)
	assert.Equal(t, "2024-01-05", rows[0].EndDate)
	assert.Equal(t, "1000.00", rows[0].Budget)
	assert.Equal(t, "solo", rows[0].TravelType)
}

func TestExportService_Export_EmptyIsNonNil(t *testing.T) {
	st := &mockTripStore{list: func(context.Context, uuid.UUID) ([]domain.Trip, error) {
		return nil, nil
	}}

	rows, err := service.NewExportService(st).Export(context.Background(), uuid.New())

	require.NoError(t, err)
	require.NotNil(t, rows)
	assert.Empty(t, rows)
}
