package store_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/wanderplan/internal/domain"
	"github.com/wanderplan/wanderplan/internal/store"
	"github.com/wanderplan/wanderplan/testutil"
)

const tripsPath = "/rest/v1/trips"

// tripRowFixture returns a trips row as PostgREST would serialize it:
// date columns as "2006-01-02" strings, timestamptz as RFC 3339.
func tripRowFixture(userID uuid.UUID) map[string]any {
	return map[string]any{
		"id":          uuid.NewString(),
		"user_id":     userID.String(),
		"destination": "Tokyo, Japan",
		"start_date":  "2024-01-01",
		"end_date":    "2024-01-05",
		"budget":      1000.0,
		"travel_type": "solo",
		"status":      "planned",
		"notes":       "Day 1: arrive",
		"created_at":  "2024-01-01T09:30:00Z",
	}
}

func TestTripStore_List_ScopesToUserAndOrders(t *testing.T) {
	userID := uuid.New()
	srv := testutil.NewSupabaseServer(t)
	srv.Respond(http.MethodGet, tripsPath, http.StatusOK, []map[string]any{tripRowFixture(userID)})

	trips, err := store.NewTripStore(srv.Client).List(context.Background(), userID)

	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, "Tokyo, Japan", trips[0].Destination)
	assert.Equal(t, domain.TravelSolo, trips[0].TravelType)
	assert.Equal(t, domain.StatusPlanned, trips[0].Status)
	assert.Equal(t, "2024-01-01", trips[0].StartDate.Format("2006-01-02"))
	assert.Equal(t, "2024-01-05", trips[0].EndDate.Format("2006-01-02"))

	// The request must be filtered by the owning user and sorted newest first.
	req := srv.LastRequest(t)
	assert.Equal(t, "eq."+userID.String(), req.Query.Get("user_id"))
	assert.Contains(t, req.Query.Get("order"), "created_at.desc")
}

func TestTripStore_List_StoreError(t *testing.T) {
	srv := testutil.NewSupabaseServer(t)
	srv.Respond(http.MethodGet, tripsPath, http.StatusInternalServerError, map[string]string{"message": "boom"})

	trips, err := store.NewTripStore(srv.Client).List(context.Background(), uuid.New())

	require.Error(t, err)
	assert.Nil(t, trips)
}

func TestTripStore_Insert_SendsUserIDAndReturnsRecord(t *testing.T) {
	userID := uuid.New()
	persisted := tripRowFixture(userID)
	srv := testutil.NewSupabaseServer(t)
	srv.Respond(http.MethodPost, tripsPath, http.StatusCreated, []map[string]any{persisted})

	trip := domain.Trip{
		UserID:      userID,
		Destination: "Tokyo, Japan",
		StartDate:   mustDate(t, "2024-01-01"),
		EndDate:     mustDate(t, "2024-01-05"),
		Budget:      1000,
		TravelType:  domain.TravelSolo,
		Status:      domain.StatusPlanned,
		Notes:       "Day 1: arrive",
	}

	created, err := store.NewTripStore(srv.Client).Insert(context.Background(), trip)

	require.NoError(t, err)
	assert.Equal(t, persisted["id"], created.ID.String())
	assert.Equal(t, userID, created.UserID)
	assert.False(t, created.CreatedAt.IsZero())

	// The insert payload carries the owner id explicitly and wire-format dates.
	var sent map[string]any
	require.NoError(t, json.Unmarshal(srv.LastRequest(t).Body, &sent))
	assert.Equal(t, userID.String(), sent["user_id"])
	assert.Equal(t, "2024-01-01", sent["start_date"])
	assert.Equal(t, "2024-01-05", sent["end_date"])
	assert.Equal(t, "planned", sent["status"])
}

func TestTripStore_Delete_MatchingRow(t *testing.T) {
	userID := uuid.New()
	tripID := uuid.New()
	srv := testutil.NewSupabaseServer(t)
	srv.Respond(http.MethodDelete, tripsPath, http.StatusOK, []map[string]any{tripRowFixture(userID)})

	err := store.NewTripStore(srv.Client).Delete(context.Background(), userID, tripID)

	require.NoError(t, err)

	req := srv.LastRequest(t)
	assert.Equal(t, "eq."+tripID.String(), req.Query.Get("id"))
	assert.Equal(t, "eq."+userID.String(), req.Query.Get("user_id"))
}

// A delete that matches nothing still returns 200 with an empty array from
// PostgREST; the store must translate that into ErrNotFound.
func TestTripStore_Delete_NoMatchingRow(t *testing.T) {
	srv := testutil.NewSupabaseServer(t)
	srv.Respond(http.MethodDelete, tripsPath, http.StatusOK, []map[string]any{})

	err := store.NewTripStore(srv.Client).Delete(context.Background(), uuid.New(), uuid.New())

	require.ErrorIs(t, err, domain.ErrNotFound)
}
