package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/wanderplan/internal/domain"
	"github.com/wanderplan/wanderplan/internal/service"
)

// mockRecommender records whether and with what the recommendation function
// was invoked.
type mockRecommender struct {
	called bool
	got    domain.RecommendationRequest
	text   string
	err    error
}

func (m *mockRecommender) Request(_ context.Context, _ string, req domain.RecommendationRequest) (string, error) {
	m.called = true
	m.got = req
	return m.text, m.err
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validPlanInput() service.PlanInput {
	return service.PlanInput{
		Destination: "Tokyo, Japan",
		Budget:      1000,
		TravelType:  domain.TravelSolo,
		Interests:   []string{"Food", "Culture"},
		StartDate:   date(2024, 1, 1),
		EndDate:     date(2024, 1, 5),
	}
}

func TestPlanService_Recommend_DerivesDayCount(t *testing.T) {
	rec := &mockRecommender{text: "Day 1: ..."}

	text, err := service.NewPlanService(rec).Recommend(context.Background(), "token", validPlanInput())

	require.NoError(t, err)
	assert.Equal(t, "Day 1: ...", text)
	require.True(t, rec.called)
	// 2024-01-01 through 2024-01-05 is a 4-day difference.
	assert.Equal(t, 4, rec.got.Days)
	assert.Equal(t, []string{"Food", "Culture"}, rec.got.Interests)
}

func TestPlanService_Recommend_RejectsBeforeNetworkCall(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*service.PlanInput)
	}{
		{"missing destination", func(in *service.PlanInput) { in.Destination = "" }},
		{"zero budget", func(in *service.PlanInput) { in.Budget = 0 }},
		{"unknown travel type", func(in *service.PlanInput) { in.TravelType = "" }},
		{"no interests", func(in *service.PlanInput) { in.Interests = nil }},
		{"end equals start", func(in *service.PlanInput) { in.EndDate = in.StartDate }},
		{"end before start", func(in *service.PlanInput) { in.EndDate = date(2023, 12, 28) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &mockRecommender{text: "should never be seen"}

			in := validPlanInput()
			tt.mutate(&in)
			_, err := service.NewPlanService(rec).Recommend(context.Background(), "token", in)

			require.ErrorIs(t, err, domain.ErrValidation)
			assert.False(t, rec.called, "the function must not be invoked for invalid input")
		})
	}
}

func TestPlanService_Recommend_TimeOfDayDoesNotAffectDayCount(t *testing.T) {
	rec := &mockRecommender{text: "ok"}

	in := validPlanInput()
	in.StartDate = time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC)
	in.EndDate = time.Date(2024, 1, 5, 1, 0, 0, 0, time.UTC)
	_, err := service.NewPlanService(rec).Recommend(context.Background(), "token", in)

	require.NoError(t, err)
	assert.Equal(t, 4, rec.got.Days)
}

func TestPlanService_Recommend_PropagatesFunctionError(t *testing.T) {
	rec := &mockRecommender{err: errors.New("model is overloaded")}

	_, err := service.NewPlanService(rec).Recommend(context.Background(), "token", validPlanInput())

	require.ErrorContains(t, err, "model is overloaded")
}
