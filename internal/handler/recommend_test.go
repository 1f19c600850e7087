package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/wanderplan/internal/domain"
	"github.com/wanderplan/wanderplan/internal/service"
)

func TestRecommend(t *testing.T) {
	deps := newServerDeps()
	deps.plan.recommendFn = func(_ context.Context, accessToken string, in service.PlanInput) (string, error) {
		assert.Equal(t, "tok", accessToken)
		assert.Equal(t, "Kyoto", in.Destination)
		assert.Equal(t, 1500.0, in.Budget)
		assert.Equal(t, domain.TravelCouple, in.TravelType)
		assert.Equal(t, []string{"food", "temples"}, in.Interests)
		assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), in.StartDate)
		return "Day 1: arrive, check in, evening food market.", nil
	}
	router := deps.server().Routes(passGuard(testSession(), "tok"))

	body := `{"destination":"Kyoto","budget":1500,"travel_type":"couple","interests":["food","temples"],"start_date":"2026-04-01","end_date":"2026-04-08"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/recommendations", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Day 1: arrive, check in, evening food market.", resp["recommendations"])
}

func TestRecommend_NoInterests(t *testing.T) {
	deps := newServerDeps()
	deps.plan.recommendFn = func(context.Context, string, service.PlanInput) (string, error) {
		t.Fatal("service must not be called for an invalid body")
		return "", nil
	}
	router := deps.server().Routes(passGuard(testSession(), "tok"))

	body := `{"destination":"Kyoto","budget":1500,"travel_type":"couple","interests":[],"start_date":"2026-04-01","end_date":"2026-04-08"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/recommendations", strings.NewReader(body)))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestRecommend_ServiceValidation(t *testing.T) {
	deps := newServerDeps()
	deps.plan.recommendFn = func(context.Context, string, service.PlanInput) (string, error) {
		return "", fmt.Errorf("%w: end date must be after start date", domain.ErrValidation)
	}
	router := deps.server().Routes(passGuard(testSession(), "tok"))

	body := `{"destination":"Kyoto","budget":1500,"travel_type":"couple","interests":["food"],"start_date":"2026-04-08","end_date":"2026-04-01"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/recommendations", strings.NewReader(body)))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "end date must be after start date")
}

func TestRecommend_FunctionFailure(t *testing.T) {
	deps := newServerDeps()
	deps.plan.recommendFn = func(context.Context, string, service.PlanInput) (string, error) {
		return "", fmt.Errorf("service.PlanService.Recommend: recommend: failed to generate recommendations")
	}
	router := deps.server().Routes(passGuard(testSession(), "tok"))

	body := `{"destination":"Kyoto","budget":1500,"travel_type":"couple","interests":["food"],"start_date":"2026-04-01","end_date":"2026-04-08"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/recommendations", strings.NewReader(body)))

	require.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "failed to generate recommendations")
}
