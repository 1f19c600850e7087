// Package recommend calls the external trip-recommendation function.
// The function is a Supabase Edge Function with a fixed JSON contract:
// structured trip parameters in, free-text recommendations out. One POST per
// request, no retry, no client-side timeout; a slow call is bounded only by
// the caller's context.
package recommend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/wanderplan/wanderplan/internal/domain"
)

// fallbackMessage is shown when the function fails without a usable error
// body of its own.
const fallbackMessage = "failed to generate recommendations"

// Requester invokes the recommendation function on a Supabase project.
type Requester struct {
	functionURL string
	apiKey      string
	client      *http.Client
}

// NewRequester constructs a Requester for the named edge function on the
// project at baseURL. apiKey is the project API key sent alongside the
// caller's own bearer token.
func NewRequester(baseURL, apiKey, function string) *Requester {
	return &Requester{
		functionURL: baseURL + "/functions/v1/" + function,
		apiKey:      apiKey,
		client:      &http.Client{},
	}
}

type invokeBody struct {
	Destination string   `json:"destination"`
	Budget      float64  `json:"budget"`
	TravelType  string   `json:"travelType"`
	Interests   []string `json:"interests"`
	Days        int      `json:"days"`
}

type invokeResponse struct {
	Recommendations string `json:"recommendations"`
	Error           string `json:"error"`
}

// Request invokes the function once with the caller's access token and
// returns the recommendation text. On failure it surfaces the function's own
// error message when one is present, otherwise a generic fallback.
func (r *Requester) Request(ctx context.Context, accessToken string, req domain.RecommendationRequest) (string, error) {
	payload, err := json.Marshal(invokeBody{
		Destination: req.Destination,
		Budget:      req.Budget,
		TravelType:  string(req.TravelType),
		Interests:   req.Interests,
		Days:        req.Days,
	})
	if err != nil {
		return "", fmt.Errorf("recommend.Requester.Request: encode body: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, r.functionURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("recommend.Requester.Request: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+accessToken)
	httpReq.Header.Set("apikey", r.apiKey)

	resp, err := r.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("recommend.Requester.Request: %w", err)
	}
	defer resp.Body.Close()

	var body invokeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("recommend.Requester.Request: %s", fallbackMessage)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if body.Error != "" {
			return "", fmt.Errorf("recommend.Requester.Request: %s", body.Error)
		}
		return "", fmt.Errorf("recommend.Requester.Request: %s", fallbackMessage)
	}

	if body.Recommendations == "" {
		return "", fmt.Errorf("recommend.Requester.Request: %s", fallbackMessage)
	}
	return body.Recommendations, nil
}
