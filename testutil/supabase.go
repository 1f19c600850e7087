// Package testutil provides shared helpers for tests.
// Its central piece is a stub Supabase REST server so store tests can assert
// exactly what the PostgREST layer sends and receives without a real project.
package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/supabase-community/supabase-go"
)

// RecordedRequest captures one HTTP request received by the stub server.
type RecordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Body   []byte
}

type stubResponse struct {
	status int
	body   any
}

// SupabaseServer is an httptest server standing in for a Supabase project's
// REST surface (paths under /rest/v1). Client is a real supabase-go client
// pointed at the stub, so tests exercise the same wire encoding production
// does.
type SupabaseServer struct {
	// Client is wired to the stub; pass it to store constructors.
	Client *supabase.Client

	mu        sync.Mutex
	requests  []RecordedRequest
	responses map[string]stubResponse
}

// NewSupabaseServer starts a stub Supabase server which shuts down when the
// test (and all its subtests) finish.
func NewSupabaseServer(t *testing.T) *SupabaseServer {
	t.Helper()

	s := &SupabaseServer{responses: make(map[string]stubResponse)}

	srv := httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(srv.Close)

	client, err := supabase.NewClient(srv.URL, "stub-anon-key", nil)
	if err != nil {
		t.Fatalf("testutil.NewSupabaseServer: create client: %v", err)
	}
	s.Client = client
	return s
}

// Respond registers the response for a method and path, e.g.
// ("GET", "/rest/v1/trips", 200, rows). body is JSON-encoded on the fly.
// Registering the same method and path again overwrites the previous stub.
func (s *SupabaseServer) Respond(method, path string, status int, body any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[method+" "+path] = stubResponse{status: status, body: body}
}

// Requests returns a copy of every request received so far, in order.
func (s *SupabaseServer) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]RecordedRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// LastRequest returns the most recent request, failing the test if none arrived.
func (s *SupabaseServer) LastRequest(t *testing.T) RecordedRequest {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		t.Fatal("testutil.SupabaseServer: no requests recorded")
	}
	return s.requests[len(s.requests)-1]
}

func (s *SupabaseServer) handle(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	s.mu.Lock()
	s.requests = append(s.requests, RecordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Body:   body,
	})
	resp, ok := s.responses[r.Method+" "+r.URL.Path]
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "no stub registered for " + r.Method + " " + r.URL.Path})
		return
	}

	w.WriteHeader(resp.status)
	json.NewEncoder(w).Encode(resp.body)
}
