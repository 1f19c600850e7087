// Package handler implements the HTTP layer of the Wanderplan API.
// All handlers are methods on Server, split into resource-specific files
// (trip.go, diary.go, etc.) but sharing one struct so they can reach the
// same dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/wanderplan/wanderplan/internal/domain"
	"github.com/wanderplan/wanderplan/internal/service"
)

// TripServicer defines the trip operations the handler depends on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching Supabase or the service layer.
type TripServicer interface {
	List(ctx context.Context, userID uuid.UUID) ([]domain.Trip, error)
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, []domain.Trip, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// DiaryServicer defines the diary operations the handler depends on.
type DiaryServicer interface {
	List(ctx context.Context, userID uuid.UUID) ([]domain.DiaryEntry, error)
	Create(ctx context.Context, entry domain.DiaryEntry) (domain.DiaryEntry, []domain.DiaryEntry, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// DestinationServicer defines the saved-destination operations the handler
// depends on.
type DestinationServicer interface {
	List(ctx context.Context, userID uuid.UUID) ([]domain.SavedDestination, error)
	Create(ctx context.Context, dest domain.SavedDestination) (domain.SavedDestination, []domain.SavedDestination, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// PlanServicer produces trip recommendations from plan-trip form input.
type PlanServicer interface {
	Recommend(ctx context.Context, accessToken string, in service.PlanInput) (string, error)
}

// AuthServicer defines the account operations the auth handlers depend on.
type AuthServicer interface {
	SignIn(ctx context.Context, email, password string) (domain.AuthSession, error)
	SignUp(ctx context.Context, email, password, name string) (domain.AuthSession, error)
	SignOut(ctx context.Context, sess domain.Session, accessToken string) error
	Refresh(ctx context.Context, refreshToken string) (domain.AuthSession, error)
	CurrentUser(ctx context.Context, accessToken string) (domain.Session, error)
}

// ExportServicer flattens a user's trips for download.
type ExportServicer interface {
	Export(ctx context.Context, userID uuid.UUID) ([]domain.TripExportRow, error)
}

// Server holds every handler's dependencies. Construct with NewServer and
// mount via Routes.
type Server struct {
	auth         AuthServicer
	trips        TripServicer
	diary        DiaryServicer
	destinations DestinationServicer
	plan         PlanServicer
	export       ExportServicer
	validate     *validator.Validate
}

// NewServer constructs the Server with all its dependencies.
func NewServer(auth AuthServicer, trips TripServicer, diary DiaryServicer, destinations DestinationServicer, plan PlanServicer, export ExportServicer) *Server {
	return &Server{
		auth:         auth,
		trips:        trips,
		diary:        diary,
		destinations: destinations,
		plan:         plan,
		export:       export,
		validate:     validator.New(),
	}
}

// Routes mounts every endpoint on a fresh chi router. guard is the session
// middleware applied to everything except health and the public auth
// endpoints.
func (s *Server) Routes(guard func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Post("/auth/signup", s.SignUp)
	r.Post("/auth/signin", s.SignIn)
	r.Post("/auth/refresh", s.Refresh)

	r.Group(func(r chi.Router) {
		r.Use(guard)

		r.Get("/auth/session", s.GetSession)
		r.Post("/auth/signout", s.SignOut)

		r.Get("/trips", s.ListTrips)
		r.Post("/trips", s.CreateTrip)
		r.Get("/trips/export", s.ExportTrips)
		r.Delete("/trips/{tripID}", s.DeleteTrip)

		r.Get("/diary", s.ListDiaryEntries)
		r.Post("/diary", s.CreateDiaryEntry)
		r.Delete("/diary/{entryID}", s.DeleteDiaryEntry)

		r.Get("/destinations", s.ListDestinations)
		r.Post("/destinations", s.CreateDestination)
		r.Delete("/destinations/{destinationID}", s.DeleteDestination)

		r.Post("/recommendations", s.Recommend)
	})

	return r
}
