// Package main is the entry point for the Wanderplan API server.
// Its sole responsibility is wiring dependencies together and starting the
// server. No business logic belongs here.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/supabase-community/supabase-go"

	"github.com/wanderplan/wanderplan/internal/auth"
	"github.com/wanderplan/wanderplan/internal/config"
	"github.com/wanderplan/wanderplan/internal/domain"
	"github.com/wanderplan/wanderplan/internal/handler"
	"github.com/wanderplan/wanderplan/internal/middleware"
	"github.com/wanderplan/wanderplan/internal/recommend"
	"github.com/wanderplan/wanderplan/internal/service"
	"github.com/wanderplan/wanderplan/internal/store"
)

// maxRequestBody caps how much of a request body is read. Every write in the
// API is a small JSON document.
const maxRequestBody = 1 << 20 // 1 MiB

func main() {
	// --- Config -----------------------------------------------------------
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// log/slog is the stdlib structured logger introduced in Go 1.21.
	// JSON handler writes machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Supabase ---------------------------------------------------------
	// One client serves both GoTrue (auth) and PostgREST (store). The
	// service_role key bypasses RLS, so every store query scopes by user_id
	// explicitly.
	client, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseServiceKey, nil)
	if err != nil {
		slog.Error("failed to create supabase client", "error", err)
		os.Exit(1)
	}

	// --- Auth -------------------------------------------------------------
	verifier := auth.NewVerifier(cfg.SupabaseJWTSecret)
	notifier := auth.NewNotifier()
	unsubscribe := notifier.Subscribe(func(ev auth.Event, s domain.Session) {
		slog.Info("auth event", "event", string(ev), "user_id", s.UserID)
	})
	defer unsubscribe()

	authService := auth.NewService(auth.NewAPI(client), notifier)

	// --- Services ---------------------------------------------------------
	tripService := service.NewTripService(store.NewTripStore(client))
	diaryService := service.NewDiaryService(store.NewDiaryStore(client))
	destinationService := service.NewDestinationService(store.NewDestinationStore(client))
	planService := service.NewPlanService(recommend.NewRequester(cfg.SupabaseURL, cfg.SupabaseServiceKey, cfg.RecommendFunction))
	exportService := service.NewExportService(store.NewTripStore(client))

	server := handler.NewServer(authService, tripService, diaryService, destinationService, planService, exportService)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer
	// → CORS → MaxBodySize. The session guard is applied per-route inside
	// Routes so health and the public auth endpoints stay open.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(maxRequestBody))

	r.Mount("/", server.Routes(middleware.NewSessionGuard(verifier)))

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	// WriteTimeout is generous because POST /recommendations waits on the
	// edge function.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
