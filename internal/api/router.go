package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"coopbingo/internal/api/handler"
	"coopbingo/internal/api/middleware"
	"coopbingo/internal/services/bot"
	"coopbingo/internal/services/session"
	"coopbingo/internal/web/sse"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	SessionService *session.Service
	HubManager     *sse.HubManager
	BotStrategy    bot.Strategy
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	sessionHandler := handler.NewSessionHandler(cfg.SessionService)
	gameHandler := handler.NewGameHandler(cfg.SessionService, cfg.BotStrategy, cfg.HubManager)

	authMiddleware := middleware.Auth(cfg.SessionService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Session routes (no auth required to create or resume)
	api.HandleFunc("/sessions", sessionHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/sessions/resume", sessionHandler.Resume).Methods(http.MethodPost)

	sessions := api.PathPrefix("/sessions").Subrouter()
	sessions.Use(authMiddleware)
	sessions.HandleFunc("/me", sessionHandler.Me).Methods(http.MethodGet)

	// Game routes (all require auth; each session plays its own game)
	gameRoutes := api.PathPrefix("/game").Subrouter()
	gameRoutes.Use(authMiddleware)
	gameRoutes.HandleFunc("", gameHandler.Get).Methods(http.MethodGet)
	gameRoutes.HandleFunc("/start", gameHandler.Start).Methods(http.MethodPost)
	gameRoutes.HandleFunc("/reset", gameHandler.Reset).Methods(http.MethodPost)
	gameRoutes.HandleFunc("/player-move", gameHandler.PlayerMove).Methods(http.MethodPost)
	gameRoutes.HandleFunc("/computer-move", gameHandler.ComputerMove).Methods(http.MethodPost)
	gameRoutes.HandleFunc("/computer-move/random", gameHandler.ComputerMoveRandom).Methods(http.MethodPost)
	gameRoutes.HandleFunc("/suggestion", gameHandler.Suggestion).Methods(http.MethodGet)
	gameRoutes.HandleFunc("/simulate", gameHandler.Simulate).Methods(http.MethodPost)
	gameRoutes.HandleFunc("/summaries", gameHandler.Summaries).Methods(http.MethodGet)

	// Event stream (auth via header or session cookie)
	events := api.PathPrefix("/events").Subrouter()
	events.Use(authMiddleware)
	events.HandleFunc("", gameHandler.Events).Methods(http.MethodGet)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
