// Package factory wires application components together.
package factory

import (
	"errors"
	"io"
	"log/slog"

	"coopbingo/internal/dependencies/clock"
	"coopbingo/internal/dependencies/random"
	"coopbingo/internal/services/bot"
	"coopbingo/internal/services/game"
	"coopbingo/internal/services/lines"
	"coopbingo/internal/services/session"
	"coopbingo/internal/storage"
	"coopbingo/internal/storage/memory"
	redisstorage "coopbingo/internal/storage/redis"
	"coopbingo/internal/web/sse"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	LineService    *lines.Service
	SessionService *session.Service
	BotStrategy    bot.Strategy
	HubManager     *sse.HubManager
	Broadcaster    *sse.Broadcaster
}

// Config holds configuration for the application factory
type Config struct {
	// EngineConfig configures each session's rules engine (optional)
	// If zero value, defaults to game.DefaultConfig()
	EngineConfig game.Config
	// SessionConfig configures the session service (optional)
	SessionConfig session.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	engineCfg := cfg.EngineConfig
	if engineCfg.MaxRounds == 0 {
		engineCfg = game.DefaultConfig()
	}

	return newWithDependencies(store, clock.New(), random.New(), engineCfg, cfg.SessionConfig, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	engineCfg game.Config,
	sessionCfg session.Config,
	logger *slog.Logger,
) *App {
	lineService := lines.New()
	hubManager := sse.NewHubManager(logger)
	broadcaster := sse.NewBroadcaster(hubManager, logger)

	// Each session gets its own engine (and with it a fresh scorer cache),
	// wired to the SSE broadcaster for its session.
	engines := func(sessionID string) *game.Engine {
		engine := game.New(engineCfg, lineService, logger)
		engine.Subscribe(broadcaster.Observer(sessionID))
		return engine
	}

	sessionService := session.New(store, clk, rnd, engines, logger, sessionCfg)

	// The random computer-move endpoint draws from a shared strategy; the
	// greedy strategy stays available for hosts that want a stronger bot.
	strategy := bot.NewRandomStrategy(rnd)

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		LineService:    lineService,
		SessionService: sessionService,
		BotStrategy:    strategy,
		HubManager:     hubManager,
		Broadcaster:    broadcaster,
	}
}
