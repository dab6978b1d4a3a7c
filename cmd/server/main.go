package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"coopbingo/internal/api"
	"coopbingo/internal/factory"
	"coopbingo/internal/services/game"
	redisstorage "coopbingo/internal/storage/redis"
)

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Build factory config from environment
	cfg := factory.Config{
		Logger:      logger,
		StorageType: os.Getenv("COOPBINGO_STORAGE"),
	}

	engineCfg := game.DefaultConfig()
	if v := os.Getenv("COOPBINGO_MAX_ROUNDS"); v != "" {
		rounds, err := strconv.Atoi(v)
		if err != nil || rounds < 1 {
			logger.Error("COOPBINGO_MAX_ROUNDS must be a positive integer", slog.String("value", v))
			os.Exit(1)
		}
		engineCfg.MaxRounds = rounds
	}
	cfg.EngineConfig = engineCfg

	if cfg.StorageType == factory.StorageTypeRedis {
		redisURL := os.Getenv("COOPBINGO_REDIS_URL")
		if redisURL == "" {
			logger.Error("COOPBINGO_REDIS_URL required when COOPBINGO_STORAGE=redis")
			os.Exit(1)
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = redisURL
		cfg.RedisConfig = &redisCfg
	}

	app, err := factory.New(cfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Create API router and server
	router := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		SessionService: app.SessionService,
		HubManager:     app.HubManager,
		BotStrategy:    app.BotStrategy,
	})

	serverConfig := api.DefaultServerConfig()
	if v := os.Getenv("COOPBINGO_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			logger.Error("COOPBINGO_PORT must be an integer", slog.String("value", v))
			os.Exit(1)
		}
		serverConfig.Port = port
	}
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}
