package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "github.com/IvanSaydyashev/AdEngine/internal/adapter/http"
	"github.com/IvanSaydyashev/AdEngine/internal/adapter/llm"
	"github.com/IvanSaydyashev/AdEngine/internal/adapter/postgres"
	redisadapter "github.com/IvanSaydyashev/AdEngine/internal/adapter/redis"
	"github.com/IvanSaydyashev/AdEngine/internal/adapter/usecase"
	"github.com/IvanSaydyashev/AdEngine/internal/config"
	"github.com/IvanSaydyashev/AdEngine/internal/db"
)

// main is the entry point of the ad engine. It loads configuration,
// optionally runs database migrations, initializes the Postgres pool, the
// Redis client and the repositories, then starts the HTTP server. On
// receiving a termination signal it gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	// Optionally run migrations if configured. We use the Psql sub‑config.
	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo data seeded")
		}
	}

	rdb, err := db.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		logger.Error("redis connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer rdb.Close()

	cache := redisadapter.NewScoreCache(rdb)
	clock := redisadapter.NewClock(rdb)
	text := llm.NewClient(cfg.LLM)

	adRepo := postgres.NewAdRepository(pool)
	campaignRepo := postgres.NewCampaignRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	advertiserRepo := postgres.NewAdvertiserRepository(pool)
	scoreRepo := postgres.NewScoreRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)

	svc := httpadapter.Services{
		Ads:       usecase.NewAdUseCase(adRepo, cache, clock),
		Campaigns: usecase.NewCampaignUseCase(campaignRepo, advertiserRepo, text, clock),
		Directory: usecase.NewDirectoryUseCase(clientRepo, advertiserRepo, scoreRepo, cache),
		Stats:     usecase.NewStatsUseCase(statsRepo, campaignRepo, advertiserRepo),
		Time:      usecase.NewTimeUseCase(clock),
		Text:      text,
	}

	handler := httpadapter.NewHandler(svc, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
