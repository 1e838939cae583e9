package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/Balerion769/Disaster-Response-Platform/internal/api"
	"github.com/Balerion769/Disaster-Response-Platform/internal/cache"
	"github.com/Balerion769/Disaster-Response-Platform/internal/config"
	"github.com/Balerion769/Disaster-Response-Platform/internal/geocode"
	"github.com/Balerion769/Disaster-Response-Platform/internal/llm"
	"github.com/Balerion769/Disaster-Response-Platform/internal/notify"
	"github.com/Balerion769/Disaster-Response-Platform/internal/redis"
	"github.com/Balerion769/Disaster-Response-Platform/internal/scrape"
	"github.com/Balerion769/Disaster-Response-Platform/internal/service"
	"github.com/Balerion769/Disaster-Response-Platform/internal/storage/postgres"
)

type Components struct {
	logger      *slog.Logger
	HttpServer  *api.Server
	Postgres    *postgres.Postgres
	Redis       *redis.Redis
	Broadcaster *notify.Broadcaster
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")
	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres", slog.Any("error", err))
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	// Fan-out side channel: services enqueue, the broadcaster drains
	// onto connected websockets.
	eventQueue := notify.NewEventQueue(redisClient.Client, "events:queue", logger)
	hub := notify.NewHub(logger)
	broadcaster := notify.NewBroadcaster(eventQueue, hub, logger)

	cacheStore := cache.NewStore(storage.Cache, clockwork.NewRealClock(), logger)

	llmClient := llm.NewClient(cfg.Gemini, logger)
	extractor := llm.NewExtractor(llmClient, logger)
	verifier := llm.NewVerifier(llmClient, logger)
	geocoder := geocode.NewClient(cfg.Geocoder, logger)
	scraper := scrape.NewFemaScraper(cfg.Scraper, logger)

	resolver := service.NewResolver(extractor, geocoder, logger)
	disasterSvc := service.NewDisasterService(storage.Disaster, resolver, eventQueue, logger)
	reportSvc := service.NewReportService(storage.Report, verifier, cacheStore, eventQueue, cfg.Cache.VerificationTTL, logger)
	feedSvc := service.NewFeedService(storage.Resource, scraper, cacheStore, eventQueue, cfg.Cache.UpdatesTTL, cfg.Resources.RadiusMeters, logger)

	srv := service.NewService(disasterSvc, reportSvc, feedSvc)

	httpServer := api.NewServer(cfg, logger, srv, hub)
	logger.Info("Initialized server")

	return &Components{
		logger:      logger,
		HttpServer:  httpServer,
		Postgres:    storage,
		Redis:       redisClient,
		Broadcaster: broadcaster,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Shutting down components")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}
