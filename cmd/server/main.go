package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/urcontent/dashboard-service/internal/api"
	"github.com/urcontent/dashboard-service/internal/api/handler"
	"github.com/urcontent/dashboard-service/internal/core/service"
	mongodb "github.com/urcontent/dashboard-service/internal/infrastructure/db/mongo"
	redisdb "github.com/urcontent/dashboard-service/internal/infrastructure/db/redis"
	"github.com/urcontent/dashboard-service/internal/infrastructure/queue"
	"github.com/urcontent/dashboard-service/internal/pkg/config"
	"github.com/urcontent/dashboard-service/pkg/logger"
)

const serviceName = "dashboard-service"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: serviceName,
	})

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		AppName:  serviceName,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect mongo")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("disconnect mongo")
		}
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("ensure mongo indexes")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect redis")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Warn().Err(err).Msg("close redis")
		}
	}()

	// --- Services ---
	authService := service.NewAuthService(mongodb.NewAuthRepository(db), cfg.JWTSecret, cfg.TokenTTL)
	profileService := service.NewProfileService(
		mongodb.NewProfileRepository(db),
		redisdb.NewProfileRoleCache(rdb, cfg.Profile.CacheTTL),
		log,
	)
	auditService := service.NewAuditService(
		mongodb.NewAuditRepository(db),
		redisdb.NewDedupChecker(rdb, cfg.Audit.DedupTTL),
		log,
	)

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	dispatcher := queue.NewDispatcher(cfg.Audit.Workers, auditService, log)
	dispatcher.Start(workerCtx)

	dashboardService := service.NewDashboardService(profileService, dispatcher, log)

	e := api.NewRouter(api.Dependencies{
		AuthService:      authService,
		ProfileService:   profileService,
		DashboardService: dashboardService,
		HealthChecks: map[string]handler.DependencyCheck{
			"mongodb": func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) },
			"redis":   func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		},
		JWTSecret: cfg.JWTSecret,
		Logger:    log,
	})

	srvErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("http server listening")
		srvErr <- e.Start(":" + cfg.Port)
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server error")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}

	stopWorkers()
	dispatcher.Wait()

	log.Info().Msg("server exited cleanly")
}
