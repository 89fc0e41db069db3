package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/citysphere/citysphere-api/internal/api"
	"github.com/citysphere/citysphere-api/internal/infrastructure/ai"
	"github.com/citysphere/citysphere-api/internal/infrastructure/config"
	mongodb "github.com/citysphere/citysphere-api/internal/infrastructure/db/mongo"
	"github.com/citysphere/citysphere-api/internal/infrastructure/db/postgres"
	redisdb "github.com/citysphere/citysphere-api/internal/infrastructure/db/redis"
	"github.com/citysphere/citysphere-api/pkg/logger"
)

// @title           CitySphere API
// @version         1.0
// @description     Crowdsourced city-data platform: map locations, reviews, footpath assessments, category filters, image metadata, and AI helpers.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	// Missing .env is fine in containerized deployments; variables come from
	// the environment there.
	_ = godotenv.Load()

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		boot := logger.Get()
		boot.Fatal().Err(err).Msg("loading configuration")
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.Env == "development"})

	gormDB, err := postgres.Connect(cfg.Postgres.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("connecting to postgres")
	}
	if err := postgres.Migrate(gormDB); err != nil {
		log.Fatal().Err(err).Msg("running migrations")
	}

	initCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	mongoClient, mongoDB, err := mongodb.Connect(initCtx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		cancel()
		log.Fatal().Err(err).Msg("connecting to mongo")
	}
	redisClient, err := redisdb.Connect(initCtx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("connecting to redis")
	}

	provider := ai.NewGeminiClient(ai.Config{
		BaseURL: cfg.AI.BaseURL,
		APIKey:  cfg.AI.APIKey,
		Model:   cfg.AI.Model,
		Timeout: cfg.AI.Timeout,
	})

	e, dispatcher := api.NewRouter(api.Dependencies{
		Config:   cfg,
		Postgres: gormDB,
		Mongo:    mongoDB,
		Redis:    redisClient,
		Provider: provider,
		Log:      log,
	})

	workerCtx, stopWorkers := context.WithCancel(ctx)
	dispatcher.Start(workerCtx)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("starting server")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("citysphere api up")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info().Msg("shutting down")
	stopWorkers()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("mongo disconnect")
	}
	if err := redisClient.Close(); err != nil {
		log.Error().Err(err).Msg("redis close")
	}
}
