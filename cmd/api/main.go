package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/alma-scheduler/internal/alma"
	"github.com/BruksfildServices01/alma-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/alma-scheduler/internal/db"
	"github.com/BruksfildServices01/alma-scheduler/internal/middleware"
	"github.com/BruksfildServices01/alma-scheduler/internal/routes"
)

func main() {

	cfg := config.Load()
	logger := newLogger(cfg)

	db := dbpkg.NewDB(cfg, &logger)

	almaClient := alma.NewClient(alma.Options{
		BaseURL:  cfg.AlmaBaseURL,
		APIKey:   cfg.AlmaAPIKey,
		Library:  cfg.AlmaLibrary,
		CircDesk: cfg.AlmaCircDesk,
		Timeout:  cfg.AlmaTimeout,
	}, &logger)

	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("invalid REDIS_URL")
		}
		rdb := redis.NewClient(opts)
		defer rdb.Close()

		almaClient.UseRedisCache(rdb, cfg.AvailTTL)
	}

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(&logger))

	auditDispatcher := routes.RegisterRoutes(r, db, cfg, almaClient, &logger)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", cfg.Addr()).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("shutdown failed")
	}
	auditDispatcher.Close()

	logger.Info().Msg("server stopped")
}

func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if cfg.LogFormat == "json" {
		logger = zerolog.New(os.Stdout)
	} else {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	return logger.Level(level).With().Timestamp().Logger()
}
