package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/learnhub/course-catalog/internal/api"
	"github.com/learnhub/course-catalog/internal/infrastructure/config"
	"github.com/learnhub/course-catalog/internal/infrastructure/db/mysql"
	infraredis "github.com/learnhub/course-catalog/internal/infrastructure/db/redis"
	"github.com/learnhub/course-catalog/internal/infrastructure/queue"
	"github.com/learnhub/course-catalog/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := mysql.Open(cfg.MySQL)
	if err != nil {
		log.Fatal().Err(err).Msg("mysql connection failed")
	}
	defer db.Close()

	rdb, err := infraredis.Connect(ctx, infraredis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	cache := infraredis.NewCatalogCache(rdb, log)

	dispatcher := queue.NewDispatcher(0, cache, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(api.Deps{
		Users:       mysql.NewUserRepository(db),
		Courses:     mysql.NewCourseRepository(db),
		Collections: mysql.NewCollectionRepository(db),
		Cache:       cache,
		Events:      dispatcher,
		DB:          db,
		Redis:       rdb,
		JWTSecret:   cfg.JWTSecret,
		Logger:      log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
