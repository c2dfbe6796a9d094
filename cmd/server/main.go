// Command server runs the LFG board API: the backend the desktop companion
// app talks to for posting, joining, and commenting on looking-for-group
// listings.
//
// Startup order mirrors the deployment contract: .env is loaded first, the
// process refuses to boot without a usable store, and the HTTP listener only
// starts once migrations have run.
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
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/pieguyguide/lfg-board/docs"
	"github.com/pieguyguide/lfg-board/internal/config"
	httpapi "github.com/pieguyguide/lfg-board/internal/http"
	"github.com/pieguyguide/lfg-board/internal/observability"
	"github.com/pieguyguide/lfg-board/internal/repo"
	"github.com/pieguyguide/lfg-board/internal/sysutil"
)

// version is stamped into traces and the swagger spec.
const version = "1.0.0"

// @title        LFG Board API
// @version      1.0.0
// @description  Looking-for-group bulletin board for the desktop companion app. Multi-tenant by game server (shard), with capacity-limited interest lists and per-post comment threads.
// @BasePath     /api
func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.MustLoad()

	sysutil.SetLogLevel(cfg.LogLevel)
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	gin.SetMode(cfg.GinMode)
	docs.SwaggerInfo.BasePath = cfg.APIBasePath

	db, err := repo.Open(cfg.DatabaseURL, cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("open store")
	}
	if err := repo.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate schema")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		log.Fatal().Err(err).Msg("setup otel")
	}
	if cfg.OTEL.Enabled {
		if err := repo.EnableTracing(db); err != nil {
			log.Warn().Err(err).Msg("gorm tracing plugin not installed")
		}
	}

	r := gin.New()
	httpapi.RegisterRoutes(r, db, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("LFG board API listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	if err := shutdownOTel(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("otel shutdown")
	}
}
