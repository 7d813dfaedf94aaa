package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"govt-appointments-api/internal/analytics"
	"govt-appointments-api/internal/booking"
	"govt-appointments-api/internal/config"
	"govt-appointments-api/internal/handler"
	"govt-appointments-api/internal/repo"
	"govt-appointments-api/internal/storage"
	"govt-appointments-api/internal/storage/boltstore"
	"govt-appointments-api/internal/storage/filestore"
	"govt-appointments-api/pkg/logger"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	log := logger.New(cfg.Env)

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	var adapter storage.Adapter
	switch cfg.StoreBackend {
	case "json":
		fs, err := filestore.New(cfg.DataDir)
		if err != nil {
			log.Fatal().Err(err).Msg("storage")
		}
		adapter = fs
	case "bolt":
		bs, err := boltstore.Open(cfg.BoltPath)
		if err != nil {
			log.Fatal().Err(err).Msg("storage")
		}
		defer bs.Close()
		adapter = bs
	default:
		log.Fatal().Str("backend", cfg.StoreBackend).Msg("unknown STORE_BACKEND")
	}

	r, err := repo.New(adapter)
	if err != nil {
		log.Fatal().Err(err).Msg("seed")
	}
	log.Info().Str("backend", cfg.StoreBackend).Msg("store ready")

	b, err := booking.New(r, cfg.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Msg("booking")
	}

	h := handler.New(r, b, analytics.New(r), cfg.JWTSecret, log)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: h.Routes(cfg.Origin, cfg.UploadDir),
	}
	go func() {
		log.Info().Str("port", cfg.Port).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("http")
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	srv.Shutdown(ctx)
}
