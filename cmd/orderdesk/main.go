package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"orderdesk/internal/config"
	"orderdesk/internal/store"
	"orderdesk/internal/transport"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	log.Logger = log.With().Str("service", "orderdesk").Logger()

	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	level, err := zerolog.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Str("level", cfg.App.LogLevel).Msg("Invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	log.Info().Str("data_dir", cfg.Storage.DataDir).Msg("Orderdesk starting...")

	st := store.New(cfg.Storage.DataDir)
	// Recovery barrier: no traffic until every collection is loaded (or
	// defaulted and written back). A failure here means the data dir is
	// unusable even for writing defaults, so refuse to start.
	if err := st.Initialize(); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize record store")
	}

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      transport.NewRouter(st),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.App.Port).Msg("Starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan
	log.Info().Msg("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Shutdown failed")
	}

	// Final flush: with no in-flight requests this is a no-op unless an
	// earlier write failed and the medium has since recovered.
	if err := st.FlushAll(); err != nil {
		log.Error().Err(err).Msg("Final flush failed")
	}

	log.Info().Msg("Server stopped")
}
