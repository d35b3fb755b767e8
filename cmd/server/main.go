package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"lendit/internal/application/dto"
	"lendit/internal/infrastructure/config"
	"lendit/internal/infrastructure/di"
	"lendit/internal/infrastructure/logger"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, cfgErr := config.LoadConfig()
	if cfgErr != nil {
		bootLogger := logger.New(logger.Config{})
		bootLogger.Error().
			Str("code", cfgErr.Code).
			Interface("metadata", cfgErr.Metadata).
			Msg(cfgErr.Message)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty, Output: os.Stdout})

	container, buildErr := di.Build(cfg, log)
	if buildErr != nil {
		log.Error().Err(buildErr).Msg("dependency wiring error")
		os.Exit(1)
	}
	defer func() {
		if err := container.Close(); err != nil {
			log.Warn().Err(err).Msg("database close warning")
		}
	}()

	log.Info().
		Str("network", container.Catalog.Network).
		Str("rpc_url", cfg.RPCURL).
		Int("rate_sources", len(container.Catalog.RateSources)).
		Bool("journal", cfg.JournalEnabled()).
		Msg("lendit configured")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if container.InitializePersistenceUseCase != nil {
		persistenceErr := container.InitializePersistenceUseCase.Execute(ctx, dto.InitializePersistenceCommand{
			ReadinessTimeout:       cfg.DBReadinessTimeout,
			ReadinessRetryInterval: cfg.DBReadinessRetryInterval,
		})
		if persistenceErr != nil {
			log.Error().
				Str("code", persistenceErr.Code).
				Interface("details", persistenceErr.Details).
				Msg(persistenceErr.Message)
			os.Exit(1)
		}
	}

	if container.RateWatchWorker.Enabled() {
		go container.RateWatchWorker.Start(ctx)
	}

	serverErrCh := make(chan error, 1)
	go func() {
		serverErrCh <- container.Server.Start()
	}()

	select {
	case err := <-serverErrCh:
		if err != nil {
			log.Error().Err(err).Msg("server startup failed")
			os.Exit(1)
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := container.Server.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("graceful shutdown failed")
			os.Exit(1)
		}

		if err := <-serverErrCh; err != nil {
			log.Error().Err(err).Msg("server stopped with error")
			os.Exit(1)
		}

		log.Info().Msg("server stopped")
	}
}
