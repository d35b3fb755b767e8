// Package ratewatch records a rate snapshot on a cron schedule.
package ratewatch

import (
	"context"
	"time"

	"lendit/internal/application/dto"
	portsin "lendit/internal/application/ports/in"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

type Worker struct {
	enabled  bool
	schedule string
	useCase  portsin.RecordRateSnapshotUseCase
	logger   zerolog.Logger
}

func NewWorker(
	enabled bool,
	schedule string,
	useCase portsin.RecordRateSnapshotUseCase,
	logger zerolog.Logger,
) *Worker {
	return &Worker{
		enabled:  enabled,
		schedule: schedule,
		useCase:  useCase,
		logger:   logger.With().Str("component", "rate_watch").Logger(),
	}
}

func (w *Worker) Enabled() bool {
	return w != nil && w.enabled
}

// Start takes one snapshot immediately, then one per schedule tick until ctx
// is cancelled. It waits for an in-flight snapshot before returning.
func (w *Worker) Start(ctx context.Context) {
	if w == nil || !w.enabled || w.useCase == nil {
		return
	}

	scheduler := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	if _, err := scheduler.AddFunc(w.schedule, func() { w.runCycle(ctx) }); err != nil {
		w.logger.Error().Err(err).Str("schedule", w.schedule).Msg("rate snapshot schedule rejected")
		return
	}

	w.logger.Info().Str("schedule", w.schedule).Msg("rate snapshot worker started")

	w.runCycle(ctx)
	scheduler.Start()

	<-ctx.Done()
	<-scheduler.Stop().Done()
	w.logger.Info().Msg("rate snapshot worker stopped")
}

func (w *Worker) runCycle(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	startedAt := time.Now()
	output, appErr := w.useCase.Execute(ctx, dto.RecordRateSnapshotCommand{})
	if appErr != nil {
		w.logger.Error().
			Str("code", appErr.Code).
			Str("error", appErr.Message).
			Interface("details", appErr.Details).
			Msg("rate snapshot failed")
		return
	}

	w.logger.Info().
		Int("recorded", output.Recorded).
		Str("best_protocol", output.BestProtocol).
		Str("label", output.Label).
		Int64("latency_ms", time.Since(startedAt).Milliseconds()).
		Msg("rate snapshot recorded")
}
