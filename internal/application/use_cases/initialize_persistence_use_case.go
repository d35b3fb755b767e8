package use_cases

import (
	"context"
	"time"

	"lendit/internal/application/dto"
	portsin "lendit/internal/application/ports/in"
	portsout "lendit/internal/application/ports/out"
	apperrors "lendit/internal/shared_kernel/errors"

	"github.com/rs/zerolog"
)

type initializePersistenceUseCase struct {
	gateway portsout.PersistenceBootstrapGateway
	logger  zerolog.Logger
}

func NewInitializePersistenceUseCase(gateway portsout.PersistenceBootstrapGateway, logger zerolog.Logger) portsin.InitializePersistenceUseCase {
	return &initializePersistenceUseCase{
		gateway: gateway,
		logger:  logger.With().Str("component", "journal_bootstrap").Logger(),
	}
}

// Execute waits for the journal database, then applies pending migrations.
func (u *initializePersistenceUseCase) Execute(ctx context.Context, command dto.InitializePersistenceCommand) *apperrors.AppError {
	if u.gateway == nil {
		return apperrors.NewInternal("persistence_gateway_missing", "persistence gateway is required", nil)
	}
	if command.ReadinessTimeout <= 0 {
		return apperrors.NewValidation("readiness_timeout_invalid", "readiness timeout must be greater than zero", nil)
	}
	if command.ReadinessRetryInterval <= 0 {
		return apperrors.NewValidation("readiness_retry_interval_invalid", "readiness retry interval must be greater than zero", nil)
	}

	attempts, appErr := u.awaitReadiness(ctx, command)
	if appErr != nil {
		return appErr
	}
	u.logger.Debug().Int("attempts", attempts).Msg("journal database ready")

	if appErr := u.gateway.RunMigrations(ctx); appErr != nil {
		return appErr
	}
	u.logger.Info().Msg("journal migrations applied")

	return nil
}

func (u *initializePersistenceUseCase) awaitReadiness(ctx context.Context, command dto.InitializePersistenceCommand) (int, *apperrors.AppError) {
	readinessCtx, cancel := context.WithTimeout(ctx, command.ReadinessTimeout)
	defer cancel()

	attempts := 0
	for {
		attempts++
		lastErr := u.gateway.CheckReadiness(readinessCtx)
		if lastErr == nil {
			return attempts, nil
		}
		u.logger.Debug().Int("attempt", attempts).Str("code", lastErr.Code).Msg("journal database not ready")

		timer := time.NewTimer(command.ReadinessRetryInterval)
		select {
		case <-readinessCtx.Done():
			timer.Stop()
			return attempts, apperrors.NewInternal(
				"db_readiness_timeout",
				"database readiness check timed out",
				map[string]any{
					"attempts":  attempts,
					"timeout":   command.ReadinessTimeout.String(),
					"last_code": lastErr.Code,
				},
			)
		case <-timer.C:
		}
	}
}
