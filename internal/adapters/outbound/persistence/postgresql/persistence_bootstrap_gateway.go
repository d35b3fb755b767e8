package postgresql

import (
	"context"
	"database/sql"
	stderrors "errors"

	portsout "lendit/internal/application/ports/out"
	"lendit/internal/adapters/outbound/persistence/postgresql/migrations"
	apperrors "lendit/internal/shared_kernel/errors"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog"

	_ "github.com/jackc/pgx/v5/stdlib"
)

type PersistenceBootstrapGateway struct {
	databaseURL    string
	databaseTarget string
	logger         zerolog.Logger
}

var _ portsout.PersistenceBootstrapGateway = (*PersistenceBootstrapGateway)(nil)

// NewPersistenceBootstrapGateway takes databaseTarget as a credential-free
// label for logs.
func NewPersistenceBootstrapGateway(databaseURL, databaseTarget string, logger zerolog.Logger) *PersistenceBootstrapGateway {
	return &PersistenceBootstrapGateway{
		databaseURL:    databaseURL,
		databaseTarget: databaseTarget,
		logger:         logger.With().Str("component", "journal_bootstrap").Str("database_target", databaseTarget).Logger(),
	}
}

func (g *PersistenceBootstrapGateway) CheckReadiness(ctx context.Context) *apperrors.AppError {
	db, err := sql.Open("pgx", g.databaseURL)
	if err != nil {
		g.logger.Warn().Err(err).Msg("database connection initialization failed")
		return apperrors.NewInternal(
			"db_connect_init_failed",
			"failed to initialize database connection",
			map[string]any{"database_target": g.databaseTarget},
		)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		g.logger.Debug().Err(err).Msg("database readiness check failed")
		return apperrors.NewInternal(
			"db_connect_failed",
			"failed to connect to database",
			map[string]any{"database_target": g.databaseTarget},
		)
	}

	return nil
}

func (g *PersistenceBootstrapGateway) RunMigrations(ctx context.Context) *apperrors.AppError {
	if err := ctx.Err(); err != nil {
		return apperrors.NewInternal(
			"db_migration_context_canceled",
			"migration context canceled",
			map[string]any{"database_target": g.databaseTarget},
		)
	}

	source, err := iofs.New(migrations.Files, ".")
	if err != nil {
		return apperrors.NewInternal(
			"db_migration_source_failed",
			"failed to open embedded migrations",
			map[string]any{"error": err.Error()},
		)
	}

	migrationRunner, err := migrate.NewWithSourceInstance("iofs", source, g.databaseURL)
	if err != nil {
		return apperrors.NewInternal(
			"db_migration_setup_failed",
			"failed to initialize migration runner",
			map[string]any{"database_target": g.databaseTarget},
		)
	}

	defer func() {
		sourceErr, dbErr := migrationRunner.Close()
		if sourceErr != nil {
			g.logger.Warn().Err(sourceErr).Msg("migration source close warning")
		}
		if dbErr != nil {
			g.logger.Warn().Err(dbErr).Msg("migration db close warning")
		}
	}()

	err = migrationRunner.Up()
	if stderrors.Is(err, migrate.ErrNoChange) {
		g.logger.Debug().Msg("database migrations up to date")
		return nil
	}
	if err != nil {
		g.logger.Error().Err(err).Msg("database migrations failed")
		return apperrors.NewInternal(
			"db_migration_apply_failed",
			"failed to apply migrations",
			map[string]any{"database_target": g.databaseTarget},
		)
	}

	g.logger.Info().Msg("database migrations applied")
	return nil
}
