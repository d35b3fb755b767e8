package di

import (
	"database/sql"
	"fmt"

	"lendit/internal/adapters/inbound/http/controllers"
	httpRouter "lendit/internal/adapters/inbound/http/router"
	"lendit/internal/adapters/outbound/docs"
	"lendit/internal/adapters/outbound/ledger/suirpc"
	"lendit/internal/adapters/outbound/persistence/noop"
	"lendit/internal/adapters/outbound/persistence/postgresql"
	postgresqljournal "lendit/internal/adapters/outbound/persistence/postgresql/journal"
	postgresqlshared "lendit/internal/adapters/outbound/persistence/postgresql/shared"
	"lendit/internal/adapters/outbound/wallet/ephemeral"
	"lendit/internal/adapters/outbound/wallet/keystore"
	portsin "lendit/internal/application/ports/in"
	portsout "lendit/internal/application/ports/out"
	"lendit/internal/application/use_cases"
	"lendit/internal/domain/catalog"
	"lendit/internal/infrastructure/config"
	"lendit/internal/infrastructure/httpserver"
	"lendit/internal/infrastructure/ratewatch"

	"github.com/rs/zerolog"
)

type Container struct {
	Catalog  catalog.Catalog
	Database *sql.DB
	Server   *httpserver.Server
	// Wallet is nil unless SUI_PRIVATE_KEY is configured.
	Wallet portsout.WalletGateway
	// InitializePersistenceUseCase is nil when no journal database is
	// configured.
	InitializePersistenceUseCase portsin.InitializePersistenceUseCase
	RateWatchWorker              *ratewatch.Worker

	FetchBestRateUseCase            portsin.FetchBestRateUseCase
	PreviewLendingIntentUseCase     portsin.PreviewLendingIntentUseCase
	SubmitLendingTransactionUseCase portsin.SubmitLendingTransactionUseCase
	RecordRateSnapshotUseCase       portsin.RecordRateSnapshotUseCase
	ListJournalEntriesUseCase       portsin.ListJournalEntriesUseCase
}

func Build(cfg config.Config, logger zerolog.Logger) (Container, error) {
	lenditCatalog, catalogErr := loadCatalog(cfg.CatalogPath)
	if catalogErr != nil {
		return Container{}, catalogErr
	}

	ledgerGateway := suirpc.NewGateway(suirpc.Config{
		RPCURL:     cfg.RPCURL,
		RPCTimeout: cfg.RPCTimeout,
		Logger:     logger,
	})

	wallet, walletErr := buildWallet(cfg, ledgerGateway, logger)
	if walletErr != nil {
		return Container{}, walletErr
	}

	container := Container{Catalog: lenditCatalog}

	var journal portsout.ExecutionJournal = noop.Journal{}
	if cfg.JournalEnabled() {
		databasePool, err := postgresqlshared.NewDatabasePool(cfg.DatabaseURL, logger)
		if err != nil {
			return Container{}, fmt.Errorf("open journal database: %w", err)
		}
		container.Database = databasePool
		journal = postgresqljournal.NewRepository(databasePool)

		persistenceGateway := postgresql.NewPersistenceBootstrapGateway(cfg.DatabaseURL, cfg.DatabaseTarget, logger)
		container.InitializePersistenceUseCase = use_cases.NewInitializePersistenceUseCase(persistenceGateway, logger)
	}

	clock := use_cases.NewSystemClock()
	fetchBestRateUseCase := use_cases.NewFetchBestRateUseCase(
		lenditCatalog,
		ledgerGateway,
		ephemeral.NewSenderProvider(),
		clock,
		logger,
	)
	previewUseCase := use_cases.NewPreviewLendingIntentUseCase(lenditCatalog, ledgerGateway)
	var walletPort portsout.WalletGateway
	if wallet != nil {
		walletPort = wallet
		container.Wallet = wallet
	}
	submitUseCase := use_cases.NewSubmitLendingTransactionUseCase(
		lenditCatalog,
		ledgerGateway,
		walletPort,
		journal,
		clock,
		logger,
	)
	recordRateSnapshotUseCase := use_cases.NewRecordRateSnapshotUseCase(fetchBestRateUseCase, journal)
	listJournalEntriesUseCase := use_cases.NewListJournalEntriesUseCase(journal, cfg.JournalListLimit)

	container.FetchBestRateUseCase = fetchBestRateUseCase
	container.PreviewLendingIntentUseCase = previewUseCase
	container.SubmitLendingTransactionUseCase = submitUseCase
	container.RecordRateSnapshotUseCase = recordRateSnapshotUseCase
	container.ListJournalEntriesUseCase = listJournalEntriesUseCase
	container.RateWatchWorker = ratewatch.NewWorker(
		journal.Enabled(),
		cfg.RateSnapshotSchedule,
		recordRateSnapshotUseCase,
		logger,
	)

	healthUseCase := use_cases.NewGetHealthUseCase(lenditCatalog.Network, journal)
	openAPIUseCase := use_cases.NewGetOpenAPISpecUseCase(docs.NewFileOpenAPISpecReadModel(cfg.OpenAPISpecPath))

	router := httpRouter.New(httpRouter.Dependencies{
		HealthController:  controllers.NewHealthController(healthUseCase, logger),
		SwaggerController: controllers.NewSwaggerController(openAPIUseCase, logger),
		RatesController:   controllers.NewRatesController(fetchBestRateUseCase, logger),
		IntentsController: controllers.NewIntentsController(previewUseCase, logger),
		JournalController: controllers.NewJournalController(listJournalEntriesUseCase, logger),
	})
	container.Server = httpserver.New(cfg.Address(), router, logger)

	return container, nil
}

func (c Container) Close() error {
	if c.Database == nil {
		return nil
	}
	return c.Database.Close()
}

func loadCatalog(path string) (catalog.Catalog, error) {
	if path == "" {
		lenditCatalog := catalog.Mainnet()
		if appErr := lenditCatalog.Validate(); appErr != nil {
			return catalog.Catalog{}, fmt.Errorf("built-in catalog invalid: %s", appErr.Message)
		}
		return lenditCatalog, nil
	}

	lenditCatalog, appErr := catalog.LoadFile(path)
	if appErr != nil {
		return catalog.Catalog{}, fmt.Errorf("load catalog %s: %s (%s)", path, appErr.Message, appErr.Code)
	}
	return lenditCatalog, nil
}

func buildWallet(cfg config.Config, ledger keystore.Ledger, logger zerolog.Logger) (*keystore.Gateway, error) {
	if !cfg.SignerConfigured() {
		return nil, nil
	}

	wallet, appErr := keystore.NewGateway(keystore.Config{
		PrivateKey: cfg.PrivateKey,
		GasBudget:  cfg.GasBudget,
	}, ledger, logger)
	if appErr != nil {
		return nil, fmt.Errorf("load signer: %s (%s)", appErr.Message, appErr.Code)
	}
	return wallet, nil
}
