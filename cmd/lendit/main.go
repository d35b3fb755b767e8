package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"lendit/internal/application/dto"
	portsin "lendit/internal/application/ports/in"
	"lendit/internal/infrastructure/config"
	"lendit/internal/infrastructure/di"
	"lendit/internal/infrastructure/logger"
	"lendit/internal/infrastructure/suikeys"
	apperrors "lendit/internal/shared_kernel/errors"

	"github.com/joho/godotenv"
)

const usage = `usage: lendit <command> [flags]

commands:
  rate                              best USDC lending rate across protocols
  preview  -direction D -amount A   assemble an unsigned deposit or withdraw
           [-account ADDR]
  deposit  -amount A                deposit USDC through the router
  withdraw -amount A                redeem shares for USDC
  snapshot                          record one rate snapshot in the journal
  journal  [-limit N]               recent journal entries
  address  [-generate]              signer address, or a fresh keypair
`

const (
	exitOK         = 0
	exitFailure    = 1
	exitUsageError = 2
)

type commandDeps struct {
	rates         portsin.FetchBestRateUseCase
	preview       portsin.PreviewLendingIntentUseCase
	submit        portsin.SubmitLendingTransactionUseCase
	snapshot      portsin.RecordRateSnapshotUseCase
	journal       portsin.ListJournalEntriesUseCase
	signerAddress string
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

type addressOutput struct {
	Address    string `json:"address"`
	PrivateKey string `json:"private_key,omitempty"`
}

func main() {
	os.Exit(execute())
}

func execute() int {
	_ = godotenv.Load()

	cfg, cfgErr := config.LoadConfig()
	if cfgErr != nil {
		writeJSON(os.Stdout, errorEnvelope{Error: errorBody{
			Code:    cfgErr.Code,
			Message: cfgErr.Message,
			Details: metadataDetails(cfgErr.Metadata),
		}})
		return exitFailure
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	container, buildErr := di.Build(cfg, log)
	if buildErr != nil {
		writeJSON(os.Stdout, errorEnvelope{Error: errorBody{Code: "startup_failed", Message: buildErr.Error()}})
		return exitFailure
	}
	defer func() {
		if err := container.Close(); err != nil {
			log.Warn().Err(err).Msg("database close warning")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if container.InitializePersistenceUseCase != nil {
		persistenceErr := container.InitializePersistenceUseCase.Execute(ctx, dto.InitializePersistenceCommand{
			ReadinessTimeout:       cfg.DBReadinessTimeout,
			ReadinessRetryInterval: cfg.DBReadinessRetryInterval,
		})
		if persistenceErr != nil {
			writeAppError(os.Stdout, persistenceErr)
			return exitFailure
		}
	}

	deps := commandDeps{
		rates:    container.FetchBestRateUseCase,
		preview:  container.PreviewLendingIntentUseCase,
		submit:   container.SubmitLendingTransactionUseCase,
		snapshot: container.RecordRateSnapshotUseCase,
		journal:  container.ListJournalEntriesUseCase,
	}
	if container.Wallet != nil {
		deps.signerAddress = container.Wallet.Address()
	}

	return run(ctx, os.Args[1:], deps, os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, deps commandDeps, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return exitUsageError
	}

	command, rest := args[0], args[1:]
	flags := flag.NewFlagSet(command, flag.ContinueOnError)
	flags.SetOutput(stderr)

	switch command {
	case "rate":
		if err := flags.Parse(rest); err != nil {
			return exitUsageError
		}
		output, appErr := deps.rates.Execute(ctx, dto.FetchBestRateQuery{})
		return respond(stdout, output, appErr)

	case "preview":
		direction := flags.String("direction", "", "deposit or withdraw")
		account := flags.String("account", deps.signerAddress, "owner address")
		amount := flags.String("amount", "", "decimal USDC amount")
		if err := flags.Parse(rest); err != nil {
			return exitUsageError
		}
		output, appErr := deps.preview.Execute(ctx, dto.LendingCommand{
			Direction: *direction,
			Account:   *account,
			Amount:    *amount,
		})
		return respond(stdout, output, appErr)

	case "deposit", "withdraw":
		amount := flags.String("amount", "", "decimal USDC amount")
		if err := flags.Parse(rest); err != nil {
			return exitUsageError
		}
		output, appErr := deps.submit.Execute(ctx, dto.LendingCommand{
			Direction: command,
			Account:   deps.signerAddress,
			Amount:    *amount,
		})
		return respond(stdout, output, appErr)

	case "snapshot":
		if err := flags.Parse(rest); err != nil {
			return exitUsageError
		}
		output, appErr := deps.snapshot.Execute(ctx, dto.RecordRateSnapshotCommand{})
		return respond(stdout, output, appErr)

	case "journal":
		limit := flags.Int("limit", 0, "maximum entries, 0 for the configured default")
		if err := flags.Parse(rest); err != nil {
			return exitUsageError
		}
		output, appErr := deps.journal.Execute(ctx, dto.ListJournalEntriesQuery{Limit: *limit})
		return respond(stdout, output, appErr)

	case "address":
		generate := flags.Bool("generate", false, "print a new keypair instead of the configured signer")
		if err := flags.Parse(rest); err != nil {
			return exitUsageError
		}
		output, appErr := addressCommand(*generate, deps.signerAddress)
		return respond(stdout, output, appErr)

	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n%s", command, usage)
		return exitUsageError
	}
}

func addressCommand(generate bool, signerAddress string) (addressOutput, *apperrors.AppError) {
	if generate {
		keypair, keyErr := suikeys.GenerateKeypair()
		if keyErr != nil {
			return addressOutput{}, apperrors.NewInternal(string(keyErr.Code), keyErr.Message, nil)
		}
		return addressOutput{Address: keypair.Address(), PrivateKey: keypair.ExportPrivateKey()}, nil
	}

	if signerAddress == "" {
		return addressOutput{}, apperrors.NewValidation(
			"wallet_not_connected",
			"SUI_PRIVATE_KEY is not configured",
			nil,
		)
	}
	return addressOutput{Address: signerAddress}, nil
}

func respond(stdout io.Writer, output any, appErr *apperrors.AppError) int {
	if appErr != nil {
		writeAppError(stdout, appErr)
		if appErr.Is(apperrors.TypeValidation) {
			return exitUsageError
		}
		return exitFailure
	}

	writeJSON(stdout, output)
	return exitOK
}

func writeAppError(w io.Writer, appErr *apperrors.AppError) {
	writeJSON(w, errorEnvelope{Error: errorBody{
		Code:    appErr.Code,
		Message: appErr.Message,
		Details: appErr.Details,
	}})
}

func writeJSON(w io.Writer, payload any) {
	encoded, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		fmt.Fprintln(w, `{"error":{"code":"result_encode_failed","message":"failed to encode result"}}`)
		return
	}
	fmt.Fprintln(w, string(encoded))
}

func metadataDetails(metadata map[string]string) map[string]any {
	if len(metadata) == 0 {
		return nil
	}
	details := make(map[string]any, len(metadata))
	for key, value := range metadata {
		details[key] = value
	}
	return details
}
