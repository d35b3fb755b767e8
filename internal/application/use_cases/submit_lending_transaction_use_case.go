package use_cases

import (
	"context"

	"lendit/internal/application/dto"
	portsin "lendit/internal/application/ports/in"
	portsout "lendit/internal/application/ports/out"
	"lendit/internal/domain/catalog"
	"lendit/internal/domain/entities"
	valueobjects "lendit/internal/domain/value_objects"
	apperrors "lendit/internal/shared_kernel/errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type submitLendingTransactionUseCase struct {
	assembler lendingIntentAssembler
	wallet    portsout.WalletGateway
	journal   portsout.ExecutionJournal
	clock     Clock
	logger    zerolog.Logger
}

// NewSubmitLendingTransactionUseCase accepts a nil wallet; submissions then
// fail validation as if no wallet were connected.
func NewSubmitLendingTransactionUseCase(
	lenditCatalog catalog.Catalog,
	ledger portsout.LedgerGateway,
	wallet portsout.WalletGateway,
	journal portsout.ExecutionJournal,
	clock Clock,
	logger zerolog.Logger,
) portsin.SubmitLendingTransactionUseCase {
	if clock == nil {
		clock = NewSystemClock()
	}

	return &submitLendingTransactionUseCase{
		assembler: lendingIntentAssembler{catalog: lenditCatalog, ledger: ledger},
		wallet:    wallet,
		journal:   journal,
		clock:     clock,
		logger:    logger.With().Str("component", "transaction_builder").Logger(),
	}
}

func (u *submitLendingTransactionUseCase) Execute(ctx context.Context, command dto.LendingCommand) (dto.SubmitLendingTransactionOutput, *apperrors.AppError) {
	run := &executionRun{
		stage:  valueobjects.StageIdle,
		logger: u.logger.With().Str("run_id", uuid.NewString()).Logger(),
	}

	run.advance(valueobjects.StageValidating)
	request, appErr := u.assembler.validate(command)
	if appErr != nil {
		return u.fail(ctx, run, appErr)
	}
	run.request = request

	if appErr := u.checkSigner(request.account); appErr != nil {
		return u.fail(ctx, run, appErr)
	}

	run.advance(valueobjects.StageFetchingCoins)
	coins, appErr := u.assembler.fetchCoins(ctx, request)
	if appErr != nil {
		return u.fail(ctx, run, appErr)
	}

	run.advance(valueobjects.StageAssembling)
	intent, appErr := u.assembler.assemble(request, coins)
	if appErr != nil {
		return u.fail(ctx, run, appErr)
	}

	run.advance(valueobjects.StageSubmitting)
	result, appErr := u.wallet.SignAndExecute(ctx, intent)
	if appErr != nil {
		return u.fail(ctx, run, appErr)
	}

	run.digest = result.Digest
	run.advance(valueobjects.StageSucceeded)
	u.record(ctx, run, "")

	return dto.SubmitLendingTransactionOutput{
		Digest:          result.Digest,
		Stage:           run.stage.String(),
		Direction:       request.direction.String(),
		Account:         request.account,
		AmountBaseUnits: request.amount.BaseUnits,
	}, nil
}

func (u *submitLendingTransactionUseCase) checkSigner(account string) *apperrors.AppError {
	if u.wallet == nil {
		return apperrors.NewValidation(
			"wallet_not_connected",
			"wallet not connected",
			map[string]any{"field": "account"},
		)
	}

	if signer := u.wallet.Address(); signer != account {
		return apperrors.NewValidation(
			"account_signer_mismatch",
			"account does not match the connected wallet",
			map[string]any{"account": account, "signer": signer},
		)
	}

	return nil
}

func (u *submitLendingTransactionUseCase) fail(
	ctx context.Context,
	run *executionRun,
	appErr *apperrors.AppError,
) (dto.SubmitLendingTransactionOutput, *apperrors.AppError) {
	failedAt := run.stage
	run.advance(valueobjects.StageFailed)
	run.logger.Warn().
		Str("failed_at", failedAt.String()).
		Str("code", appErr.Code).
		Str("error", appErr.Message).
		Msg("lending transaction failed")

	u.record(ctx, run, appErr.Message)

	return dto.SubmitLendingTransactionOutput{}, appErr
}

// record is write-behind: a journal failure is logged and never changes the
// outcome returned to the caller.
func (u *submitLendingTransactionUseCase) record(ctx context.Context, run *executionRun, errorMessage string) {
	if u.journal == nil || !u.journal.Enabled() {
		return
	}

	entry := entities.JournalEntry{
		ID:              uuid.New(),
		Kind:            entities.JournalKindTransaction,
		Direction:       run.request.direction,
		Account:         run.request.account,
		CoinType:        run.request.coinType,
		AmountBaseUnits: run.request.amount.BaseUnits,
		Stage:           run.stage,
		Digest:          run.digest,
		ErrorMessage:    errorMessage,
		CreatedAt:       u.clock.NowUTC(),
	}

	if appErr := u.journal.RecordTransaction(ctx, entry); appErr != nil {
		run.logger.Warn().Str("code", appErr.Code).Str("error", appErr.Message).Msg("journal write failed")
	}
}

type executionRun struct {
	stage   valueobjects.ExecutionStage
	request lendingRequest
	digest  string
	logger  zerolog.Logger
}

func (r *executionRun) advance(next valueobjects.ExecutionStage) {
	level := zerolog.DebugLevel
	if next.Terminal() {
		level = zerolog.InfoLevel
	}

	r.logger.WithLevel(level).Str("from", r.stage.String()).Str("to", next.String()).Str("digest", r.digest).Msg("stage changed")
	r.stage = next
}
