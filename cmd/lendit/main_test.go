//go:build !integration

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"lendit/internal/application/dto"
	"lendit/internal/infrastructure/suikeys"
	apperrors "lendit/internal/shared_kernel/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const signer = "0x7d20dcdb2bca4f508ea9613994683eb4e76e9c4ed371169677c1be02aaf0b58e"

type stubRates struct{}

func (stubRates) Execute(context.Context, dto.FetchBestRateQuery) (dto.BestRateOutput, *apperrors.AppError) {
	return dto.BestRateOutput{BestProtocol: "suilend", Label: "6.10%"}, nil
}

type stubPreview struct {
	last dto.LendingCommand
}

func (s *stubPreview) Execute(_ context.Context, command dto.LendingCommand) (dto.LendingIntentOutput, *apperrors.AppError) {
	s.last = command
	return dto.LendingIntentOutput{Direction: command.Direction, Account: command.Account, Amount: command.Amount}, nil
}

type stubSubmit struct {
	last   dto.LendingCommand
	appErr *apperrors.AppError
}

func (s *stubSubmit) Execute(_ context.Context, command dto.LendingCommand) (dto.SubmitLendingTransactionOutput, *apperrors.AppError) {
	s.last = command
	if s.appErr != nil {
		return dto.SubmitLendingTransactionOutput{}, s.appErr
	}
	return dto.SubmitLendingTransactionOutput{Digest: "5Hs1bRk4", Stage: "succeeded", Direction: command.Direction}, nil
}

type stubSnapshot struct{}

func (stubSnapshot) Execute(context.Context, dto.RecordRateSnapshotCommand) (dto.RecordRateSnapshotOutput, *apperrors.AppError) {
	return dto.RecordRateSnapshotOutput{}, apperrors.NewConflict("journal_disabled", "rate snapshots require the execution journal", nil)
}

type stubJournal struct {
	last dto.ListJournalEntriesQuery
}

func (s *stubJournal) Execute(_ context.Context, query dto.ListJournalEntriesQuery) (dto.ListJournalEntriesOutput, *apperrors.AppError) {
	s.last = query
	return dto.ListJournalEntriesOutput{Enabled: true}, nil
}

type harness struct {
	preview *stubPreview
	submit  *stubSubmit
	journal *stubJournal
	deps    commandDeps
}

func newHarness() *harness {
	h := &harness{preview: &stubPreview{}, submit: &stubSubmit{}, journal: &stubJournal{}}
	h.deps = commandDeps{
		rates:         stubRates{},
		preview:       h.preview,
		submit:        h.submit,
		snapshot:      stubSnapshot{},
		journal:       h.journal,
		signerAddress: signer,
	}
	return h
}

func runCLI(t *testing.T, deps commandDeps, args ...string) (int, map[string]any, string) {
	t.Helper()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	code := run(context.Background(), args, deps, stdout, stderr)

	payload := map[string]any{}
	if stdout.Len() > 0 {
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &payload))
	}
	return code, payload, stderr.String()
}

func TestRunRate(t *testing.T) {
	code, payload, _ := runCLI(t, newHarness().deps, "rate")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "6.10%", payload["label"])
	assert.Equal(t, "suilend", payload["best_protocol"])
}

func TestRunPreviewDefaultsAccountToSigner(t *testing.T) {
	h := newHarness()
	code, _, _ := runCLI(t, h.deps, "preview", "-direction", "withdraw", "-amount", "2.5")

	assert.Equal(t, exitOK, code)
	assert.Equal(t, dto.LendingCommand{Direction: "withdraw", Account: signer, Amount: "2.5"}, h.preview.last)
}

func TestRunDepositUsesSigner(t *testing.T) {
	h := newHarness()
	code, payload, _ := runCLI(t, h.deps, "deposit", "-amount", "100")

	assert.Equal(t, exitOK, code)
	assert.Equal(t, "5Hs1bRk4", payload["digest"])
	assert.Equal(t, dto.LendingCommand{Direction: "deposit", Account: signer, Amount: "100"}, h.submit.last)
}

func TestRunSubmissionErrorKeepsLedgerMessage(t *testing.T) {
	h := newHarness()
	h.submit.appErr = apperrors.NewSubmission("transaction_submission_failed", "MoveAbort in 1st command, abort code: 3", nil)

	code, payload, _ := runCLI(t, h.deps, "withdraw", "-amount", "1")

	assert.Equal(t, exitFailure, code)
	envelope := payload["error"].(map[string]any)
	assert.Equal(t, "transaction_submission_failed", envelope["code"])
	assert.Equal(t, "MoveAbort in 1st command, abort code: 3", envelope["message"])
}

func TestRunValidationErrorExitsWithUsageCode(t *testing.T) {
	h := newHarness()
	h.submit.appErr = apperrors.NewValidation("invalid_amount", "amount must be positive", nil)

	code, payload, _ := runCLI(t, h.deps, "deposit", "-amount", "0")

	assert.Equal(t, exitUsageError, code)
	assert.Equal(t, "invalid_amount", payload["error"].(map[string]any)["code"])
}

func TestRunSnapshotWithoutJournal(t *testing.T) {
	code, payload, _ := runCLI(t, newHarness().deps, "snapshot")

	assert.Equal(t, exitFailure, code)
	assert.Equal(t, "journal_disabled", payload["error"].(map[string]any)["code"])
}

func TestRunJournalPassesLimit(t *testing.T) {
	h := newHarness()
	code, payload, _ := runCLI(t, h.deps, "journal", "-limit", "7")

	assert.Equal(t, exitOK, code)
	assert.Equal(t, 7, h.journal.last.Limit)
	assert.Equal(t, true, payload["enabled"])
}

func TestRunAddress(t *testing.T) {
	code, payload, _ := runCLI(t, newHarness().deps, "address")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, signer, payload["address"])

	noSigner := newHarness().deps
	noSigner.signerAddress = ""
	code, payload, _ = runCLI(t, noSigner, "address")
	assert.Equal(t, exitUsageError, code)
	assert.Equal(t, "wallet_not_connected", payload["error"].(map[string]any)["code"])
}

func TestRunAddressGenerateRoundTrips(t *testing.T) {
	code, payload, _ := runCLI(t, newHarness().deps, "address", "-generate")
	require.Equal(t, exitOK, code)

	privateKey, ok := payload["private_key"].(string)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(privateKey, "suiprivkey1"))

	keypair, keyErr := suikeys.ParsePrivateKey(privateKey)
	require.Nil(t, keyErr)
	assert.Equal(t, keypair.Address(), payload["address"])
}

func TestRunUsageErrors(t *testing.T) {
	code, _, stderr := runCLI(t, newHarness().deps)
	assert.Equal(t, exitUsageError, code)
	assert.Contains(t, stderr, "usage: lendit")

	code, _, stderr = runCLI(t, newHarness().deps, "borrow")
	assert.Equal(t, exitUsageError, code)
	assert.Contains(t, stderr, `unknown command "borrow"`)

	code, _, _ = runCLI(t, newHarness().deps, "deposit", "-bogus")
	assert.Equal(t, exitUsageError, code)
}
