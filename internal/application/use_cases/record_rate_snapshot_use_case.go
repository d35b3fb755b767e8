package use_cases

import (
	"context"

	"lendit/internal/application/dto"
	portsin "lendit/internal/application/ports/in"
	portsout "lendit/internal/application/ports/out"
	"lendit/internal/domain/entities"
	apperrors "lendit/internal/shared_kernel/errors"

	"github.com/google/uuid"
)

type recordRateSnapshotUseCase struct {
	oracle  portsin.FetchBestRateUseCase
	journal portsout.ExecutionJournal
}

func NewRecordRateSnapshotUseCase(oracle portsin.FetchBestRateUseCase, journal portsout.ExecutionJournal) portsin.RecordRateSnapshotUseCase {
	return &recordRateSnapshotUseCase{
		oracle:  oracle,
		journal: journal,
	}
}

func (u *recordRateSnapshotUseCase) Execute(ctx context.Context, _ dto.RecordRateSnapshotCommand) (dto.RecordRateSnapshotOutput, *apperrors.AppError) {
	if u.journal == nil || !u.journal.Enabled() {
		return dto.RecordRateSnapshotOutput{}, apperrors.NewConflict(
			"journal_disabled",
			"rate snapshots require the execution journal",
			nil,
		)
	}

	rates, appErr := u.oracle.Execute(ctx, dto.FetchBestRateQuery{})
	if appErr != nil {
		return dto.RecordRateSnapshotOutput{}, appErr
	}

	entries := make([]entities.JournalEntry, 0, len(rates.Quotes))
	for _, quote := range rates.Quotes {
		entries = append(entries, entities.JournalEntry{
			ID:           uuid.New(),
			Kind:         entities.JournalKindRateSnapshot,
			Protocol:     quote.Protocol,
			RateRaw:      quote.Raw,
			Available:    quote.Available,
			ErrorMessage: quote.Reason,
			CreatedAt:    rates.QuotedAt,
		})
	}

	if appErr := u.journal.RecordRateSnapshot(ctx, entries); appErr != nil {
		return dto.RecordRateSnapshotOutput{}, appErr
	}

	return dto.RecordRateSnapshotOutput{
		Recorded:     len(entries),
		BestProtocol: rates.BestProtocol,
		Label:        rates.Label,
	}, nil
}
