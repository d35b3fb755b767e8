package use_cases

import (
	"context"

	"lendit/internal/application/dto"
	portsin "lendit/internal/application/ports/in"
	portsout "lendit/internal/application/ports/out"
	"lendit/internal/domain/entities"
	apperrors "lendit/internal/shared_kernel/errors"
)

const maxJournalListLimit = 500

type listJournalEntriesUseCase struct {
	journal      portsout.ExecutionJournal
	defaultLimit int
}

func NewListJournalEntriesUseCase(journal portsout.ExecutionJournal, defaultLimit int) portsin.ListJournalEntriesUseCase {
	if defaultLimit <= 0 || defaultLimit > maxJournalListLimit {
		defaultLimit = 50
	}

	return &listJournalEntriesUseCase{
		journal:      journal,
		defaultLimit: defaultLimit,
	}
}

func (u *listJournalEntriesUseCase) Execute(ctx context.Context, query dto.ListJournalEntriesQuery) (dto.ListJournalEntriesOutput, *apperrors.AppError) {
	limit := query.Limit
	switch {
	case limit < 0:
		return dto.ListJournalEntriesOutput{}, apperrors.NewValidation(
			"invalid_limit",
			"limit must not be negative",
			map[string]any{"field": "limit", "limit": limit},
		)
	case limit == 0:
		limit = u.defaultLimit
	case limit > maxJournalListLimit:
		limit = maxJournalListLimit
	}

	if u.journal == nil || !u.journal.Enabled() {
		return dto.ListJournalEntriesOutput{Entries: []entities.JournalEntry{}}, nil
	}

	entries, appErr := u.journal.ListRecent(ctx, limit)
	if appErr != nil {
		return dto.ListJournalEntriesOutput{}, appErr
	}
	if entries == nil {
		entries = []entities.JournalEntry{}
	}

	return dto.ListJournalEntriesOutput{Enabled: true, Entries: entries}, nil
}
