package out

import (
	"context"

	"lendit/internal/domain/entities"
	apperrors "lendit/internal/shared_kernel/errors"
)

type ExecutionJournal interface {
	Enabled() bool
	RecordTransaction(ctx context.Context, entry entities.JournalEntry) *apperrors.AppError
	RecordRateSnapshot(ctx context.Context, entries []entities.JournalEntry) *apperrors.AppError
	ListRecent(ctx context.Context, limit int) ([]entities.JournalEntry, *apperrors.AppError)
}
