// Package noop stands in for the execution journal when no database is
// configured.
package noop

import (
	"context"

	portsout "lendit/internal/application/ports/out"
	"lendit/internal/domain/entities"
	apperrors "lendit/internal/shared_kernel/errors"
)

type Journal struct{}

var _ portsout.ExecutionJournal = Journal{}

func (Journal) Enabled() bool { return false }

func (Journal) RecordTransaction(context.Context, entities.JournalEntry) *apperrors.AppError {
	return nil
}

func (Journal) RecordRateSnapshot(context.Context, []entities.JournalEntry) *apperrors.AppError {
	return nil
}

func (Journal) ListRecent(context.Context, int) ([]entities.JournalEntry, *apperrors.AppError) {
	return []entities.JournalEntry{}, nil
}
