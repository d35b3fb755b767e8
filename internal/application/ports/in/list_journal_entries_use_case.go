package in

import (
	"context"

	"lendit/internal/application/dto"
	apperrors "lendit/internal/shared_kernel/errors"
)

type ListJournalEntriesUseCase interface {
	Execute(ctx context.Context, query dto.ListJournalEntriesQuery) (dto.ListJournalEntriesOutput, *apperrors.AppError)
}
