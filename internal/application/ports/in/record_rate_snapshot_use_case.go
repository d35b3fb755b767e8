package in

import (
	"context"

	"lendit/internal/application/dto"
	apperrors "lendit/internal/shared_kernel/errors"
)

type RecordRateSnapshotUseCase interface {
	Execute(ctx context.Context, command dto.RecordRateSnapshotCommand) (dto.RecordRateSnapshotOutput, *apperrors.AppError)
}
