package in

import (
	"context"

	"lendit/internal/application/dto"
	apperrors "lendit/internal/shared_kernel/errors"
)

type PreviewLendingIntentUseCase interface {
	Execute(ctx context.Context, command dto.LendingCommand) (dto.LendingIntentOutput, *apperrors.AppError)
}
