package in

import (
	"context"

	"lendit/internal/application/dto"
	apperrors "lendit/internal/shared_kernel/errors"
)

type SubmitLendingTransactionUseCase interface {
	Execute(ctx context.Context, command dto.LendingCommand) (dto.SubmitLendingTransactionOutput, *apperrors.AppError)
}
