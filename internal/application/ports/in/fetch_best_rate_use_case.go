package in

import (
	"context"

	"lendit/internal/application/dto"
	apperrors "lendit/internal/shared_kernel/errors"
)

type FetchBestRateUseCase interface {
	Execute(ctx context.Context, query dto.FetchBestRateQuery) (dto.BestRateOutput, *apperrors.AppError)
}
