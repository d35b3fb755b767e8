package in

import (
	"context"

	"lendit/internal/application/dto"
	apperrors "lendit/internal/shared_kernel/errors"
)

type GetHealthUseCase interface {
	Execute(ctx context.Context, command dto.GetHealthCommand) (dto.HealthOutput, *apperrors.AppError)
}
