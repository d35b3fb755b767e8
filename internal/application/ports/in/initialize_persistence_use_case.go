package in

import (
	"context"

	"lendit/internal/application/dto"
	apperrors "lendit/internal/shared_kernel/errors"
)

type InitializePersistenceUseCase interface {
	Execute(ctx context.Context, command dto.InitializePersistenceCommand) *apperrors.AppError
}
