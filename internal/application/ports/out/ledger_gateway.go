package out

import (
	"context"

	"lendit/internal/application/dto"
	"lendit/internal/domain/entities"
	apperrors "lendit/internal/shared_kernel/errors"
)

type LedgerGateway interface {
	// ListCoins returns every coin of the type owned by the owner, across all pages.
	ListCoins(ctx context.Context, query dto.ListCoinsQuery) ([]entities.CoinObject, *apperrors.AppError)
	SimulateTransaction(ctx context.Context, input dto.SimulateTransactionInput) (dto.SimulationResult, *apperrors.AppError)
}
