package out

import (
	"context"

	"lendit/internal/application/dto"
	"lendit/internal/domain/entities"
	apperrors "lendit/internal/shared_kernel/errors"
)

type WalletGateway interface {
	Address() string
	// SignAndExecute submits the intent atomically. A ledger rejection is a
	// TypeSubmission error whose message is the ledger's text.
	SignAndExecute(ctx context.Context, intent entities.TransactionIntent) (dto.ExecutionResult, *apperrors.AppError)
}

type SimulationSenderProvider interface {
	NewSender() (string, *apperrors.AppError)
}
