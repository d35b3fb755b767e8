package use_cases

import (
	"context"

	"lendit/internal/application/dto"
	portsout "lendit/internal/application/ports/out"
	"lendit/internal/domain/catalog"
	"lendit/internal/domain/entities"
	"lendit/internal/domain/policies"
	valueobjects "lendit/internal/domain/value_objects"
	apperrors "lendit/internal/shared_kernel/errors"
)

type lendingRequest struct {
	direction valueobjects.Direction
	account   string
	amount    valueobjects.Amount
	coinType  string
}

// lendingIntentAssembler holds the steps preview and submit share.
type lendingIntentAssembler struct {
	catalog catalog.Catalog
	ledger  portsout.LedgerGateway
}

func (a lendingIntentAssembler) validate(command dto.LendingCommand) (lendingRequest, *apperrors.AppError) {
	amount, appErr := valueobjects.ParseAmount(command.Amount, a.catalog.Decimals)
	if appErr != nil {
		return lendingRequest{}, appErr
	}

	account, appErr := valueobjects.NormalizeAccount(command.Account)
	if appErr != nil {
		return lendingRequest{}, appErr
	}

	direction, appErr := valueobjects.ParseDirection(command.Direction)
	if appErr != nil {
		return lendingRequest{}, appErr
	}

	return lendingRequest{
		direction: direction,
		account:   account,
		amount:    amount,
		coinType:  a.catalog.CoinTypeFor(direction),
	}, nil
}

func (a lendingIntentAssembler) fetchCoins(ctx context.Context, request lendingRequest) ([]entities.CoinObject, *apperrors.AppError) {
	return a.ledger.ListCoins(ctx, dto.ListCoinsQuery{
		Owner:    request.account,
		CoinType: request.coinType,
	})
}

func (a lendingIntentAssembler) assemble(request lendingRequest, coins []entities.CoinObject) (entities.TransactionIntent, *apperrors.AppError) {
	return policies.AssembleLendingIntent(policies.LendingIntentInput{
		Sender:          request.account,
		Direction:       request.direction,
		CoinType:        request.coinType,
		AmountBaseUnits: request.amount.BaseUnits,
		Coins:           coins,
		EntryPoint:      a.catalog.EntryPointFor(request.direction),
	})
}
