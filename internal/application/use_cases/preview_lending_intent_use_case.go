package use_cases

import (
	"context"

	"lendit/internal/application/dto"
	portsin "lendit/internal/application/ports/in"
	portsout "lendit/internal/application/ports/out"
	"lendit/internal/domain/catalog"
	apperrors "lendit/internal/shared_kernel/errors"
)

type previewLendingIntentUseCase struct {
	assembler lendingIntentAssembler
}

func NewPreviewLendingIntentUseCase(lenditCatalog catalog.Catalog, ledger portsout.LedgerGateway) portsin.PreviewLendingIntentUseCase {
	return &previewLendingIntentUseCase{
		assembler: lendingIntentAssembler{catalog: lenditCatalog, ledger: ledger},
	}
}

func (u *previewLendingIntentUseCase) Execute(ctx context.Context, command dto.LendingCommand) (dto.LendingIntentOutput, *apperrors.AppError) {
	request, appErr := u.assembler.validate(command)
	if appErr != nil {
		return dto.LendingIntentOutput{}, appErr
	}

	coins, appErr := u.assembler.fetchCoins(ctx, request)
	if appErr != nil {
		return dto.LendingIntentOutput{}, appErr
	}

	intent, appErr := u.assembler.assemble(request, coins)
	if appErr != nil {
		return dto.LendingIntentOutput{}, appErr
	}

	return dto.LendingIntentOutput{
		Direction:       request.direction.String(),
		Account:         request.account,
		Amount:          request.amount.String(),
		AmountBaseUnits: request.amount.BaseUnits,
		CoinType:        request.coinType,
		Intent:          intent,
	}, nil
}
