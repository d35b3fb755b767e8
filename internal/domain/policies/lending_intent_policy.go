package policies

import (
	"lendit/internal/domain/entities"
	valueobjects "lendit/internal/domain/value_objects"
	apperrors "lendit/internal/shared_kernel/errors"
)

// MaxMergeableCoins is the largest listing one MergeCoins command can fold
// within the ledger's per-command argument limit.
const MaxMergeableCoins = 511

type LendingIntentInput struct {
	Sender          string
	Direction       valueobjects.Direction
	CoinType        string
	AmountBaseUnits uint64
	Coins           []entities.CoinObject
	EntryPoint      valueobjects.MoveCall
}

// AssembleLendingIntent lays out merge, split, router call and transfer.
// The first listed coin accumulates every other coin before the split.
func AssembleLendingIntent(input LendingIntentInput) (entities.TransactionIntent, *apperrors.AppError) {
	if len(input.Coins) == 0 {
		return entities.TransactionIntent{}, apperrors.NewInsufficientFunds(
			"insufficient_funds",
			"no coins of the requested type",
			map[string]any{"coin_type": input.CoinType},
		)
	}

	available := entities.TotalBalance(input.Coins)
	if available < input.AmountBaseUnits {
		return entities.TransactionIntent{}, apperrors.NewInsufficientFunds(
			"insufficient_funds",
			"balance is lower than the requested amount",
			map[string]any{
				"coin_type": input.CoinType,
				"available": available,
				"requested": input.AmountBaseUnits,
			},
		)
	}

	if len(input.Coins) > MaxMergeableCoins {
		return entities.TransactionIntent{}, apperrors.NewValidation(
			"too_many_coins",
			"account holds more coin objects than one transaction can merge; consolidate coins first",
			map[string]any{
				"coin_type":  input.CoinType,
				"coin_count": len(input.Coins),
				"max_coins":  MaxMergeableCoins,
			},
		)
	}

	primary := input.Coins[0].ObjectID
	operations := make([]entities.Operation, 0, 4)

	if len(input.Coins) > 1 {
		sources := make([]string, 0, len(input.Coins)-1)
		for _, coin := range input.Coins[1:] {
			sources = append(sources, coin.ObjectID)
		}
		operations = append(operations, entities.Operation{
			Kind:        entities.OperationMergeCoins,
			Destination: primary,
			Sources:     sources,
		})
	}

	splitIndex := len(operations)
	operations = append(operations, entities.Operation{
		Kind:    entities.OperationSplitCoins,
		Coin:    primary,
		Amounts: []uint64{input.AmountBaseUnits},
	})

	callIndex := len(operations)
	call := input.EntryPoint.WithInputCoin(valueobjects.ResultArgument(splitIndex, 0))
	operations = append(operations, entities.Operation{
		Kind: entities.OperationMoveCall,
		Call: &call,
	})

	operations = append(operations, entities.Operation{
		Kind:      entities.OperationTransferObjects,
		Objects:   []valueobjects.Argument{valueobjects.ResultArgument(callIndex, 0)},
		Recipient: input.Sender,
	})

	coins := append([]entities.CoinObject(nil), input.Coins...)

	return entities.TransactionIntent{
		Sender:          input.Sender,
		Direction:       input.Direction,
		CoinType:        input.CoinType,
		AmountBaseUnits: input.AmountBaseUnits,
		Coins:           coins,
		Operations:      operations,
	}, nil
}
