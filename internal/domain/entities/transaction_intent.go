package entities

import valueobjects "lendit/internal/domain/value_objects"

type OperationKind string

const (
	OperationMergeCoins      OperationKind = "merge_coins"
	OperationSplitCoins      OperationKind = "split_coins"
	OperationMoveCall        OperationKind = "move_call"
	OperationTransferObjects OperationKind = "transfer_objects"
)

// Operation is one instruction of a TransactionIntent. Its position in
// Operations is the command index other operations refer to through
// result arguments.
type Operation struct {
	Kind OperationKind `json:"kind"`

	Destination string   `json:"destination,omitempty"`
	Sources     []string `json:"sources,omitempty"`

	Coin    string   `json:"coin,omitempty"`
	Amounts []uint64 `json:"amounts,omitempty"`

	Call *valueobjects.MoveCall `json:"call,omitempty"`

	Objects   []valueobjects.Argument `json:"objects,omitempty"`
	Recipient string                  `json:"recipient,omitempty"`
}

// TransactionIntent is an ordered instruction list the ledger applies
// atomically. Coins carries the owned coin objects the operations reference.
type TransactionIntent struct {
	Sender          string                 `json:"sender"`
	Direction       valueobjects.Direction `json:"direction,omitempty"`
	CoinType        string                 `json:"coin_type,omitempty"`
	AmountBaseUnits uint64                 `json:"amount_base_units,omitempty"`
	Coins           []CoinObject           `json:"coins,omitempty"`
	Operations      []Operation            `json:"operations"`
}

func NewSimulationIntent(sender string, call valueobjects.MoveCall) TransactionIntent {
	return TransactionIntent{
		Sender: sender,
		Operations: []Operation{
			{Kind: OperationMoveCall, Call: &call},
		},
	}
}

func (i TransactionIntent) CoinByID(objectID string) (CoinObject, bool) {
	for _, coin := range i.Coins {
		if coin.ObjectID == objectID {
			return coin, true
		}
	}
	return CoinObject{}, false
}

func (i TransactionIntent) Count(kind OperationKind) int {
	count := 0
	for _, op := range i.Operations {
		if op.Kind == kind {
			count++
		}
	}
	return count
}

func (i TransactionIntent) Kinds() []OperationKind {
	kinds := make([]OperationKind, 0, len(i.Operations))
	for _, op := range i.Operations {
		kinds = append(kinds, op.Kind)
	}
	return kinds
}
