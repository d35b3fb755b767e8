package dto

import "lendit/internal/domain/entities"

// LendingCommand carries raw user input; validation happens in the use case.
type LendingCommand struct {
	Direction string `json:"direction"`
	Account   string `json:"account"`
	Amount    string `json:"amount"`
}

type LendingIntentOutput struct {
	Direction       string                     `json:"direction"`
	Account         string                     `json:"account"`
	Amount          string                     `json:"amount"`
	AmountBaseUnits uint64                     `json:"amount_base_units"`
	CoinType        string                     `json:"coin_type"`
	Intent          entities.TransactionIntent `json:"intent"`
}

type SubmitLendingTransactionOutput struct {
	Digest          string `json:"digest"`
	Stage           string `json:"stage"`
	Direction       string `json:"direction"`
	Account         string `json:"account"`
	AmountBaseUnits uint64 `json:"amount_base_units"`
}
