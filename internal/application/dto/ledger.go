package dto

import "lendit/internal/domain/entities"

type ListCoinsQuery struct {
	Owner    string
	CoinType string
}

type SimulateTransactionInput struct {
	Sender string
	Intent entities.TransactionIntent
}

type SimulationReturnValue struct {
	Bytes    []byte
	MoveType string
}

type SimulationCommandResult struct {
	ReturnValues []SimulationReturnValue
}

// SimulationResult is a dev-inspect outcome. Error is the ledger's message
// when the simulated execution aborted.
type SimulationResult struct {
	Status  string
	Error   string
	Results []SimulationCommandResult
}

type ExecutionResult struct {
	Digest string `json:"digest"`
	Status string `json:"status"`
}
