package entities

import (
	"time"

	valueobjects "lendit/internal/domain/value_objects"

	"github.com/google/uuid"
)

type JournalKind string

const (
	JournalKindTransaction  JournalKind = "transaction"
	JournalKindRateSnapshot JournalKind = "rate_snapshot"
)

// JournalEntry is an audit row. Transaction entries carry the terminal
// stage reached; snapshot entries carry one protocol quote.
type JournalEntry struct {
	ID              uuid.UUID                   `json:"id"`
	Kind            JournalKind                 `json:"kind"`
	Direction       valueobjects.Direction      `json:"direction,omitempty"`
	Account         string                      `json:"account,omitempty"`
	CoinType        string                      `json:"coin_type,omitempty"`
	AmountBaseUnits uint64                      `json:"amount_base_units,omitempty"`
	Stage           valueobjects.ExecutionStage `json:"stage,omitempty"`
	Digest          string                      `json:"digest,omitempty"`
	Protocol        string                      `json:"protocol,omitempty"`
	RateRaw         string                      `json:"rate_raw,omitempty"`
	Available       bool                        `json:"available"`
	ErrorMessage    string                      `json:"error_message,omitempty"`
	CreatedAt       time.Time                   `json:"created_at"`
}
