//go:build !integration

package use_cases

import (
	"context"
	"sync"
	"time"

	"lendit/internal/application/dto"
	"lendit/internal/domain/catalog"
	"lendit/internal/domain/entities"
	apperrors "lendit/internal/shared_kernel/errors"
)

const testAccount = "0x00000000000000000000000000000000000000000000000000000000000000a1"

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type fixedClock struct{ now time.Time }

func (c fixedClock) NowUTC() time.Time { return c.now }

type simulationReply struct {
	result dto.SimulationResult
	err    *apperrors.AppError
}

// stubLedger answers simulations by move call target.
type stubLedger struct {
	mu          sync.Mutex
	coins       []entities.CoinObject
	coinsErr    *apperrors.AppError
	simulations map[string]simulationReply
	coinQueries []dto.ListCoinsQuery
	simulated   []dto.SimulateTransactionInput
}

func (s *stubLedger) ListCoins(_ context.Context, query dto.ListCoinsQuery) ([]entities.CoinObject, *apperrors.AppError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.coinQueries = append(s.coinQueries, query)
	return s.coins, s.coinsErr
}

func (s *stubLedger) SimulateTransaction(_ context.Context, input dto.SimulateTransactionInput) (dto.SimulationResult, *apperrors.AppError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.simulated = append(s.simulated, input)

	target := input.Intent.Operations[0].Call.Target
	reply, ok := s.simulations[target]
	if !ok {
		return dto.SimulationResult{}, apperrors.NewInternal("ledger_rpc_failed", "no reply", nil)
	}
	return reply.result, reply.err
}

type stubSenders struct{ err *apperrors.AppError }

func (s stubSenders) NewSender() (string, *apperrors.AppError) {
	if s.err != nil {
		return "", s.err
	}
	return "0x00000000000000000000000000000000000000000000000000000000000000ee", nil
}

type stubWallet struct {
	address  string
	result   dto.ExecutionResult
	err      *apperrors.AppError
	executed []entities.TransactionIntent
}

func (s *stubWallet) Address() string { return s.address }

func (s *stubWallet) SignAndExecute(_ context.Context, intent entities.TransactionIntent) (dto.ExecutionResult, *apperrors.AppError) {
	s.executed = append(s.executed, intent)
	return s.result, s.err
}

type stubJournal struct {
	disabled     bool
	transactions []entities.JournalEntry
	snapshots    []entities.JournalEntry
	recent       []entities.JournalEntry
	writeErr     *apperrors.AppError
	listedLimit  int
}

func (s *stubJournal) Enabled() bool { return !s.disabled }

func (s *stubJournal) RecordTransaction(_ context.Context, entry entities.JournalEntry) *apperrors.AppError {
	s.transactions = append(s.transactions, entry)
	return s.writeErr
}

func (s *stubJournal) RecordRateSnapshot(_ context.Context, entries []entities.JournalEntry) *apperrors.AppError {
	s.snapshots = append(s.snapshots, entries...)
	return s.writeErr
}

func (s *stubJournal) ListRecent(_ context.Context, limit int) ([]entities.JournalEntry, *apperrors.AppError) {
	s.listedLimit = limit
	return s.recent, nil
}

func rateReply(bytes []byte, moveType string) simulationReply {
	return simulationReply{result: dto.SimulationResult{
		Status: "success",
		Results: []dto.SimulationCommandResult{
			{ReturnValues: []dto.SimulationReturnValue{{Bytes: bytes, MoveType: moveType}}},
		},
	}}
}

func rateTarget(name string) string {
	for _, source := range catalog.Mainnet().RateSources {
		if source.Name == name {
			return source.Call.Target
		}
	}
	return ""
}

func usdcCoins(balances ...uint64) []entities.CoinObject {
	ids := []string{"0xc1", "0xc2", "0xc3"}
	coins := make([]entities.CoinObject, 0, len(balances))
	for i, balance := range balances {
		coins = append(coins, entities.CoinObject{ObjectID: ids[i], CoinType: catalog.USDCCoinType, Balance: balance})
	}
	return coins
}
