//go:build !integration

package use_cases

import (
	"context"
	"math/big"
	"testing"

	"lendit/internal/application/dto"
	"lendit/internal/domain/catalog"
	valueobjects "lendit/internal/domain/value_objects"
	apperrors "lendit/internal/shared_kernel/errors"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func u256Bytes(t *testing.T, decimal string) []byte {
	t.Helper()
	value, ok := new(big.Int).SetString(decimal, 10)
	require.True(t, ok)
	return valueobjects.EncodeLittleEndian(value, 32)
}

func newOracle(ledger *stubLedger) *fetchBestRateUseCase {
	return NewFetchBestRateUseCase(catalog.Mainnet(), ledger, stubSenders{}, fixedClock{now: testNow}, zerolog.Nop()).(*fetchBestRateUseCase)
}

func TestFetchBestRateReturnsMaximum(t *testing.T) {
	ledger := &stubLedger{simulations: map[string]simulationReply{
		rateTarget("navi"):    rateReply(u256Bytes(t, "53000000000000000"), "u256"),
		rateTarget("suilend"): rateReply(u256Bytes(t, "41000000000000000"), "u256"),
	}}

	output, appErr := newOracle(ledger).Execute(context.Background(), dto.FetchBestRateQuery{})
	require.Nil(t, appErr)

	assert.Equal(t, "navi", output.BestProtocol)
	assert.Equal(t, "53000000000000000", output.BestRaw)
	assert.Equal(t, "5.30", output.BestPercent)
	assert.Equal(t, "5.30%", output.Label)
	assert.Equal(t, testNow, output.QuotedAt)
	require.Len(t, output.Quotes, 2)
	assert.True(t, output.Quotes[0].Available)
	assert.True(t, output.Quotes[1].Available)
	assert.Equal(t, "4.10", output.Quotes[1].Percent)
}

func TestFetchBestRateSimulatesWithThrowawaySender(t *testing.T) {
	ledger := &stubLedger{simulations: map[string]simulationReply{}}

	_, appErr := newOracle(ledger).Execute(context.Background(), dto.FetchBestRateQuery{})
	require.Nil(t, appErr)

	require.Len(t, ledger.simulated, 2)
	for _, input := range ledger.simulated {
		assert.Equal(t, input.Sender, input.Intent.Sender)
		assert.NotEqual(t, testAccount, input.Sender)
		assert.Len(t, input.Intent.Operations, 1)
	}
}

func TestFetchBestRateSoftFailsOneProtocol(t *testing.T) {
	ledger := &stubLedger{simulations: map[string]simulationReply{
		rateTarget("navi"): {err: apperrors.NewInternal("ledger_rpc_failed", "connection refused", nil)},
		rateTarget("suilend"): rateReply(u256Bytes(t, "41000000000000000"), "u256"),
	}}

	output, appErr := newOracle(ledger).Execute(context.Background(), dto.FetchBestRateQuery{})
	require.Nil(t, appErr)

	assert.Equal(t, "suilend", output.BestProtocol)
	assert.Equal(t, "41000000000000000", output.BestRaw)
	assert.False(t, output.Quotes[0].Available)
	assert.Equal(t, "0", output.Quotes[0].Raw)
	assert.Equal(t, "connection refused", output.Quotes[0].Reason)
}

func TestFetchBestRateBothFailuresYieldZero(t *testing.T) {
	ledger := &stubLedger{simulations: map[string]simulationReply{
		rateTarget("navi"): {result: dto.SimulationResult{Status: "failure", Error: "MoveAbort(7)"}},
		rateTarget("suilend"): rateReply(nil, "u256"),
	}}

	output, appErr := newOracle(ledger).Execute(context.Background(), dto.FetchBestRateQuery{})
	require.Nil(t, appErr)

	assert.True(t, output.Rate.IsZero())
	assert.Equal(t, "0", output.BestRaw)
	assert.Equal(t, "0.00", output.BestPercent)
	assert.Equal(t, dto.RateLabelUnavailable, output.Label)
	assert.Empty(t, output.BestProtocol)
}

func TestFetchBestRateRejectsMalformedShapes(t *testing.T) {
	cases := map[string]simulationReply{
		"no results":       {result: dto.SimulationResult{Status: "success"}},
		"no return values": {result: dto.SimulationResult{Status: "success", Results: []dto.SimulationCommandResult{{}}}},
		"width mismatch":   rateReply([]byte{1, 2, 3}, "u64"),
		"too long":         rateReply(make([]byte, 33), ""),
	}

	for name, reply := range cases {
		t.Run(name, func(t *testing.T) {
			ledger := &stubLedger{simulations: map[string]simulationReply{
				rateTarget("navi"):    reply,
				rateTarget("suilend"): reply,
			}}

			output, appErr := newOracle(ledger).Execute(context.Background(), dto.FetchBestRateQuery{})
			require.Nil(t, appErr)
			assert.Equal(t, dto.RateLabelUnavailable, output.Label)
			assert.NotEmpty(t, output.Quotes[0].Reason)
		})
	}
}

func TestFetchBestRateDecodesValuesBeyondSixtyFourBits(t *testing.T) {
	ledger := &stubLedger{simulations: map[string]simulationReply{
		rateTarget("navi"):    rateReply(u256Bytes(t, "340282366920938463463374607431768211457"), "u256"),
		rateTarget("suilend"): rateReply(u256Bytes(t, "1"), "u256"),
	}}

	output, appErr := newOracle(ledger).Execute(context.Background(), dto.FetchBestRateQuery{})
	require.Nil(t, appErr)

	assert.Equal(t, "340282366920938463463374607431768211457", output.BestRaw)
}

func TestFetchBestRateSenderFailureIsSoft(t *testing.T) {
	oracle := NewFetchBestRateUseCase(
		catalog.Mainnet(),
		&stubLedger{},
		stubSenders{err: apperrors.NewInternal("simulation_sender_failed", "entropy", nil)},
		fixedClock{now: testNow},
		zerolog.Nop(),
	)

	output, appErr := oracle.Execute(context.Background(), dto.FetchBestRateQuery{})
	require.Nil(t, appErr)
	assert.Equal(t, dto.RateLabelUnavailable, output.Label)
}
