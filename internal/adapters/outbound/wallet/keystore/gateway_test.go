//go:build !integration

package keystore

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"encoding/base64"
	"testing"

	"lendit/internal/application/dto"
	"lendit/internal/domain/entities"
	"lendit/internal/infrastructure/suikeys"
	"lendit/internal/infrastructure/suitx"
	apperrors "lendit/internal/shared_kernel/errors"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"
)

type stubLedger struct {
	gasCoins   []entities.CoinObject
	executed   [][]byte
	signatures [][]string
	result     dto.ExecutionResult
	executeErr *apperrors.AppError
}

func (s *stubLedger) ListCoins(_ context.Context, query dto.ListCoinsQuery) ([]entities.CoinObject, *apperrors.AppError) {
	if query.CoinType != GasCoinType {
		return nil, nil
	}
	return s.gasCoins, nil
}

func (s *stubLedger) ResolveTransaction(_ context.Context, _ entities.TransactionIntent) (suitx.ProgrammableTransaction, *apperrors.AppError) {
	builder := suitx.NewBuilder()
	builder.Command(suitx.SplitCoinsCommand(suitx.GasCoin(), []suitx.Argument{builder.Pure(suitx.PureU64(1))}))
	return builder.Finish(), nil
}

func (s *stubLedger) ReferenceGasPrice(_ context.Context) (uint64, *apperrors.AppError) {
	return 750, nil
}

func (s *stubLedger) ExecuteTransaction(_ context.Context, txBytes []byte, signatures []string) (dto.ExecutionResult, *apperrors.AppError) {
	s.executed = append(s.executed, txBytes)
	s.signatures = append(s.signatures, signatures)
	return s.result, s.executeErr
}

func testKey(t *testing.T) (string, suikeys.Keypair) {
	t.Helper()
	keypair, keyErr := suikeys.KeypairFromSeed(bytes.Repeat([]byte{0x42}, 32))
	require.Nil(t, keyErr)
	return keypair.ExportPrivateKey(), keypair
}

func gasCoin() entities.CoinObject {
	return entities.CoinObject{
		ObjectID: "0x99",
		CoinType: GasCoinType,
		Balance:  1_000_000_000,
		Version:  12,
		Digest:   suikeys.EncodeBase58(bytes.Repeat([]byte{0x22}, 32)),
	}
}

func TestNewGatewayRejectsBadKey(t *testing.T) {
	_, appErr := NewGateway(Config{PrivateKey: "nope"}, &stubLedger{}, zerolog.Nop())

	require.NotNil(t, appErr)
	assert.True(t, appErr.Is(apperrors.TypeValidation))
}

func TestSignAndExecuteSignsTransactionData(t *testing.T) {
	privateKey, keypair := testKey(t)
	ledger := &stubLedger{gasCoins: []entities.CoinObject{gasCoin()}, result: dto.ExecutionResult{Status: "success"}}

	gateway, appErr := NewGateway(Config{PrivateKey: privateKey}, ledger, zerolog.Nop())
	require.Nil(t, appErr)
	assert.Equal(t, keypair.Address(), gateway.Address())

	result, appErr := gateway.SignAndExecute(context.Background(), entities.TransactionIntent{Sender: keypair.Address()})
	require.Nil(t, appErr)

	require.Len(t, ledger.executed, 1)
	txBytes := ledger.executed[0]
	assert.Equal(t, suikeys.TransactionDigest(txBytes), result.Digest)

	// gas price and budget are the trailing u64s before the expiration tag
	tail := txBytes[len(txBytes)-17:]
	assert.Equal(t, suitx.PureU64(750), tail[:8])
	assert.Equal(t, suitx.PureU64(DefaultGasBudget), tail[8:16])
	assert.Equal(t, byte(0x00), tail[16])

	signature, err := base64.StdEncoding.DecodeString(ledger.signatures[0][0])
	require.NoError(t, err)
	digest := blake2b.Sum256(append([]byte{0, 0, 0}, txBytes...))
	assert.True(t, ed25519.Verify(keypair.PublicKey(), digest[:], signature[1:65]))
}

func TestSignAndExecuteRequiresGasCoins(t *testing.T) {
	privateKey, _ := testKey(t)
	ledger := &stubLedger{}

	gateway, appErr := NewGateway(Config{PrivateKey: privateKey}, ledger, zerolog.Nop())
	require.Nil(t, appErr)

	_, appErr = gateway.SignAndExecute(context.Background(), entities.TransactionIntent{})
	require.NotNil(t, appErr)
	assert.Equal(t, "insufficient_gas", appErr.Code)
	assert.Empty(t, ledger.executed)
}

func TestSignAndExecutePassesSubmissionErrorThrough(t *testing.T) {
	privateKey, _ := testKey(t)
	ledger := &stubLedger{
		gasCoins:   []entities.CoinObject{gasCoin()},
		executeErr: apperrors.NewSubmission("transaction_submission_failed", "InsufficientGas", nil),
	}

	gateway, appErr := NewGateway(Config{PrivateKey: privateKey, GasBudget: 10}, ledger, zerolog.Nop())
	require.Nil(t, appErr)

	_, appErr = gateway.SignAndExecute(context.Background(), entities.TransactionIntent{})
	require.NotNil(t, appErr)
	assert.Equal(t, "InsufficientGas", appErr.Message)
}
