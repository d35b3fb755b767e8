// Package keystore signs and submits lending transactions with a single
// configured ed25519 key.
package keystore

import (
	"context"

	"lendit/internal/application/dto"
	portsout "lendit/internal/application/ports/out"
	"lendit/internal/domain/entities"
	"lendit/internal/infrastructure/suikeys"
	"lendit/internal/infrastructure/suitx"
	apperrors "lendit/internal/shared_kernel/errors"

	"github.com/rs/zerolog"
)

const (
	GasCoinType      = "0x2::sui::SUI"
	DefaultGasBudget = uint64(50_000_000)
	maxGasObjects    = 256
)

// Ledger is the part of the RPC gateway the signer needs.
type Ledger interface {
	ListCoins(ctx context.Context, query dto.ListCoinsQuery) ([]entities.CoinObject, *apperrors.AppError)
	ResolveTransaction(ctx context.Context, intent entities.TransactionIntent) (suitx.ProgrammableTransaction, *apperrors.AppError)
	ReferenceGasPrice(ctx context.Context) (uint64, *apperrors.AppError)
	ExecuteTransaction(ctx context.Context, txBytes []byte, signatures []string) (dto.ExecutionResult, *apperrors.AppError)
}

type Config struct {
	PrivateKey string
	GasBudget  uint64
}

type Gateway struct {
	keypair   suikeys.Keypair
	ledger    Ledger
	gasBudget uint64
	logger    zerolog.Logger
}

var _ portsout.WalletGateway = (*Gateway)(nil)

func NewGateway(cfg Config, ledger Ledger, logger zerolog.Logger) (*Gateway, *apperrors.AppError) {
	keypair, keyErr := suikeys.ParsePrivateKey(cfg.PrivateKey)
	if keyErr != nil {
		return nil, apperrors.NewValidation(
			string(keyErr.Code),
			keyErr.Message,
			map[string]any{"field": "SUI_PRIVATE_KEY"},
		)
	}

	if cfg.GasBudget == 0 {
		cfg.GasBudget = DefaultGasBudget
	}

	return &Gateway{
		keypair:   keypair,
		ledger:    ledger,
		gasBudget: cfg.GasBudget,
		logger:    logger.With().Str("component", "keystore_wallet").Str("signer", keypair.Address()).Logger(),
	}, nil
}

func (g *Gateway) Address() string {
	return g.keypair.Address()
}

func (g *Gateway) SignAndExecute(ctx context.Context, intent entities.TransactionIntent) (dto.ExecutionResult, *apperrors.AppError) {
	transaction, appErr := g.ledger.ResolveTransaction(ctx, intent)
	if appErr != nil {
		return dto.ExecutionResult{}, appErr
	}

	price, appErr := g.ledger.ReferenceGasPrice(ctx)
	if appErr != nil {
		return dto.ExecutionResult{}, appErr
	}

	payment, appErr := g.gasPayment(ctx)
	if appErr != nil {
		return dto.ExecutionResult{}, appErr
	}

	sender := suitx.MustParseAddress(g.keypair.Address())
	data := suitx.TransactionData{
		Kind:   transaction,
		Sender: sender,
		Gas: suitx.GasData{
			Payment: payment,
			Owner:   sender,
			Price:   price,
			Budget:  g.gasBudget,
		},
	}

	txBytes := data.Bytes()
	expected := suikeys.TransactionDigest(txBytes)
	g.logger.Debug().Str("digest", expected).Uint64("gas_price", price).Int("gas_coins", len(payment)).Msg("submitting transaction")

	result, appErr := g.ledger.ExecuteTransaction(ctx, txBytes, []string{g.keypair.SignTransaction(txBytes)})
	if appErr != nil {
		return dto.ExecutionResult{}, appErr
	}

	if result.Digest == "" {
		result.Digest = expected
	} else if result.Digest != expected {
		g.logger.Warn().Str("expected", expected).Str("reported", result.Digest).Msg("ledger reported a different digest")
	}

	return result, nil
}

func (g *Gateway) gasPayment(ctx context.Context) ([]suitx.ObjectRef, *apperrors.AppError) {
	coins, appErr := g.ledger.ListCoins(ctx, dto.ListCoinsQuery{Owner: g.keypair.Address(), CoinType: GasCoinType})
	if appErr != nil {
		return nil, appErr
	}
	if len(coins) == 0 {
		return nil, apperrors.NewInsufficientFunds(
			"insufficient_gas",
			"no SUI coins available to pay for gas",
			map[string]any{"owner": g.keypair.Address()},
		)
	}
	if len(coins) > maxGasObjects {
		coins = coins[:maxGasObjects]
	}

	refs := make([]suitx.ObjectRef, 0, len(coins))
	for _, coin := range coins {
		id, err := suitx.ParseAddress(coin.ObjectID)
		if err != nil {
			return nil, apperrors.NewInternal("gas_coin_invalid", "gas coin id is invalid", map[string]any{"object_id": coin.ObjectID})
		}
		digest, err := suikeys.DecodeBase58(coin.Digest)
		if err != nil || len(digest) != 32 {
			return nil, apperrors.NewInternal("gas_coin_invalid", "gas coin digest is invalid", map[string]any{"object_id": coin.ObjectID})
		}

		ref := suitx.ObjectRef{ObjectID: id, Version: coin.Version}
		copy(ref.Digest[:], digest)
		refs = append(refs, ref)
	}

	return refs, nil
}
