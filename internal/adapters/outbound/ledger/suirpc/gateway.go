// Package suirpc reaches the Sui ledger over its JSON-RPC interface.
package suirpc

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"lendit/internal/application/dto"
	"lendit/internal/domain/entities"
	valueobjects "lendit/internal/domain/value_objects"
	apperrors "lendit/internal/shared_kernel/errors"

	"github.com/rs/zerolog"
)

const (
	DefaultRPCURL     = "https://fullnode.mainnet.sui.io:443"
	defaultRPCTimeout = 10 * time.Second
	coinPageLimit     = 50
)

type Config struct {
	RPCURL     string
	RPCTimeout time.Duration
	HTTPClient *http.Client
	Logger     zerolog.Logger
}

type Gateway struct {
	client *jsonRPCClient
	logger zerolog.Logger

	mu        sync.Mutex
	functions map[string][]json.RawMessage
}

func NewGateway(cfg Config) *Gateway {
	if cfg.RPCURL == "" {
		cfg.RPCURL = DefaultRPCURL
	}
	if cfg.RPCTimeout <= 0 {
		cfg.RPCTimeout = defaultRPCTimeout
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{}
	}

	return &Gateway{
		client:    newJSONRPCClient(cfg.HTTPClient, cfg.RPCTimeout, cfg.RPCURL),
		logger:    cfg.Logger.With().Str("component", "sui_rpc").Logger(),
		functions: map[string][]json.RawMessage{},
	}
}

func (g *Gateway) ListCoins(ctx context.Context, query dto.ListCoinsQuery) ([]entities.CoinObject, *apperrors.AppError) {
	coins := []entities.CoinObject{}
	seenCursors := map[string]struct{}{}
	var cursor *string

	for {
		page := coinPage{}
		params := []any{query.Owner, query.CoinType, cursor, coinPageLimit}
		if appErr := g.client.Call(ctx, "suix_getCoins", params, &page); appErr != nil {
			return nil, appErr
		}

		for _, coin := range page.Data {
			objectID, ok := valueobjects.NormalizeSuiAddress(coin.CoinObjectID)
			if !ok {
				return nil, apperrors.NewInternal(
					"ledger_rpc_failed",
					"ledger returned an invalid coin object id",
					map[string]any{"method": "suix_getCoins", "coin_object_id": coin.CoinObjectID},
				)
			}
			coins = append(coins, entities.CoinObject{
				ObjectID: objectID,
				CoinType: coin.CoinType,
				Balance:  uint64(coin.Balance),
				Version:  uint64(coin.Version),
				Digest:   coin.Digest,
			})
		}

		if !page.HasNextPage || page.NextCursor == nil {
			break
		}
		if _, seen := seenCursors[*page.NextCursor]; seen {
			return nil, apperrors.NewInternal(
				"ledger_rpc_failed",
				"ledger repeated a coin page cursor",
				map[string]any{"method": "suix_getCoins", "cursor": *page.NextCursor},
			)
		}
		seenCursors[*page.NextCursor] = struct{}{}
		cursor = page.NextCursor
	}

	g.logger.Debug().Str("owner", query.Owner).Str("coin_type", query.CoinType).Int("coins", len(coins)).Msg("coins listed")
	return coins, nil
}

func (g *Gateway) SimulateTransaction(ctx context.Context, input dto.SimulateTransactionInput) (dto.SimulationResult, *apperrors.AppError) {
	transaction, appErr := g.ResolveTransaction(ctx, input.Intent)
	if appErr != nil {
		return dto.SimulationResult{}, appErr
	}

	kind := base64.StdEncoding.EncodeToString(transaction.KindBytes())
	response := devInspectResponse{}
	if appErr := g.client.Call(ctx, "sui_devInspectTransactionBlock", []any{input.Sender, kind}, &response); appErr != nil {
		return dto.SimulationResult{}, appErr
	}

	result := dto.SimulationResult{Status: response.Effects.Status.Status, Error: response.Error}
	if result.Error == "" && result.Status == "failure" {
		result.Error = response.Effects.Status.Error
	}

	for _, command := range response.Results {
		values := make([]dto.SimulationReturnValue, 0, len(command.ReturnValues))
		for _, raw := range command.ReturnValues {
			value, moveType, err := decodeReturnValue(raw)
			if err != nil {
				return dto.SimulationResult{}, apperrors.NewInternal(
					"rate_result_malformed",
					"simulation return value has an unexpected shape",
					map[string]any{"error": err.Error()},
				)
			}
			values = append(values, dto.SimulationReturnValue{Bytes: value, MoveType: moveType})
		}
		result.Results = append(result.Results, dto.SimulationCommandResult{ReturnValues: values})
	}

	return result, nil
}

func (g *Gateway) ReferenceGasPrice(ctx context.Context) (uint64, *apperrors.AppError) {
	var price suiUint64
	if appErr := g.client.Call(ctx, "suix_getReferenceGasPrice", []any{}, &price); appErr != nil {
		return 0, appErr
	}
	return uint64(price), nil
}

// ExecuteTransaction submits signed bytes and waits for local execution.
// Rejections come back as submission errors carrying the ledger's text.
func (g *Gateway) ExecuteTransaction(ctx context.Context, txBytes []byte, signatures []string) (dto.ExecutionResult, *apperrors.AppError) {
	params := []any{
		base64.StdEncoding.EncodeToString(txBytes),
		signatures,
		map[string]any{"showEffects": true},
		"WaitForLocalExecution",
	}

	response := executeResponse{}
	if appErr := g.client.Call(ctx, "sui_executeTransactionBlock", params, &response); appErr != nil {
		if ledgerText, ok := appErr.Details["rpc_error"].(string); ok {
			return dto.ExecutionResult{}, apperrors.NewSubmission("transaction_submission_failed", ledgerText, appErr.Details)
		}
		return dto.ExecutionResult{}, appErr
	}

	if response.Effects.Status.Status != "success" {
		return dto.ExecutionResult{}, apperrors.NewSubmission(
			"transaction_submission_failed",
			response.Effects.Status.Error,
			map[string]any{"digest": response.Digest, "status": response.Effects.Status.Status},
		)
	}

	g.logger.Info().Str("digest", response.Digest).Msg("transaction executed")
	return dto.ExecutionResult{Digest: response.Digest, Status: response.Effects.Status.Status}, nil
}
