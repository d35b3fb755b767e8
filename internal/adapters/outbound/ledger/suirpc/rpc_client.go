package suirpc

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"

	apperrors "lendit/internal/shared_kernel/errors"
)

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      uint64 `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      uint64          `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcError       `json:"error"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type jsonRPCClient struct {
	httpClient  *http.Client
	httpTimeout time.Duration
	rpcURL      string
	nextID      atomic.Uint64
}

func newJSONRPCClient(httpClient *http.Client, httpTimeout time.Duration, rpcURL string) *jsonRPCClient {
	return &jsonRPCClient{
		httpClient:  httpClient,
		httpTimeout: httpTimeout,
		rpcURL:      rpcURL,
	}
}

// Call decodes the result into out. RPC level errors keep the node's
// message under details["rpc_error"].
func (c *jsonRPCClient) Call(ctx context.Context, method string, params []any, out any) *apperrors.AppError {
	payload := rpcRequest{
		JSONRPC: "2.0",
		ID:      c.nextID.Add(1),
		Method:  method,
		Params:  params,
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		return ledgerError("failed to encode rpc request", method, map[string]any{"error": err.Error()})
	}

	requestCtx, cancel := context.WithTimeout(ctx, c.httpTimeout)
	defer cancel()

	request, err := http.NewRequestWithContext(requestCtx, http.MethodPost, c.rpcURL, bytes.NewReader(encoded))
	if err != nil {
		return ledgerError("failed to build rpc request", method, map[string]any{"error": err.Error()})
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return ledgerError("failed to call rpc endpoint", method, map[string]any{"error": err.Error()})
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return ledgerError("rpc endpoint returned non-200 status", method, map[string]any{"status_code": response.StatusCode})
	}

	rpcResp := rpcResponse{}
	if err := json.NewDecoder(response.Body).Decode(&rpcResp); err != nil {
		return ledgerError("failed to decode rpc response", method, map[string]any{"error": err.Error()})
	}
	if rpcResp.Error != nil {
		return ledgerError(rpcResp.Error.Message, method, map[string]any{
			"rpc_error": rpcResp.Error.Message,
			"rpc_code":  rpcResp.Error.Code,
		})
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(rpcResp.Result, out); err != nil {
		return ledgerError("rpc result has an unexpected shape", method, map[string]any{"error": err.Error()})
	}

	return nil
}

func ledgerError(message, method string, details map[string]any) *apperrors.AppError {
	if details == nil {
		details = map[string]any{}
	}
	details["method"] = method
	return apperrors.NewInternal("ledger_rpc_failed", message, details)
}
