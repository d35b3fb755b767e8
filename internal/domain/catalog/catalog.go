// Package catalog holds the on-chain identifiers the router and the rate
// sources are reached through. Records are plain data so that adding a
// protocol only touches a catalog, never the builder or the oracle.
package catalog

import (
	"encoding/json"
	"os"
	"strings"

	valueobjects "lendit/internal/domain/value_objects"
	"lendit/internal/infrastructure/suitx"
	apperrors "lendit/internal/shared_kernel/errors"
)

// RateSource is a protocol whose rate entry point returns a little-endian
// unsigned integer scaled by 10^RateScaleExponent.
type RateSource struct {
	Name string                `json:"name"`
	Call valueobjects.MoveCall `json:"call"`
}

type Router struct {
	Deposit valueobjects.MoveCall `json:"deposit"`
	Redeem  valueobjects.MoveCall `json:"redeem"`
}

type Catalog struct {
	Network           string       `json:"network"`
	AssetSymbol       string       `json:"asset_symbol"`
	DepositCoinType   string       `json:"deposit_coin_type"`
	ShareCoinType     string       `json:"share_coin_type"`
	Decimals          int32        `json:"decimals"`
	RateScaleExponent int32        `json:"rate_scale_exponent"`
	RateSources       []RateSource `json:"rate_sources"`
	Router            Router       `json:"router"`
}

// CoinTypeFor is the coin type spent by a direction: the deposit asset on
// the way in, the share coin on the way out.
func (c Catalog) CoinTypeFor(direction valueobjects.Direction) string {
	if direction == valueobjects.DirectionWithdraw {
		return c.ShareCoinType
	}
	return c.DepositCoinType
}

func (c Catalog) EntryPointFor(direction valueobjects.Direction) valueobjects.MoveCall {
	if direction == valueobjects.DirectionWithdraw {
		return c.Router.Redeem
	}
	return c.Router.Deposit
}

func (c Catalog) Validate() *apperrors.AppError {
	if strings.TrimSpace(c.DepositCoinType) == "" || strings.TrimSpace(c.ShareCoinType) == "" {
		return catalogError("coin types are required", nil)
	}
	if appErr := validateTypeTags("coin_type", c.DepositCoinType, c.ShareCoinType); appErr != nil {
		return appErr
	}
	if c.Decimals < 0 || c.Decimals > 18 {
		return catalogError("decimals must be between 0 and 18", map[string]any{"decimals": c.Decimals})
	}
	if c.RateScaleExponent < 0 {
		return catalogError("rate scale exponent must not be negative", nil)
	}

	seen := map[string]struct{}{}
	for _, source := range c.RateSources {
		name := strings.TrimSpace(source.Name)
		if name == "" {
			return catalogError("rate source name is required", nil)
		}
		if _, dup := seen[name]; dup {
			return catalogError("rate source names must be unique", map[string]any{"name": name})
		}
		seen[name] = struct{}{}

		if appErr := source.Call.Validate(); appErr != nil {
			return appErr
		}
		if appErr := validateTypeTags(name, source.Call.TypeArguments...); appErr != nil {
			return appErr
		}
		if source.Call.CountArguments(valueobjects.ArgumentInputCoin) != 0 {
			return catalogError("rate source calls cannot take an input coin", map[string]any{"name": name})
		}
	}

	for direction, call := range map[string]valueobjects.MoveCall{"deposit": c.Router.Deposit, "redeem": c.Router.Redeem} {
		if appErr := call.Validate(); appErr != nil {
			return appErr
		}
		if appErr := validateTypeTags(direction, call.TypeArguments...); appErr != nil {
			return appErr
		}
		if call.CountArguments(valueobjects.ArgumentInputCoin) != 1 {
			return catalogError("router entry points take exactly one input coin", map[string]any{"entry_point": direction})
		}
	}

	return nil
}

// LoadFile reads a JSON catalog with the same shape as Mainnet.
func LoadFile(path string) (Catalog, *apperrors.AppError) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, catalogError("failed to read catalog file", map[string]any{"path": path, "error": err.Error()})
	}

	decoded := Catalog{}
	if err := json.Unmarshal(content, &decoded); err != nil {
		return Catalog{}, catalogError("catalog file must be valid JSON", map[string]any{"path": path, "error": err.Error()})
	}
	if appErr := decoded.Validate(); appErr != nil {
		return Catalog{}, appErr
	}

	return decoded, nil
}

func validateTypeTags(owner string, tags ...string) *apperrors.AppError {
	for _, tag := range tags {
		if _, err := suitx.ParseTypeTag(tag); err != nil {
			return catalogError("type tag is invalid", map[string]any{
				"owner":    owner,
				"type_tag": tag,
				"error":    err.Error(),
			})
		}
	}
	return nil
}

func catalogError(message string, details map[string]any) *apperrors.AppError {
	return apperrors.NewInternal("catalog_invalid", message, details)
}
