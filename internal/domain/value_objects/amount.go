package valueobjects

import (
	"strings"

	apperrors "lendit/internal/shared_kernel/errors"

	"github.com/shopspring/decimal"
)

const (
	maxAmountLength = 64
	// u64 holds at most 20 decimal digits.
	maxAmountExponent = 20
)

// Amount is a user supplied token quantity together with its base-unit form.
type Amount struct {
	Display   decimal.Decimal
	BaseUnits uint64
}

// ParseAmount accepts a positive decimal string with at most `decimals`
// fractional digits whose scaled value fits in a u64.
func ParseAmount(raw string, decimals int32) (Amount, *apperrors.AppError) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || len(trimmed) > maxAmountLength {
		return Amount{}, invalidAmount(raw)
	}

	value, err := decimal.NewFromString(trimmed)
	if err != nil {
		return Amount{}, invalidAmount(raw)
	}
	if !value.IsPositive() {
		return Amount{}, invalidAmount(raw)
	}
	// Rescaling builds 10^|exponent|, so out-of-range exponents are
	// rejected first. The coefficient has fewer than maxAmountLength
	// digits, so anything below this floor is smaller than one base unit.
	if exponent := value.Exponent(); exponent > maxAmountExponent || exponent < -(decimals+maxAmountLength) {
		return Amount{}, invalidAmount(raw)
	}

	scaled := value.Shift(decimals)
	if !scaled.Equal(scaled.Truncate(0)) {
		return Amount{}, apperrors.NewValidation(
			"invalid_amount",
			"invalid amount",
			map[string]any{"field": "amount", "amount": raw, "max_decimals": decimals},
		)
	}

	base := scaled.BigInt()
	if !base.IsUint64() {
		return Amount{}, invalidAmount(raw)
	}

	return Amount{Display: value, BaseUnits: base.Uint64()}, nil
}

func (a Amount) String() string {
	return a.Display.String()
}

func invalidAmount(raw string) *apperrors.AppError {
	return apperrors.NewValidation(
		"invalid_amount",
		"invalid amount",
		map[string]any{"field": "amount", "amount": raw},
	)
}
