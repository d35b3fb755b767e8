package valueobjects

import (
	"math/big"

	apperrors "lendit/internal/shared_kernel/errors"

	"github.com/shopspring/decimal"
)

const maxEncodedIntegerBytes = 32

var moveIntegerWidths = map[string]int{
	"u8":   1,
	"u16":  2,
	"u32":  4,
	"u64":  8,
	"u128": 16,
	"u256": 32,
}

// DecodeLittleEndian returns sum(b[i] * 256^i) without truncation.
func DecodeLittleEndian(value []byte) *big.Int {
	result := new(big.Int)
	for i := len(value) - 1; i >= 0; i-- {
		result.Lsh(result, 8)
		result.Or(result, big.NewInt(int64(value[i])))
	}

	return result
}

// EncodeLittleEndian is the inverse of DecodeLittleEndian, padded to width bytes.
func EncodeLittleEndian(value *big.Int, width int) []byte {
	bigEndian := value.Bytes()
	if width < len(bigEndian) {
		width = len(bigEndian)
	}

	out := make([]byte, width)
	for i, b := range bigEndian {
		out[len(bigEndian)-1-i] = b
	}

	return out
}

// DecodeMoveInteger validates a simulated return value before decoding it.
// moveType may be empty; when it names a known integer width the byte length
// must match it exactly.
func DecodeMoveInteger(value []byte, moveType string) (*big.Int, *apperrors.AppError) {
	if len(value) == 0 || len(value) > maxEncodedIntegerBytes {
		return nil, apperrors.NewInternal(
			"rate_result_malformed",
			"return value has an invalid byte length",
			map[string]any{"length": len(value), "type": moveType},
		)
	}

	if width, known := moveIntegerWidths[moveType]; known && width != len(value) {
		return nil, apperrors.NewInternal(
			"rate_result_malformed",
			"return value length does not match its move type",
			map[string]any{"length": len(value), "type": moveType, "expected_length": width},
		)
	}

	return DecodeLittleEndian(value), nil
}

// ScaledRate is an annual yield encoded as an integer scaled by 10^exponent.
type ScaledRate struct {
	Raw      *big.Int
	Exponent int32
}

func NewScaledRate(raw *big.Int, exponent int32) ScaledRate {
	if raw == nil || raw.Sign() < 0 {
		raw = new(big.Int)
	}

	return ScaledRate{Raw: new(big.Int).Set(raw), Exponent: exponent}
}

func ZeroRate(exponent int32) ScaledRate {
	return NewScaledRate(nil, exponent)
}

func (r ScaledRate) IsZero() bool {
	return r.Raw == nil || r.Raw.Sign() == 0
}

func (r ScaledRate) Cmp(other ScaledRate) int {
	return r.raw().Cmp(other.raw())
}

// Percent renders the rate as a percentage with two decimals, e.g. a raw
// 53000000000000000 at exponent 16 renders as "5.30".
func (r ScaledRate) Percent() string {
	return decimal.NewFromBigInt(r.raw(), -r.Exponent).StringFixed(2)
}

func (r ScaledRate) String() string {
	return r.raw().String()
}

func (r ScaledRate) raw() *big.Int {
	if r.Raw == nil {
		return new(big.Int)
	}
	return r.Raw
}

func MaxRate(rates ...ScaledRate) ScaledRate {
	if len(rates) == 0 {
		return ZeroRate(0)
	}

	best := rates[0]
	for _, rate := range rates[1:] {
		if rate.Cmp(best) > 0 {
			best = rate
		}
	}

	return best
}
