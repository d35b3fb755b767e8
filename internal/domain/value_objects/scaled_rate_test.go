//go:build !integration

package valueobjects

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeLittleEndianMatchesPositionalSum(t *testing.T) {
	value := []byte{0x01, 0x02, 0x03, 0xff}

	expected := new(big.Int)
	for i, b := range value {
		term := new(big.Int).Exp(big.NewInt(256), big.NewInt(int64(i)), nil)
		term.Mul(term, big.NewInt(int64(b)))
		expected.Add(expected, term)
	}

	assert.Equal(t, 0, DecodeLittleEndian(value).Cmp(expected))
}

func TestDecodeLittleEndianRoundTripBeyondUint64(t *testing.T) {
	original, ok := new(big.Int).SetString("340282366920938463463374607431768211455123", 10)
	require.True(t, ok)

	encoded := EncodeLittleEndian(original, 32)
	require.Len(t, encoded, 32)

	assert.Equal(t, 0, DecodeLittleEndian(encoded).Cmp(original))
}

func TestDecodeMoveIntegerValidatesWidth(t *testing.T) {
	encoded := EncodeLittleEndian(big.NewInt(53000000000000000), 16)

	decoded, appErr := DecodeMoveInteger(encoded, "u128")
	require.Nil(t, appErr)
	assert.Equal(t, "53000000000000000", decoded.String())

	_, appErr = DecodeMoveInteger(encoded, "u64")
	require.NotNil(t, appErr)
	assert.Equal(t, "rate_result_malformed", appErr.Code)

	_, appErr = DecodeMoveInteger(nil, "")
	require.NotNil(t, appErr)

	_, appErr = DecodeMoveInteger(make([]byte, 33), "")
	require.NotNil(t, appErr)
}

func TestScaledRatePercent(t *testing.T) {
	rate := NewScaledRate(big.NewInt(53000000000000000), 16)
	assert.Equal(t, "5.30", rate.Percent())

	assert.Equal(t, "0.00", ZeroRate(16).Percent())
}

func TestMaxRate(t *testing.T) {
	a := NewScaledRate(big.NewInt(41), 16)
	b := NewScaledRate(big.NewInt(42), 16)

	assert.Equal(t, "42", MaxRate(a, b).String())
	assert.Equal(t, "42", MaxRate(b, a).String())
	assert.Equal(t, "0", MaxRate(ZeroRate(16), ZeroRate(16)).String())
}

func TestNewScaledRateClampsNegative(t *testing.T) {
	assert.True(t, NewScaledRate(big.NewInt(-5), 16).IsZero())
}
