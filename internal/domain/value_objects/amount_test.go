//go:build !integration

package valueobjects

import (
	"strings"
	"testing"
	"time"

	apperrors "lendit/internal/shared_kernel/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmountScalesToBaseUnits(t *testing.T) {
	testCases := []struct {
		raw      string
		expected uint64
	}{
		{raw: "100", expected: 100_000_000},
		{raw: "15", expected: 15_000_000},
		{raw: " 0.5 ", expected: 500_000},
		{raw: "1.234567", expected: 1_234_567},
		{raw: "0.000001", expected: 1},
	}

	for _, testCase := range testCases {
		amount, appErr := ParseAmount(testCase.raw, 6)
		require.Nil(t, appErr, "amount %q", testCase.raw)
		assert.Equal(t, testCase.expected, amount.BaseUnits, "amount %q", testCase.raw)
	}
}

func TestParseAmountRejectsInvalidInput(t *testing.T) {
	for _, raw := range []string{"", "   ", "0", "0.000", "-1", "-0.5", "NaN", "abc", "1.2345678", "1e30", "1e-400000000", "1e400000000"} {
		_, appErr := ParseAmount(raw, 6)
		require.NotNil(t, appErr, "amount %q", raw)
		assert.Equal(t, apperrors.TypeValidation, appErr.Type)
		assert.Equal(t, "invalid_amount", appErr.Code)
		assert.Equal(t, "invalid amount", appErr.Message)
	}
}

func TestParseAmountRejectsExtremeExponentsQuickly(t *testing.T) {
	oversized := "1" + strings.Repeat("0", maxAmountLength)

	for _, raw := range []string{"1e-400000000", "1e400000000", "1e21", "1e-71", oversized} {
		done := make(chan *apperrors.AppError, 1)
		go func() {
			_, appErr := ParseAmount(raw, 6)
			done <- appErr
		}()

		select {
		case appErr := <-done:
			require.NotNil(t, appErr, "amount %q", raw)
			assert.Equal(t, "invalid_amount", appErr.Code, "amount %q", raw)
		case <-time.After(time.Second):
			t.Fatalf("ParseAmount(%q) did not return within a second", raw)
		}
	}
}

func TestParseAmountAcceptsExponentNotationInRange(t *testing.T) {
	amount, appErr := ParseAmount("1.5e2", 6)
	require.Nil(t, appErr)
	assert.Equal(t, uint64(150_000_000), amount.BaseUnits)

	amount, appErr = ParseAmount("2.50000000", 6)
	require.Nil(t, appErr)
	assert.Equal(t, uint64(2_500_000), amount.BaseUnits)
}
