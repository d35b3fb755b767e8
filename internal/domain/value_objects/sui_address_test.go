//go:build !integration

package valueobjects

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSuiAddressPadsShortForms(t *testing.T) {
	normalized, ok := NormalizeSuiAddress("0x6")
	require.True(t, ok)
	assert.Equal(t, "0x"+strings.Repeat("0", 63)+"6", normalized)

	normalized, ok = NormalizeSuiAddress("0xBB4E2F4B6205C2E2A2DB47AEB4F830796EC7C005F88537EE775986639BC442FE")
	require.True(t, ok)
	assert.Equal(t, "0xbb4e2f4b6205c2e2a2db47aeb4f830796ec7c005f88537ee775986639bc442fe", normalized)
}

func TestNormalizeAccountRejectsMissingWallet(t *testing.T) {
	for _, raw := range []string{"", "  ", "0xzz", "0x" + strings.Repeat("a", 65)} {
		_, appErr := NormalizeAccount(raw)
		require.NotNil(t, appErr, "account %q", raw)
		assert.Equal(t, "wallet_not_connected", appErr.Code)
		assert.Equal(t, "wallet not connected", appErr.Message)
	}
}
