//go:build !integration

package ephemeral

import (
	"testing"

	valueobjects "lendit/internal/domain/value_objects"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSenderIsFreshEachCall(t *testing.T) {
	provider := NewSenderProvider()

	first, appErr := provider.NewSender()
	require.Nil(t, appErr)
	second, appErr := provider.NewSender()
	require.Nil(t, appErr)

	assert.NotEqual(t, first, second)
	normalized, ok := valueobjects.NormalizeSuiAddress(first)
	assert.True(t, ok)
	assert.Equal(t, first, normalized)
}
