//go:build !integration

package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveCallSplitTarget(t *testing.T) {
	call := MoveCall{Target: "0x2::coin::value"}

	pkg, module, function, appErr := call.SplitTarget()
	require.Nil(t, appErr)
	assert.Equal(t, "0x0000000000000000000000000000000000000000000000000000000000000002", pkg)
	assert.Equal(t, "coin", module)
	assert.Equal(t, "value", function)

	_, _, _, appErr = MoveCall{Target: "0x2::coin"}.SplitTarget()
	require.NotNil(t, appErr)
}

func TestMoveCallWithInputCoinReplacesPlaceholder(t *testing.T) {
	template := MoveCall{
		Target:        "0x2::pool::deposit",
		TypeArguments: []string{"0x2::sui::SUI"},
		Arguments: []Argument{
			ObjectArgument("0x6"),
			InputCoinArgument(),
			PureU8Argument(10),
		},
	}

	call := template.WithInputCoin(ResultArgument(1, 0))

	assert.Equal(t, ArgumentResult, call.Arguments[1].Kind)
	assert.Equal(t, 1, call.Arguments[1].Command)
	assert.Equal(t, ArgumentInputCoin, template.Arguments[1].Kind)
	assert.Equal(t, 0, call.CountArguments(ArgumentInputCoin))
}

func TestArgumentValidate(t *testing.T) {
	assert.Nil(t, PureU8Argument(255).Validate())
	assert.NotNil(t, Argument{Kind: ArgumentPureU8, Value: 256}.Validate())
	assert.NotNil(t, ObjectArgument("not-hex").Validate())
	assert.NotNil(t, Argument{Kind: "vector"}.Validate())
}
