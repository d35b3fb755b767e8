package valueobjects

import (
	"strings"

	apperrors "lendit/internal/shared_kernel/errors"
)

type ArgumentKind string

const (
	ArgumentObject      ArgumentKind = "object"
	ArgumentPureU8      ArgumentKind = "pure_u8"
	ArgumentPureU64     ArgumentKind = "pure_u64"
	ArgumentPureAddress ArgumentKind = "pure_address"
	// ArgumentInputCoin marks where a template expects the coin carved out
	// of the caller's balance. It is replaced before encoding.
	ArgumentInputCoin ArgumentKind = "input_coin"
	ArgumentResult    ArgumentKind = "result"
)

type Argument struct {
	Kind     ArgumentKind `json:"kind"`
	ObjectID string       `json:"object_id,omitempty"`
	Value    uint64       `json:"value,omitempty"`
	Address  string       `json:"address,omitempty"`
	Command  int          `json:"command,omitempty"`
	Index    int          `json:"index,omitempty"`
}

func ObjectArgument(objectID string) Argument {
	return Argument{Kind: ArgumentObject, ObjectID: objectID}
}

func PureU8Argument(value uint8) Argument {
	return Argument{Kind: ArgumentPureU8, Value: uint64(value)}
}

func PureU64Argument(value uint64) Argument {
	return Argument{Kind: ArgumentPureU64, Value: value}
}

func PureAddressArgument(address string) Argument {
	return Argument{Kind: ArgumentPureAddress, Address: address}
}

func InputCoinArgument() Argument {
	return Argument{Kind: ArgumentInputCoin}
}

func ResultArgument(command, index int) Argument {
	return Argument{Kind: ArgumentResult, Command: command, Index: index}
}

func (a Argument) Validate() *apperrors.AppError {
	switch a.Kind {
	case ArgumentObject:
		if _, ok := NormalizeSuiAddress(a.ObjectID); !ok {
			return invalidArgument(a, "object argument requires a valid object id")
		}
	case ArgumentPureU8:
		if a.Value > 0xff {
			return invalidArgument(a, "u8 argument is out of range")
		}
	case ArgumentPureU64, ArgumentInputCoin:
	case ArgumentPureAddress:
		if _, ok := NormalizeSuiAddress(a.Address); !ok {
			return invalidArgument(a, "address argument is invalid")
		}
	case ArgumentResult:
		if a.Command < 0 || a.Index < 0 {
			return invalidArgument(a, "result argument index is negative")
		}
	default:
		return invalidArgument(a, "argument kind is not supported")
	}

	return nil
}

// MoveCall describes one Move entry point invocation. Target has the form
// package::module::function.
type MoveCall struct {
	Target        string     `json:"target"`
	TypeArguments []string   `json:"type_arguments,omitempty"`
	Arguments     []Argument `json:"arguments"`
}

func (m MoveCall) SplitTarget() (string, string, string, *apperrors.AppError) {
	parts := strings.Split(strings.TrimSpace(m.Target), "::")
	if len(parts) != 3 || parts[1] == "" || parts[2] == "" {
		return "", "", "", apperrors.NewInternal(
			"move_call_target_invalid",
			"move call target must be package::module::function",
			map[string]any{"target": m.Target},
		)
	}

	pkg, ok := NormalizeSuiAddress(parts[0])
	if !ok {
		return "", "", "", apperrors.NewInternal(
			"move_call_target_invalid",
			"move call package id is invalid",
			map[string]any{"target": m.Target},
		)
	}

	return pkg, parts[1], parts[2], nil
}

func (m MoveCall) Validate() *apperrors.AppError {
	if _, _, _, appErr := m.SplitTarget(); appErr != nil {
		return appErr
	}
	for _, arg := range m.Arguments {
		if appErr := arg.Validate(); appErr != nil {
			return appErr
		}
	}

	return nil
}

// WithInputCoin returns a copy of the call whose input coin placeholders are
// replaced by coin.
func (m MoveCall) WithInputCoin(coin Argument) MoveCall {
	args := make([]Argument, len(m.Arguments))
	for i, arg := range m.Arguments {
		if arg.Kind == ArgumentInputCoin {
			args[i] = coin
			continue
		}
		args[i] = arg
	}

	typeArgs := append([]string(nil), m.TypeArguments...)
	return MoveCall{Target: m.Target, TypeArguments: typeArgs, Arguments: args}
}

func (m MoveCall) CountArguments(kind ArgumentKind) int {
	count := 0
	for _, arg := range m.Arguments {
		if arg.Kind == kind {
			count++
		}
	}
	return count
}

func invalidArgument(a Argument, message string) *apperrors.AppError {
	return apperrors.NewInternal(
		"move_call_argument_invalid",
		message,
		map[string]any{"kind": string(a.Kind), "object_id": a.ObjectID},
	)
}
