package valueobjects

import (
	"strings"

	apperrors "lendit/internal/shared_kernel/errors"
)

type Direction string

const (
	DirectionDeposit  Direction = "deposit"
	DirectionWithdraw Direction = "withdraw"
)

func ParseDirection(raw string) (Direction, *apperrors.AppError) {
	switch Direction(strings.ToLower(strings.TrimSpace(raw))) {
	case DirectionDeposit:
		return DirectionDeposit, nil
	case DirectionWithdraw:
		return DirectionWithdraw, nil
	default:
		return "", apperrors.NewValidation(
			"invalid_direction",
			"direction must be deposit or withdraw",
			map[string]any{"field": "direction", "direction": raw},
		)
	}
}

func (d Direction) String() string {
	return string(d)
}
