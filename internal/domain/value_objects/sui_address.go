package valueobjects

import (
	"regexp"
	"strings"

	apperrors "lendit/internal/shared_kernel/errors"
)

const suiAddressHexLength = 64

var suiHexPattern = regexp.MustCompile(`^[0-9a-f]{1,64}$`)

// NormalizeSuiAddress lower-cases and left-pads an address or object id to
// the canonical 0x + 64 hex form.
func NormalizeSuiAddress(raw string) (string, bool) {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	trimmed = strings.TrimPrefix(trimmed, "0x")
	if !suiHexPattern.MatchString(trimmed) {
		return "", false
	}

	return "0x" + strings.Repeat("0", suiAddressHexLength-len(trimmed)) + trimmed, true
}

func NormalizeAccount(raw string) (string, *apperrors.AppError) {
	if strings.TrimSpace(raw) == "" {
		return "", apperrors.NewValidation(
			"wallet_not_connected",
			"wallet not connected",
			map[string]any{"field": "account"},
		)
	}

	account, ok := NormalizeSuiAddress(raw)
	if !ok {
		return "", apperrors.NewValidation(
			"wallet_not_connected",
			"wallet not connected",
			map[string]any{"field": "account", "account": raw},
		)
	}

	return account, nil
}
