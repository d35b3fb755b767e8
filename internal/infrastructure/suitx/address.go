package suitx

import (
	"encoding/hex"
	"fmt"

	valueobjects "lendit/internal/domain/value_objects"
)

type Address [32]byte

func ParseAddress(raw string) (Address, error) {
	normalized, ok := valueobjects.NormalizeSuiAddress(raw)
	if !ok {
		return Address{}, fmt.Errorf("invalid sui address: %q", raw)
	}

	decoded, err := hex.DecodeString(normalized[2:])
	if err != nil {
		return Address{}, fmt.Errorf("invalid sui address: %w", err)
	}

	var out Address
	copy(out[:], decoded)
	return out, nil
}

func MustParseAddress(raw string) Address {
	address, err := ParseAddress(raw)
	if err != nil {
		panic(err)
	}
	return address
}

func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}
