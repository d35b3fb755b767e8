package suikeys

import (
	"fmt"
	"math/big"
)

const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

var (
	bigZero       = big.NewInt(0)
	bigFiftyEight = big.NewInt(58)
)

// DecodeBase58 decodes the Bitcoin alphabet Sui uses for object digests.
func DecodeBase58(input string) ([]byte, error) {
	value := big.NewInt(0)

	for i := 0; i < len(input); i++ {
		ch := input[i]
		index := int64(-1)
		for j := 0; j < len(base58Alphabet); j++ {
			if base58Alphabet[j] == ch {
				index = int64(j)
				break
			}
		}
		if index < 0 {
			return nil, fmt.Errorf("invalid base58 character: %q", ch)
		}

		value.Mul(value, bigFiftyEight)
		value.Add(value, big.NewInt(index))
	}

	decoded := value.Bytes()
	leadingZeroes := 0
	for leadingZeroes < len(input) && input[leadingZeroes] == '1' {
		leadingZeroes++
	}

	out := make([]byte, leadingZeroes+len(decoded))
	copy(out[leadingZeroes:], decoded)
	return out, nil
}

func EncodeBase58(input []byte) string {
	value := new(big.Int).SetBytes(input)
	mod := new(big.Int)
	encoded := make([]byte, 0, len(input)*138/100+1)

	for value.Cmp(bigZero) > 0 {
		value.DivMod(value, bigFiftyEight, mod)
		encoded = append(encoded, base58Alphabet[mod.Int64()])
	}

	for i := 0; i < len(input) && input[i] == 0; i++ {
		encoded = append(encoded, '1')
	}

	for i, j := 0, len(encoded)-1; i < j; i, j = i+1, j-1 {
		encoded[i], encoded[j] = encoded[j], encoded[i]
	}

	return string(encoded)
}
