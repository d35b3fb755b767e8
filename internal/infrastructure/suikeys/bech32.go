package suikeys

import (
	"fmt"
	"strings"
)

const bech32Charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

var bech32Generator = [5]uint32{
	0x3b6a57b2,
	0x26508e6d,
	0x1ea119fa,
	0x3d4233dd,
	0x2a1462b3,
}

func bech32Polymod(values []byte) uint32 {
	chk := uint32(1)
	for _, value := range values {
		top := chk >> 25
		chk = (chk&0x1ffffff)<<5 ^ uint32(value)
		for i := 0; i < len(bech32Generator); i++ {
			if ((top >> uint(i)) & 1) == 1 {
				chk ^= bech32Generator[i]
			}
		}
	}
	return chk
}

func bech32HRPExpand(hrp string) []byte {
	expanded := make([]byte, 0, len(hrp)*2+1)
	for i := 0; i < len(hrp); i++ {
		expanded = append(expanded, hrp[i]>>5)
	}
	expanded = append(expanded, 0)
	for i := 0; i < len(hrp); i++ {
		expanded = append(expanded, hrp[i]&31)
	}
	return expanded
}

func bech32CreateChecksum(hrp string, data []byte) []byte {
	values := append(bech32HRPExpand(hrp), data...)
	values = append(values, 0, 0, 0, 0, 0, 0)
	polymod := bech32Polymod(values) ^ 1

	checksum := make([]byte, 6)
	for i := 0; i < 6; i++ {
		checksum[i] = byte((polymod >> uint(5*(5-i))) & 31)
	}
	return checksum
}

// encodeBech32 takes 8-bit payload bytes and regroups them itself.
func encodeBech32(hrp string, payload []byte) (string, error) {
	if hrp == "" {
		return "", fmt.Errorf("bech32 hrp is empty")
	}

	data, err := convertBits(payload, 8, 5, true)
	if err != nil {
		return "", err
	}

	hrp = strings.ToLower(hrp)
	combined := append(data, bech32CreateChecksum(hrp, data)...)

	builder := strings.Builder{}
	builder.Grow(len(hrp) + 1 + len(combined))
	builder.WriteString(hrp)
	builder.WriteByte('1')
	for _, value := range combined {
		builder.WriteByte(bech32Charset[value])
	}

	return builder.String(), nil
}

// decodeBech32 returns the human readable part and the 8-bit payload.
func decodeBech32(input string) (string, []byte, error) {
	if strings.ToLower(input) != input && strings.ToUpper(input) != input {
		return "", nil, fmt.Errorf("bech32 string mixes case")
	}
	input = strings.ToLower(input)

	separator := strings.LastIndexByte(input, '1')
	if separator < 1 || separator+7 > len(input) {
		return "", nil, fmt.Errorf("bech32 separator is misplaced")
	}

	hrp := input[:separator]
	data := make([]byte, 0, len(input)-separator-1)
	for i := separator + 1; i < len(input); i++ {
		index := strings.IndexByte(bech32Charset, input[i])
		if index < 0 {
			return "", nil, fmt.Errorf("invalid bech32 character: %q", input[i])
		}
		data = append(data, byte(index))
	}

	if bech32Polymod(append(bech32HRPExpand(hrp), data...)) != 1 {
		return "", nil, fmt.Errorf("bech32 checksum mismatch")
	}

	payload, err := convertBits(data[:len(data)-6], 5, 8, false)
	if err != nil {
		return "", nil, err
	}

	return hrp, payload, nil
}

func convertBits(data []byte, fromBits, toBits uint, pad bool) ([]byte, error) {
	var (
		accumulator uint
		bits        uint
		maxValue    = uint((1 << toBits) - 1)
	)
	out := make([]byte, 0, len(data)*int(fromBits)/int(toBits)+1)

	for _, value := range data {
		if uint(value)>>fromBits != 0 {
			return nil, fmt.Errorf("value out of range")
		}
		accumulator = (accumulator << fromBits) | uint(value)
		bits += fromBits
		for bits >= toBits {
			bits -= toBits
			out = append(out, byte((accumulator>>bits)&maxValue))
		}
	}

	if pad {
		if bits > 0 {
			out = append(out, byte((accumulator<<(toBits-bits))&maxValue))
		}
	} else if bits >= fromBits || ((accumulator<<(toBits-bits))&maxValue) != 0 {
		return nil, fmt.Errorf("invalid padding")
	}

	return out, nil
}
