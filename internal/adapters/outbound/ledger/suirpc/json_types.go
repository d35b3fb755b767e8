package suirpc

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// suiUint64 accepts both the quoted decimal strings the node uses for u64
// fields and plain JSON numbers.
type suiUint64 uint64

func (v *suiUint64) UnmarshalJSON(raw []byte) error {
	text := strings.Trim(string(raw), `"`)
	parsed, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid u64 %s: %w", raw, err)
	}
	*v = suiUint64(parsed)
	return nil
}

type coinPage struct {
	Data        []coinData `json:"data"`
	NextCursor  *string    `json:"nextCursor"`
	HasNextPage bool       `json:"hasNextPage"`
}

type coinData struct {
	CoinType     string    `json:"coinType"`
	CoinObjectID string    `json:"coinObjectId"`
	Version      suiUint64 `json:"version"`
	Digest       string    `json:"digest"`
	Balance      suiUint64 `json:"balance"`
}

type executionStatus struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

type transactionEffects struct {
	Status executionStatus `json:"status"`
}

type devInspectResponse struct {
	Effects transactionEffects  `json:"effects"`
	Results []devInspectCommand `json:"results"`
	Error   string              `json:"error"`
}

// devInspectCommand return values are [bytes, move type] pairs where bytes
// is a JSON array of numbers.
type devInspectCommand struct {
	ReturnValues []json.RawMessage `json:"returnValues"`
}

type objectResponse struct {
	Data  *objectData     `json:"data"`
	Error json.RawMessage `json:"error"`
}

type objectData struct {
	ObjectID string          `json:"objectId"`
	Version  suiUint64       `json:"version"`
	Digest   string          `json:"digest"`
	Owner    json.RawMessage `json:"owner"`
}

type sharedOwner struct {
	Shared *struct {
		InitialSharedVersion suiUint64 `json:"initial_shared_version"`
	} `json:"Shared"`
}

type normalizedFunction struct {
	Parameters []json.RawMessage `json:"parameters"`
}

type executeResponse struct {
	Digest  string             `json:"digest"`
	Effects transactionEffects `json:"effects"`
}

func decodeReturnValue(raw json.RawMessage) ([]byte, string, error) {
	pair := []json.RawMessage{}
	if err := json.Unmarshal(raw, &pair); err != nil {
		return nil, "", err
	}
	if len(pair) != 2 {
		return nil, "", fmt.Errorf("return value must be a [bytes, type] pair")
	}

	numbers := []int{}
	if err := json.Unmarshal(pair[0], &numbers); err != nil {
		return nil, "", err
	}
	moveType := ""
	if err := json.Unmarshal(pair[1], &moveType); err != nil {
		return nil, "", err
	}

	value := make([]byte, len(numbers))
	for i, number := range numbers {
		if number < 0 || number > 0xff {
			return nil, "", fmt.Errorf("return value byte %d out of range", number)
		}
		value[i] = byte(number)
	}

	return value, moveType, nil
}

func isMutableReference(parameter json.RawMessage) bool {
	shape := map[string]json.RawMessage{}
	if err := json.Unmarshal(parameter, &shape); err != nil {
		return false
	}
	_, mutable := shape["MutableReference"]
	return mutable
}
