package entities

type CoinObject struct {
	ObjectID string `json:"object_id"`
	CoinType string `json:"coin_type"`
	Balance  uint64 `json:"balance"`
	Version  uint64 `json:"version"`
	Digest   string `json:"digest"`
}

func TotalBalance(coins []CoinObject) uint64 {
	var total uint64
	for _, coin := range coins {
		if total+coin.Balance < total {
			return ^uint64(0)
		}
		total += coin.Balance
	}
	return total
}
