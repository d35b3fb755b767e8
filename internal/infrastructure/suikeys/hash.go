package suikeys

import (
	"golang.org/x/crypto/blake2b"
)

const transactionDataDomain = "TransactionData::"

// intentPrefix is scope TransactionData, version V0, app id Sui.
var intentPrefix = [3]byte{0, 0, 0}

func blake2b256(parts ...[]byte) [32]byte {
	hash, _ := blake2b.New256(nil)
	for _, part := range parts {
		_, _ = hash.Write(part)
	}

	var out [32]byte
	copy(out[:], hash.Sum(nil))
	return out
}

// TransactionDigest is the base58 transaction id the ledger reports for
// BCS encoded TransactionData.
func TransactionDigest(txBytes []byte) string {
	sum := blake2b256([]byte(transactionDataDomain), txBytes)
	return EncodeBase58(sum[:])
}

func signingMessage(txBytes []byte) [32]byte {
	return blake2b256(intentPrefix[:], txBytes)
}
