package suikeys

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"strings"
)

const (
	PrivateKeyPrefix = "suiprivkey"

	// SchemeEd25519 is the signature scheme flag prepended to keys,
	// signatures and address preimages.
	SchemeEd25519 byte = 0x00
)

type Keypair struct {
	private ed25519.PrivateKey
}

func GenerateKeypair() (Keypair, *KeyError) {
	_, private, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return Keypair{}, wrapKeyError(CodeKeyGenerationFailed, "failed to generate ed25519 key", err)
	}
	return Keypair{private: private}, nil
}

func KeypairFromSeed(seed []byte) (Keypair, *KeyError) {
	if len(seed) != ed25519.SeedSize {
		return Keypair{}, wrapKeyError(CodeInvalidKeyMaterialFormat, "ed25519 seed must be 32 bytes", nil)
	}
	return Keypair{private: ed25519.NewKeyFromSeed(seed)}, nil
}

// ParsePrivateKey accepts the bech32 "suiprivkey1..." export format and the
// base64 keystore format, both carrying flag || 32-byte seed.
func ParsePrivateKey(raw string) (Keypair, *KeyError) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Keypair{}, wrapKeyError(CodeInvalidKeyMaterialFormat, "private key is empty", nil)
	}

	var payload []byte
	if strings.HasPrefix(strings.ToLower(trimmed), PrivateKeyPrefix+"1") {
		hrp, decoded, err := decodeBech32(trimmed)
		if err != nil {
			return Keypair{}, wrapKeyError(CodeInvalidKeyMaterialFormat, "private key is not valid bech32", err)
		}
		if hrp != PrivateKeyPrefix {
			return Keypair{}, wrapKeyError(CodeInvalidKeyMaterialFormat, "private key has an unexpected prefix", nil)
		}
		payload = decoded
	} else {
		decoded, err := base64.StdEncoding.DecodeString(trimmed)
		if err != nil {
			return Keypair{}, wrapKeyError(CodeInvalidKeyMaterialFormat, "private key is neither bech32 nor base64", err)
		}
		payload = decoded
	}

	if len(payload) != 1+ed25519.SeedSize {
		return Keypair{}, wrapKeyError(CodeInvalidKeyMaterialFormat, "private key must be a flag byte and a 32-byte seed", nil)
	}
	if payload[0] != SchemeEd25519 {
		return Keypair{}, wrapKeyError(CodeUnsupportedScheme, "only ed25519 keys are supported", nil)
	}

	return KeypairFromSeed(payload[1:])
}

func (k Keypair) PublicKey() ed25519.PublicKey {
	return k.private.Public().(ed25519.PublicKey)
}

// Address is blake2b-256(flag || public key) in 0x-prefixed hex.
func (k Keypair) Address() string {
	sum := blake2b256([]byte{SchemeEd25519}, k.PublicKey())
	return "0x" + hex.EncodeToString(sum[:])
}

func (k Keypair) ExportPrivateKey() string {
	payload := append([]byte{SchemeEd25519}, k.private.Seed()...)
	encoded, _ := encodeBech32(PrivateKeyPrefix, payload)
	return encoded
}

// SignTransaction signs the intent message for txBytes and returns the
// serialized signature: base64(flag || signature || public key).
func (k Keypair) SignTransaction(txBytes []byte) string {
	digest := signingMessage(txBytes)
	signature := ed25519.Sign(k.private, digest[:])

	serialized := make([]byte, 0, 1+ed25519.SignatureSize+ed25519.PublicKeySize)
	serialized = append(serialized, SchemeEd25519)
	serialized = append(serialized, signature...)
	serialized = append(serialized, k.PublicKey()...)
	return base64.StdEncoding.EncodeToString(serialized)
}
