//go:build !integration

package suikeys

import (
	"bytes"
	"crypto/ed25519"
	"encoding/base64"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"
)

func fixedSeed() []byte {
	return bytes.Repeat([]byte{0x07}, 32)
}

func TestBase58KnownVector(t *testing.T) {
	assert.Equal(t, "2NEpo7TZRRrLZSi2U", EncodeBase58([]byte("Hello World!")))

	decoded, err := DecodeBase58("2NEpo7TZRRrLZSi2U")
	require.NoError(t, err)
	assert.Equal(t, []byte("Hello World!"), decoded)

	assert.Equal(t, "111", EncodeBase58([]byte{0, 0, 0}))

	_, err = DecodeBase58("0OIl")
	require.Error(t, err)
}

func TestBech32DecodesReferenceVector(t *testing.T) {
	hrp, payload, err := decodeBech32("A12UEL5L")
	require.NoError(t, err)
	assert.Equal(t, "a", hrp)
	assert.Empty(t, payload)

	_, _, err = decodeBech32("a12uel5m")
	require.Error(t, err)
}

func TestBlake2bEmptyInput(t *testing.T) {
	sum := blake2b256()
	assert.Equal(t, "0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8", hex.EncodeToString(sum[:]))
}

func TestPrivateKeyRoundTrip(t *testing.T) {
	keypair, keyErr := KeypairFromSeed(fixedSeed())
	require.Nil(t, keyErr)

	exported := keypair.ExportPrivateKey()
	assert.Regexp(t, `^suiprivkey1[02-9ac-hj-np-z]+$`, exported)

	parsed, keyErr := ParsePrivateKey(exported)
	require.Nil(t, keyErr)
	assert.Equal(t, keypair.Address(), parsed.Address())

	keystore := base64.StdEncoding.EncodeToString(append([]byte{SchemeEd25519}, fixedSeed()...))
	fromKeystore, keyErr := ParsePrivateKey(keystore)
	require.Nil(t, keyErr)
	assert.Equal(t, keypair.Address(), fromKeystore.Address())
}

func TestParsePrivateKeyRejectsBadMaterial(t *testing.T) {
	cases := map[string]string{
		"empty":          "",
		"garbage":        "not a key!",
		"short":          base64.StdEncoding.EncodeToString([]byte{0, 1, 2}),
		"secp256k1 flag": base64.StdEncoding.EncodeToString(append([]byte{0x01}, fixedSeed()...)),
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, keyErr := ParsePrivateKey(raw)
			require.NotNil(t, keyErr)
		})
	}

	_, keyErr := ParsePrivateKey(base64.StdEncoding.EncodeToString(append([]byte{0x01}, fixedSeed()...)))
	assert.Equal(t, CodeUnsupportedScheme, keyErr.Code)
}

func TestAddressIsBlake2bOfFlaggedPublicKey(t *testing.T) {
	keypair, keyErr := KeypairFromSeed(fixedSeed())
	require.Nil(t, keyErr)

	expected := blake2b.Sum256(append([]byte{0x00}, keypair.PublicKey()...))
	assert.Equal(t, "0x"+hex.EncodeToString(expected[:]), keypair.Address())
	assert.Len(t, keypair.Address(), 66)
}

func TestSignTransactionVerifiesOverIntentDigest(t *testing.T) {
	keypair, keyErr := KeypairFromSeed(fixedSeed())
	require.Nil(t, keyErr)
	txBytes := []byte{0x00, 0x01, 0x02, 0x03}

	serialized, err := base64.StdEncoding.DecodeString(keypair.SignTransaction(txBytes))
	require.NoError(t, err)
	require.Len(t, serialized, 1+64+32)
	assert.Equal(t, SchemeEd25519, serialized[0])
	assert.Equal(t, []byte(keypair.PublicKey()), serialized[65:])

	digest := blake2b.Sum256(append([]byte{0, 0, 0}, txBytes...))
	assert.True(t, ed25519.Verify(keypair.PublicKey(), digest[:], serialized[1:65]))
}

func TestTransactionDigest(t *testing.T) {
	txBytes := []byte{0x00, 0x00, 0x01}
	sum := blake2b.Sum256(append([]byte("TransactionData::"), txBytes...))

	digest := TransactionDigest(txBytes)
	decoded, err := DecodeBase58(digest)
	require.NoError(t, err)
	assert.Equal(t, sum[:], decoded)
}

func TestGenerateKeypairIsFresh(t *testing.T) {
	first, keyErr := GenerateKeypair()
	require.Nil(t, keyErr)
	second, keyErr := GenerateKeypair()
	require.Nil(t, keyErr)

	assert.NotEqual(t, first.Address(), second.Address())
}
