package paillier

import (
	"crypto/rand"
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCiphertextDecimalString(t *testing.T) {
	pk, sk := testKeyPair(t, 64)

	ct, _, err := pk.Enc(rand.Reader, big.NewInt(42))
	require.NoError(t, err)

	// The decimal encoding is what the SQL consumer stores in its
	// encrypted columns; it must round-trip exactly.
	decoded, err := CiphertextFromString(ct.String())
	require.NoError(t, err)
	require.True(t, ct.Equal(decoded))

	dec, err := sk.Dec(decoded)
	require.NoError(t, err)
	require.Equal(t, int64(42), dec.Int64())
}

func TestCiphertextFromStringRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "abc", "12x3", "-5", "0x10", "12.5"} {
		_, err := CiphertextFromString(s)
		assert.ErrorIs(t, err, ErrParse, "input %q", s)
	}
}

func TestMarshalZeroValues(t *testing.T) {
	// A zero-value ciphertext or nonce holds no integer; encoding it must
	// fail cleanly rather than dereference the missing value.
	var ct Ciphertext
	_, err := json.Marshal(&ct)
	assert.ErrorIs(t, err, ErrParse)
	_, err = ct.MarshalBinary()
	assert.ErrorIs(t, err, ErrParse)
	assert.Equal(t, "<nil>", ct.String())

	var nonce Nonce
	_, err = json.Marshal(&nonce)
	assert.ErrorIs(t, err, ErrParse)
}

func TestCiphertextJSON(t *testing.T) {
	pk, sk := testKeyPair(t, 64)

	ct, _, err := pk.Enc(rand.Reader, big.NewInt(1234))
	require.NoError(t, err)

	data, err := json.Marshal(ct)
	require.NoError(t, err)

	var decoded Ciphertext
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.True(t, ct.Equal(&decoded))

	dec, err := sk.Dec(&decoded)
	require.NoError(t, err)
	require.Equal(t, int64(1234), dec.Int64())

	var bad Ciphertext
	err = json.Unmarshal([]byte(`"not-a-number"`), &bad)
	assert.Error(t, err)
}

func TestPublicKeyJSON(t *testing.T) {
	pk, _ := testKeyPair(t, 64)

	data, err := json.Marshal(pk)
	require.NoError(t, err)

	decoded := &PublicKey{}
	require.NoError(t, json.Unmarshal(data, decoded))
	require.True(t, pk.Equal(decoded))
	require.Equal(t, 0, pk.G().Cmp(decoded.G()), "derived generator must be rebuilt")
}

func TestSecretKeyJSON(t *testing.T) {
	pk, sk := testKeyPair(t, 64)

	data, err := json.Marshal(sk)
	require.NoError(t, err)

	decoded := &SecretKey{}
	require.NoError(t, json.Unmarshal(data, decoded))
	require.Equal(t, 0, sk.Lambda().Cmp(decoded.Lambda()))
	require.Equal(t, 0, sk.Mu().Cmp(decoded.Mu()))

	// The reconstructed key must decrypt ciphertexts from the original pair.
	ct, _, err := pk.Enc(rand.Reader, big.NewInt(99))
	require.NoError(t, err)
	dec, err := decoded.Dec(ct)
	require.NoError(t, err)
	require.Equal(t, int64(99), dec.Int64())
}

func TestBinaryRoundTrip(t *testing.T) {
	pk, sk := testKeyPair(t, 64)

	pkData, err := pk.MarshalBinary()
	require.NoError(t, err)
	pkDecoded := &PublicKey{}
	require.NoError(t, pkDecoded.UnmarshalBinary(pkData))
	require.True(t, pk.Equal(pkDecoded))

	skData, err := sk.MarshalBinary()
	require.NoError(t, err)
	skDecoded := &SecretKey{}
	require.NoError(t, skDecoded.UnmarshalBinary(skData))

	ct, _, err := pkDecoded.Enc(rand.Reader, big.NewInt(2026))
	require.NoError(t, err)

	ctData, err := ct.MarshalBinary()
	require.NoError(t, err)
	ctDecoded := &Ciphertext{}
	require.NoError(t, ctDecoded.UnmarshalBinary(ctData))

	dec, err := skDecoded.Dec(ctDecoded)
	require.NoError(t, err)
	require.Equal(t, int64(2026), dec.Int64())

	assert.Error(t, pkDecoded.UnmarshalBinary([]byte("garbage")))
}

func TestFingerprintStable(t *testing.T) {
	pk, _ := testKeyPair(t, 32)

	fp1 := pk.Fingerprint()
	fp2 := pk.Fingerprint()
	require.Equal(t, fp1, fp2)

	other, _ := testKeyPair(t, 32)
	require.NotEqual(t, fp1, other.Fingerprint(), "distinct keys must have distinct fingerprints")
}
