package paillier

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignedDifference(t *testing.T) {
	_, sk := testKeyPair(t, 64)
	pk := sk.PublicKey

	enc := func(m int64) *Ciphertext {
		ct, _, err := pk.Enc(rand.Reader, big.NewInt(m))
		require.NoError(t, err)
		return ct
	}

	d, err := sk.SignedDifference(enc(5), enc(3))
	require.NoError(t, err)
	assert.Equal(t, int64(2), d.Int64())

	d, err = sk.SignedDifference(enc(3), enc(5))
	require.NoError(t, err)
	assert.Equal(t, int64(-2), d.Int64())

	d, err = sk.SignedDifference(enc(7), enc(7))
	require.NoError(t, err)
	assert.Equal(t, int64(0), d.Int64())
}

func TestCompareGE(t *testing.T) {
	_, sk := testKeyPair(t, 64)

	tests := []struct {
		m1, m2 int64
		want   bool
	}{
		{100, 80, true},
		{80, 100, false},
		{50, 50, true},
		{0, 1, false},
		{1, 0, true},
	}
	for _, tc := range tests {
		got, err := sk.CompareGE(rand.Reader, big.NewInt(tc.m1), big.NewInt(tc.m2))
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "CompareGE(%d, %d)", tc.m1, tc.m2)
	}
}

func TestCompareGERejectsOutOfRange(t *testing.T) {
	_, sk := testKeyPair(t, 32)
	_, err := sk.CompareGE(rand.Reader, big.NewInt(-1), big.NewInt(0))
	assert.ErrorIs(t, err, ErrOutOfRange)
}
