package arith

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtendedGCDBezout(t *testing.T) {
	bound := new(big.Int).Lsh(big.NewInt(1), 256)
	for i := 0; i < 50; i++ {
		a, err := rand.Int(rand.Reader, bound)
		require.NoError(t, err)
		b, err := rand.Int(rand.Reader, bound)
		require.NoError(t, err)

		g, x, y := ExtendedGCD(a, b)

		expected := new(big.Int).GCD(nil, nil, a, b)
		require.Equal(t, 0, g.Cmp(expected), "gcd mismatch")

		// a⋅x + b⋅y = g
		lhs := new(big.Int).Mul(a, x)
		lhs.Add(lhs, new(big.Int).Mul(b, y))
		require.Equal(t, 0, lhs.Cmp(g), "Bézout identity violated")
	}
}

func TestModInverse(t *testing.T) {
	tests := []struct {
		a, m, want int64
	}{
		{3, 7, 5},
		{2, 5, 3},
		{10, 17, 12},
		{1, 13, 1},
	}
	for _, tc := range tests {
		inv, err := ModInverse(big.NewInt(tc.a), big.NewInt(tc.m))
		require.NoError(t, err)
		assert.Equal(t, tc.want, inv.Int64(), "inverse of %d mod %d", tc.a, tc.m)
	}
}

func TestModInverseRandom(t *testing.T) {
	m := new(big.Int).Lsh(big.NewInt(1), 512)
	one := big.NewInt(1)
	for i := 0; i < 20; i++ {
		a, err := rand.Int(rand.Reader, m)
		require.NoError(t, err)
		if new(big.Int).GCD(nil, nil, a, m).Cmp(one) != 0 {
			continue
		}
		inv, err := ModInverse(a, m)
		require.NoError(t, err)

		prod := new(big.Int).Mul(a, inv)
		prod.Mod(prod, m)
		require.Equal(t, 0, prod.Cmp(one))
		require.True(t, inv.Sign() > 0 && inv.Cmp(m) < 0, "inverse not reduced")
	}
}

func TestModInverseNoInverse(t *testing.T) {
	// gcd(6, 9) = 3
	_, err := ModInverse(big.NewInt(6), big.NewInt(9))
	assert.ErrorIs(t, err, ErrNoInverse)
}
