// Package arith provides exact integer arithmetic helpers over signed
// arbitrary-precision integers.
package arith

import (
	"errors"
	"math/big"
)

// ErrNoInverse is returned when the requested modular inverse does not exist,
// i.e. gcd(a, m) ≠ 1.
var ErrNoInverse = errors.New("arith: modular inverse does not exist")

// ExtendedGCD returns (g, x, y) such that a⋅x + b⋅y = g = gcd(a, b).
//
// The computation is iterative, so it is safe for operands of arbitrary
// bit length.
func ExtendedGCD(a, b *big.Int) (g, x, y *big.Int) {
	// Invariants, maintained across iterations:
	//   oldR = a⋅oldS + b⋅oldT
	//   r    = a⋅s    + b⋅t
	oldR, r := new(big.Int).Set(a), new(big.Int).Set(b)
	oldS, s := big.NewInt(1), big.NewInt(0)
	oldT, t := big.NewInt(0), big.NewInt(1)

	q := new(big.Int)
	tmp := new(big.Int)
	for r.Sign() != 0 {
		q.Quo(oldR, r)

		tmp.Mul(q, r)
		oldR.Sub(oldR, tmp)
		oldR, r = r, oldR

		tmp.Mul(q, s)
		oldS.Sub(oldS, tmp)
		oldS, s = s, oldS

		tmp.Mul(q, t)
		oldT.Sub(oldT, tmp)
		oldT, t = t, oldT
	}
	return oldR, oldS, oldT
}

// ModInverse returns a⁻¹ (mod m), computed with the extended Euclidean
// algorithm.
//
// It returns ErrNoInverse when a is not a unit modulo m.
func ModInverse(a, m *big.Int) (*big.Int, error) {
	g, x, _ := ExtendedGCD(a, m)
	if g.CmpAbs(big.NewInt(1)) != 0 {
		return nil, ErrNoInverse
	}
	// A negative gcd means the Bézout coefficients carry the opposite sign.
	if g.Sign() < 0 {
		x.Neg(x)
	}
	x.Mod(x, m)
	return x, nil
}
