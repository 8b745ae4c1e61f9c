package paillier

import (
	"io"
	"math/big"
)

// SignedDifference decrypts the homomorphic difference c1 ⊖ c2 and
// reinterprets it as a signed integer: a value d > N/2 is taken to be d - N.
//
// This assumes |m₁-m₂| < N/2; callers must size N accordingly, since a
// larger difference silently wraps around with the wrong sign.
func (sk *SecretKey) SignedDifference(c1, c2 *Ciphertext) (*big.Int, error) {
	diff := c1.Clone().Sub(sk.PublicKey, c2)
	d, err := sk.Dec(diff)
	if err != nil {
		return nil, err
	}
	if d.Cmp(sk.nHalf) > 0 {
		d.Sub(d, sk.nBig)
	}
	return d, nil
}

// CompareGE reports whether m1 ≥ m2, by encrypting both operands and
// inspecting the sign of their decrypted difference.
//
// This is a single-party convenience for demonstrations: the caller holds
// the secret key and learns the full difference, not just its sign. It is
// NOT a secure comparison protocol between mutually distrusting parties.
func (sk *SecretKey) CompareGE(random io.Reader, m1, m2 *big.Int) (bool, error) {
	c1, _, err := sk.PublicKey.Enc(random, m1)
	if err != nil {
		return false, err
	}
	c2, _, err := sk.PublicKey.Enc(random, m2)
	if err != nil {
		return false, err
	}
	d, err := sk.SignedDifference(c1, c2)
	if err != nil {
		return false, err
	}
	return d.Sign() >= 0, nil
}
