package paillier

import (
	"math/big"

	"github.com/cronokirby/saferith"
	"github.com/taurusgroup/paillier-go/pkg/math/arith"
)

// SecretKey is the secret part of a Paillier key pair.
//
// It holds λ = ϕ(N) = (p-1)(q-1) and µ = λ⁻¹ (mod N). The prime factors
// themselves are not retained.
type SecretKey struct {
	*PublicKey
	// lambda = λ = ϕ(N)
	lambda *saferith.Nat
	// mu = µ = λ⁻¹ (mod N)
	mu *saferith.Nat
}

// NewSecretKeyFromPrimes derives a key pair from the primes p and q.
//
// It returns ErrInvalidKeyMaterial if λ is not invertible modulo N, which
// cannot happen when p and q are distinct primes.
func NewSecretKeyFromPrimes(p, q *big.Int) (*SecretKey, error) {
	one := big.NewInt(1)

	n := new(big.Int).Mul(p, q)
	pMinusOne := new(big.Int).Sub(p, one)
	qMinusOne := new(big.Int).Sub(q, one)
	lambda := new(big.Int).Mul(pMinusOne, qMinusOne)

	mu, err := arith.ModInverse(lambda, n)
	if err != nil {
		return nil, ErrInvalidKeyMaterial
	}

	pk := NewPublicKey(n)
	return &SecretKey{
		PublicKey: pk,
		lambda:    new(saferith.Nat).SetBig(lambda, lambda.BitLen()),
		mu:        new(saferith.Nat).SetBig(mu, pk.n.BitLen()),
	}, nil
}

// Lambda returns λ = (p-1)(q-1).
func (sk *SecretKey) Lambda() *big.Int {
	return sk.lambda.Big()
}

// Mu returns µ = λ⁻¹ (mod N).
func (sk *SecretKey) Mu() *big.Int {
	return sk.mu.Big()
}

// Dec decrypts ct and returns the plaintext m ∈ [0, N).
//
// It returns ErrCiphertextInvalid if ct is not a unit modulo N².
func (sk *SecretKey) Dec(ct *Ciphertext) (*big.Int, error) {
	if !sk.PublicKey.ValidateCiphertext(ct) {
		return nil, ErrCiphertextInvalid
	}

	n := sk.PublicKey.n

	// m = ctᵉ (mod N²), with e = λ
	m := new(saferith.Nat).Exp(ct.c, sk.lambda, sk.PublicKey.nSquared)
	// m = ctᵉ - 1; exact, since ctᵉ ≡ 1 (mod N)
	m.Sub(m, oneNat, -1)
	// m = (ctᵉ - 1)/N
	m.Div(m, n, -1)
	// m = [(ctᵉ - 1)/N] ⋅ µ (mod N)
	m.ModMul(m, sk.mu, n)

	return m.Big(), nil
}
