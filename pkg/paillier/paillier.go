// Package paillier implements the Paillier public-key cryptosystem, an
// additively homomorphic scheme over ℤₙ: the product of two ciphertexts
// decrypts to the sum of their plaintexts.
//
// The variant implemented here fixes the generator g = N+1, so that
// λ = ϕ(N) = (p-1)(q-1) and µ = λ⁻¹ (mod N). This is valid because p and q
// are generated with equal bit length.
//
// Keys are immutable after construction and safe for concurrent use. Every
// operation that consumes entropy takes an explicit io.Reader.
package paillier

import (
	"errors"
	"io"
	"math/big"

	"github.com/cronokirby/saferith"
	"github.com/taurusgroup/paillier-go/internal/params"
	"github.com/taurusgroup/paillier-go/internal/pool"
	"github.com/taurusgroup/paillier-go/pkg/math/sample"
)

var (
	// ErrInvalidKeyMaterial is returned when λ has no inverse modulo N.
	// This is unreachable for distinct primes p, q and signals corrupted
	// prime generation.
	ErrInvalidKeyMaterial = errors.New("paillier: modular inverse of λ does not exist")

	// ErrOutOfRange is returned when a plaintext is not in [0, N).
	ErrOutOfRange = errors.New("paillier: plaintext is not in [0, N)")

	// ErrCiphertextInvalid is returned when a ciphertext is not a unit
	// modulo N², and therefore cannot have been produced by Enc.
	ErrCiphertextInvalid = errors.New("paillier: ciphertext is not invertible mod N²")

	// ErrParse is returned when an externally supplied encoding of a key,
	// ciphertext or nonce cannot be decoded, or when a zero value with no
	// contents is asked to encode itself.
	ErrParse = errors.New("paillier: malformed encoding")
)

var oneNat = new(saferith.Nat).SetUint64(1)

type (
	// Ciphertext is an element of ℤₙ²ˣ, the encryption of a plaintext
	// in [0, N).
	Ciphertext struct {
		c *saferith.Nat
	}

	// Nonce is the blinding factor ρ ∈ ℤₙˣ used during encryption.
	Nonce struct {
		n *saferith.Nat
	}
)

// KeyGen generates a new key pair from two independent probable primes of
// `bits` bits each, so the modulus N has roughly 2·bits bits.
//
// Entropy is drawn from random; pl may be nil to search for primes on the
// calling goroutine. If bits <= 0, params.BitsPrime is used.
func KeyGen(random io.Reader, bits int, pl *pool.Pool) (*PublicKey, *SecretKey, error) {
	if bits <= 0 {
		bits = params.BitsPrime
	}
	p, q := sample.Paillier(random, bits, pl)
	sk, err := NewSecretKeyFromPrimes(p, q)
	if err != nil {
		return nil, nil, err
	}
	return sk.PublicKey, sk, nil
}

// Big returns the nonce as a big.Int.
func (n *Nonce) Big() *big.Int {
	return n.n.Big()
}
