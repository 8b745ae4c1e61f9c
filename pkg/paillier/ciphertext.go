package paillier

import (
	"io"
	"math/big"

	"github.com/cronokirby/saferith"
)

// Add sets ct to the homomorphic sum ct ⊕ other.
//
// ct = ct ⋅ other (mod N²), which decrypts to m₁+m₂ (mod N).
func (ct *Ciphertext) Add(pk *PublicKey, other *Ciphertext) *Ciphertext {
	if other == nil {
		return ct
	}
	ct.c.ModMul(ct.c, other.c, pk.nSquared)
	return ct
}

// Mul sets ct to the homomorphic scalar product k ⊙ ct.
//
// ct = ctᵏ (mod N²), which decrypts to k⋅m (mod N).
func (ct *Ciphertext) Mul(pk *PublicKey, k *big.Int) *Ciphertext {
	if k == nil {
		return ct
	}
	if k.Sign() < 0 {
		// A negative scalar is congruent to k mod N in the plaintext space.
		k = new(big.Int).Mod(k, pk.nBig)
	}
	kNat := new(saferith.Nat).SetBig(k, k.BitLen()+1)
	ct.c = new(saferith.Nat).Exp(ct.c, kNat, pk.nSquared)
	return ct
}

// Sub sets ct to the homomorphic difference ct ⊖ other.
//
// ct = ct ⋅ otherᴺ⁻¹ (mod N²): raising to N-1 inverts the ciphertext, which
// negates the plaintext, so the result decrypts to m₁-m₂ (mod N).
func (ct *Ciphertext) Sub(pk *PublicKey, other *Ciphertext) *Ciphertext {
	if other == nil {
		return ct
	}
	neg := new(saferith.Nat).Exp(other.c, pk.nMinusOne, pk.nSquared)
	ct.c.ModMul(ct.c, neg, pk.nSquared)
	return ct
}

// Randomize multiplies ct by a fresh encryption of zero, re-blinding it
// without changing the plaintext. The nonce used is returned.
func (ct *Ciphertext) Randomize(random io.Reader, pk *PublicKey) *Nonce {
	nonce := pk.Nonce(random)
	// ct = ct ⋅ ρᴺ (mod N²)
	tmp := new(saferith.Nat).Exp(nonce.n, pk.nNat, pk.nSquared)
	ct.c.ModMul(ct.c, tmp, pk.nSquared)
	return nonce
}

// Equal checks whether ct ≡ other (mod N²).
func (ct *Ciphertext) Equal(other *Ciphertext) bool {
	if ct == nil || other == nil {
		return ct == other
	}
	_, eq, _ := ct.c.Cmp(other.c)
	return eq == 1
}

// Clone returns a deep copy of ct.
func (ct *Ciphertext) Clone() *Ciphertext {
	return &Ciphertext{c: new(saferith.Nat).SetNat(ct.c)}
}

// Big returns the ciphertext as a big.Int.
func (ct *Ciphertext) Big() *big.Int {
	return ct.c.Big()
}
