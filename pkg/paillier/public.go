package paillier

import (
	"io"
	"math/big"

	"github.com/cronokirby/saferith"
	"github.com/taurusgroup/paillier-go/internal/hash"
	"github.com/taurusgroup/paillier-go/pkg/math/sample"
)

// PublicKey is the public part of a Paillier key pair.
//
// It caches the values derived from the modulus N that every operation
// needs: N², N+1 (the generator g) and N-1 (the exponent realizing
// plaintext negation).
type PublicKey struct {
	n        *saferith.Modulus
	nSquared *saferith.Modulus

	// nNat = N, used as exponent when raising the nonce.
	nNat *saferith.Nat
	// nPlusOne = g = N+1
	nPlusOne *saferith.Nat
	// nMinusOne = N-1, i.e. -1 as an exponent of a ciphertext.
	nMinusOne *saferith.Nat

	// nBig and nHalf = ⌊N/2⌋ are kept as big.Int for range checks and
	// the signed reinterpretation of decrypted differences.
	nBig, nHalf *big.Int
}

// NewPublicKey constructs a PublicKey from the modulus n.
func NewPublicKey(n *big.Int) *PublicKey {
	nNat := new(saferith.Nat).SetBig(n, n.BitLen())
	nMod := saferith.ModulusFromNat(nNat)
	nSquaredNat := new(saferith.Nat).Mul(nNat, nNat, -1)
	nPlusOne := new(saferith.Nat).Add(nNat, oneNat, -1)
	// Tightening is fine, since N is public.
	nPlusOne.Resize(nPlusOne.TrueLen())
	nMinusOne := new(saferith.Nat).Sub(nNat, oneNat, -1)

	return &PublicKey{
		n:         nMod,
		nSquared:  saferith.ModulusFromNat(nSquaredNat),
		nNat:      nNat,
		nPlusOne:  nPlusOne,
		nMinusOne: nMinusOne,
		nBig:      new(big.Int).Set(n),
		nHalf:     new(big.Int).Rsh(n, 1),
	}
}

// Enc encrypts m, returning the ciphertext and the nonce used.
//
// ct = gᵐρᴺ (mod N²), for a fresh ρ ∈ ℤₙˣ sampled from random.
//
// It returns ErrOutOfRange unless 0 ≤ m < N. Encryption is randomized: two
// calls with the same m yield distinct ciphertexts.
func (pk *PublicKey) Enc(random io.Reader, m *big.Int) (*Ciphertext, *Nonce, error) {
	if m == nil || m.Sign() < 0 || m.Cmp(pk.nBig) >= 0 {
		return nil, nil, ErrOutOfRange
	}
	nonce := pk.Nonce(random)
	ct, err := pk.EncWithNonce(m, nonce)
	if err != nil {
		return nil, nil, err
	}
	return ct, nonce, nil
}

// EncWithNonce encrypts m with a nonce provided by the caller.
func (pk *PublicKey) EncWithNonce(m *big.Int, nonce *Nonce) (*Ciphertext, error) {
	if m == nil || m.Sign() < 0 || m.Cmp(pk.nBig) >= 0 {
		return nil, ErrOutOfRange
	}
	mNat := new(saferith.Nat).SetBig(m, pk.n.BitLen())

	// c = gᵐ (mod N²)
	c := new(saferith.Nat).Exp(pk.nPlusOne, mNat, pk.nSquared)
	// tmp = ρᴺ (mod N²)
	tmp := new(saferith.Nat).Exp(nonce.n, pk.nNat, pk.nSquared)
	// c = gᵐρᴺ (mod N²)
	c.ModMul(c, tmp, pk.nSquared)

	return &Ciphertext{c: c}, nil
}

// Nonce samples a blinding factor ρ for encryption, by rejection until
// ρ > 1 and gcd(ρ, N) = 1.
func (pk *PublicKey) Nonce(random io.Reader) *Nonce {
	return &Nonce{n: sample.UnitModN(random, pk.n)}
}

// ValidateCiphertext reports whether ct is in [1, N²) and invertible
// modulo N², i.e. whether it could have been produced by Enc.
func (pk *PublicKey) ValidateCiphertext(ct *Ciphertext) bool {
	if ct == nil || ct.c == nil {
		return false
	}
	if _, _, lt := ct.c.CmpMod(pk.nSquared); lt != 1 {
		return false
	}
	return ct.c.IsUnit(pk.nSquared) == 1
}

// Equal returns true if pk = other.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	return pk.nBig.Cmp(other.nBig) == 0
}

// N returns the modulus N of the public key.
func (pk *PublicKey) N() *big.Int {
	return new(big.Int).Set(pk.nBig)
}

// G returns the generator g = N+1.
func (pk *PublicKey) G() *big.Int {
	return new(big.Int).Add(pk.nBig, big.NewInt(1))
}

// Fingerprint returns a stable digest identifying this key, suitable for
// key distribution and lookup.
func (pk *PublicKey) Fingerprint() []byte {
	h := hash.New()
	if err := h.WriteAny(pk); err != nil {
		panic(err)
	}
	return h.Sum()
}

// WriteTo implements io.WriterTo and should be used within the hash.Hash function.
func (pk *PublicKey) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(pk.nNat.Bytes())
	return int64(n), err
}

// Domain implements hash.WriterToWithDomain, and separates this type within hash.Hash.
func (*PublicKey) Domain() string {
	return "Paillier PublicKey"
}
