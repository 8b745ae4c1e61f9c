package paillier

import (
	"encoding"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/cronokirby/saferith"
	"github.com/fxamacker/cbor/v2"
)

// Ciphertexts and nonces travel as canonical base-10 decimal strings in
// JSON, the encoding the SQL and zkVM consumers operate on. Keys
// additionally support a CBOR binary encoding for compact storage.

var (
	_ json.Marshaler   = (*Ciphertext)(nil)
	_ json.Unmarshaler = (*Ciphertext)(nil)
	_ json.Marshaler   = (*PublicKey)(nil)
	_ json.Unmarshaler = (*PublicKey)(nil)
	_ json.Marshaler   = (*SecretKey)(nil)
	_ json.Unmarshaler = (*SecretKey)(nil)

	_ encoding.BinaryMarshaler   = (*PublicKey)(nil)
	_ encoding.BinaryUnmarshaler = (*PublicKey)(nil)
	_ encoding.BinaryMarshaler   = (*SecretKey)(nil)
	_ encoding.BinaryUnmarshaler = (*SecretKey)(nil)
	_ encoding.BinaryMarshaler   = (*Ciphertext)(nil)
	_ encoding.BinaryUnmarshaler = (*Ciphertext)(nil)
)

// parseDecimal decodes a canonical base-10 integer, rejecting anything
// malformed with ErrParse.
func parseDecimal(p []byte) (*big.Int, error) {
	z, ok := new(big.Int).SetString(string(p), 10)
	if !ok || z.Sign() < 0 {
		return nil, fmt.Errorf("%w: not a valid base-10 integer: %q", ErrParse, p)
	}
	return z, nil
}

// String returns the canonical decimal representation of the ciphertext.
func (ct *Ciphertext) String() string {
	if ct == nil || ct.c == nil {
		return "<nil>"
	}
	return ct.c.Big().String()
}

// CiphertextFromString decodes the canonical decimal representation
// produced by String.
func CiphertextFromString(s string) (*Ciphertext, error) {
	z, err := parseDecimal([]byte(s))
	if err != nil {
		return nil, err
	}
	return &Ciphertext{c: new(saferith.Nat).SetBig(z, z.BitLen())}, nil
}

func (ct Ciphertext) MarshalJSON() ([]byte, error) {
	if ct.c == nil {
		return nil, fmt.Errorf("%w: cannot encode zero-value ciphertext", ErrParse)
	}
	return []byte(ct.c.Big().String()), nil
}

func (ct *Ciphertext) UnmarshalJSON(p []byte) error {
	if string(p) == "null" {
		return nil
	}
	z, err := parseDecimal(p)
	if err != nil {
		return err
	}
	ct.c = new(saferith.Nat).SetBig(z, z.BitLen())
	return nil
}

func (n Nonce) MarshalJSON() ([]byte, error) {
	if n.n == nil {
		return nil, fmt.Errorf("%w: cannot encode zero-value nonce", ErrParse)
	}
	return []byte(n.n.Big().String()), nil
}

func (n *Nonce) UnmarshalJSON(p []byte) error {
	if string(p) == "null" {
		return nil
	}
	z, err := parseDecimal(p)
	if err != nil {
		return err
	}
	n.n = new(saferith.Nat).SetBig(z, z.BitLen())
	return nil
}

type jsonPublicKey struct {
	N *big.Int `json:"n"`
}

type jsonSecretKey struct {
	N      *big.Int `json:"n"`
	Lambda *big.Int `json:"lambda"`
	Mu     *big.Int `json:"mu"`
}

func (pk PublicKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonPublicKey{N: pk.nBig})
}

func (pk *PublicKey) UnmarshalJSON(p []byte) error {
	var x jsonPublicKey
	if err := json.Unmarshal(p, &x); err != nil {
		return fmt.Errorf("%w: %v", ErrParse, err)
	}
	if x.N == nil || x.N.Sign() <= 0 {
		return fmt.Errorf("%w: missing or non-positive modulus", ErrParse)
	}
	*pk = *NewPublicKey(x.N)
	return nil
}

func (sk SecretKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonSecretKey{
		N:      sk.nBig,
		Lambda: sk.lambda.Big(),
		Mu:     sk.mu.Big(),
	})
}

func (sk *SecretKey) UnmarshalJSON(p []byte) error {
	var x jsonSecretKey
	if err := json.Unmarshal(p, &x); err != nil {
		return fmt.Errorf("%w: %v", ErrParse, err)
	}
	if x.N == nil || x.Lambda == nil || x.Mu == nil {
		return fmt.Errorf("%w: missing secret key field", ErrParse)
	}
	pk := NewPublicKey(x.N)
	sk.PublicKey = pk
	sk.lambda = new(saferith.Nat).SetBig(x.Lambda, x.Lambda.BitLen())
	sk.mu = new(saferith.Nat).SetBig(x.Mu, pk.n.BitLen())
	return nil
}

type cborPublicKey struct {
	N *saferith.Modulus
}

type cborSecretKey struct {
	N          *saferith.Modulus
	Lambda, Mu *saferith.Nat
}

type cborCiphertext struct {
	C *saferith.Nat
}

func (pk *PublicKey) MarshalBinary() ([]byte, error) {
	return cbor.Marshal(&cborPublicKey{N: pk.n})
}

func (pk *PublicKey) UnmarshalBinary(data []byte) error {
	var x cborPublicKey
	if err := cbor.Unmarshal(data, &x); err != nil {
		return fmt.Errorf("%w: %v", ErrParse, err)
	}
	if x.N == nil {
		return fmt.Errorf("%w: missing modulus", ErrParse)
	}
	*pk = *NewPublicKey(x.N.Big())
	return nil
}

func (sk *SecretKey) MarshalBinary() ([]byte, error) {
	return cbor.Marshal(&cborSecretKey{N: sk.n, Lambda: sk.lambda, Mu: sk.mu})
}

func (sk *SecretKey) UnmarshalBinary(data []byte) error {
	var x cborSecretKey
	if err := cbor.Unmarshal(data, &x); err != nil {
		return fmt.Errorf("%w: %v", ErrParse, err)
	}
	if x.N == nil || x.Lambda == nil || x.Mu == nil {
		return fmt.Errorf("%w: missing secret key field", ErrParse)
	}
	sk.PublicKey = NewPublicKey(x.N.Big())
	sk.lambda = x.Lambda
	sk.mu = x.Mu
	return nil
}

func (ct *Ciphertext) MarshalBinary() ([]byte, error) {
	if ct.c == nil {
		return nil, fmt.Errorf("%w: cannot encode zero-value ciphertext", ErrParse)
	}
	return cbor.Marshal(&cborCiphertext{C: ct.c})
}

func (ct *Ciphertext) UnmarshalBinary(data []byte) error {
	var x cborCiphertext
	if err := cbor.Unmarshal(data, &x); err != nil {
		return fmt.Errorf("%w: %v", ErrParse, err)
	}
	if x.C == nil {
		return fmt.Errorf("%w: missing ciphertext value", ErrParse)
	}
	ct.c = x.C
	return nil
}
