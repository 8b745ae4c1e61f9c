// Package hash provides a domain-separated hash function, used to derive
// stable fingerprints for Paillier key material.
package hash

import (
	"fmt"
	"io"

	"github.com/zeebo/blake3"
)

// DigestLengthBytes is the length of a fingerprint produced by Sum.
const DigestLengthBytes = 32

// Hash is the hash function we use for fingerprinting keys and ciphertexts.
//
// Internally, this is a wrapper around blake3, but any hash function with
// an easily extendable output would work as well.
type Hash struct {
	h *blake3.Hasher
}

// New creates an empty Hash struct.
func New() *Hash {
	return &Hash{h: blake3.New()}
}

// Digest returns a reader for the current output of the function.
//
// This finalizes the current state of the hash, and returns what's
// essentially a stream of random bytes.
func (hash *Hash) Digest() io.Reader {
	return hash.h.Digest()
}

// Sum returns a slice of length DigestLengthBytes resulting from the current hash state.
// If a different length is required, use io.ReadFull(hash.Digest(), out) instead.
func (hash *Hash) Sum() []byte {
	out := make([]byte, DigestLengthBytes)
	if _, err := io.ReadFull(hash.Digest(), out); err != nil {
		panic(fmt.Sprintf("hash.Sum: internal hash failure: %v", err))
	}
	return out
}

// WriteAny writes data to the hash state, applying domain separation for
// each item.
func (hash *Hash) WriteAny(data ...WriterToWithDomain) error {
	for _, d := range data {
		if err := writeWithDomain(hash.h, d); err != nil {
			return fmt.Errorf("hash.Hash: %w", err)
		}
	}
	return nil
}
