package sample

import (
	"sync"

	"golang.org/x/crypto/blake2b"
)

// KeyedPRNG deterministically expands a key into an unbounded sequence of
// random bytes, using the blake2b XOF.
//
// It implements io.Reader, so it can be passed wherever this package expects
// an entropy source. Two instances created with the same key produce the
// same stream, which makes key generation and encryption reproducible in
// tests.
//
// WARNING: a PRNG seeded with a known key is not a secure source for
// production keys. Use crypto/rand.Reader for those.
type KeyedPRNG struct {
	mutex sync.Mutex
	key   []byte
	xof   blake2b.XOF
}

// NewKeyedPRNG creates a new instance of KeyedPRNG.
// A nil key is treated as key=[]byte{}.
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	if err != nil {
		return nil, err
	}
	return &KeyedPRNG{key: append([]byte{}, key...), xof: xof}, nil
}

// Key returns a copy of the key used to seed the PRNG.
func (prng *KeyedPRNG) Key() []byte {
	return append([]byte{}, prng.key...)
}

// Read implements io.Reader. It is safe for concurrent use, but the stream
// observed by racing readers is only deterministic in aggregate.
func (prng *KeyedPRNG) Read(sum []byte) (n int, err error) {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	return prng.xof.Read(sum)
}

// Reset rewinds the PRNG to the beginning of its stream.
func (prng *KeyedPRNG) Reset() {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	prng.xof.Reset()
}
