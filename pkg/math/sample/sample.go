// Package sample implements sampling of random values from an explicit
// entropy source.
//
// Every function takes the io.Reader to draw from as its first argument;
// there is no package-level generator. Callers wanting deterministic
// results can pass a KeyedPRNG, and callers sharing one source across
// goroutines can wrap it in a pool.LockedReader.
package sample

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/cronokirby/saferith"
)

const maxIterations = 255

// ErrMaxIterations is the panic value used when a bounded rejection-sampling
// loop fails to terminate. Hitting it means the entropy source is broken,
// which is not a recoverable condition.
var ErrMaxIterations = fmt.Errorf("sample: failed to generate after %d iterations", maxIterations)

var one = new(saferith.Nat).SetUint64(1)

func mustReadBits(rand io.Reader, buf []byte) {
	for i := 0; i < maxIterations; i++ {
		if _, err := io.ReadFull(rand, buf); err == nil {
			return
		}
	}
	panic(ErrMaxIterations)
}

// ModN samples an element of ℤₙ.
func ModN(rand io.Reader, n *saferith.Modulus) *saferith.Nat {
	out := new(saferith.Nat)
	buf := make([]byte, (n.BitLen()+7)/8)
	for {
		mustReadBits(rand, buf)
		out.SetBytes(buf)
		_, _, lt := out.CmpMod(n)
		if lt == 1 {
			return out
		}
	}
}

// UnitModN returns a ρ ∈ ℤₙˣ, ρ > 1, by rejection sampling.
func UnitModN(rand io.Reader, n *saferith.Modulus) *saferith.Nat {
	for i := 0; i < maxIterations; i++ {
		u := ModN(rand, n)
		if _, eq, lt := u.Cmp(one); eq == 1 || lt == 1 {
			continue
		}
		if u.IsUnit(n) == 1 {
			return u
		}
	}
	panic(ErrMaxIterations)
}

// Witness samples a Miller-Rabin witness a ∈ [2, n-2].
//
// n must be at least 5.
func Witness(random io.Reader, n *big.Int) *big.Int {
	// a = 2 + x for uniform x ∈ [0, n-3)
	max := new(big.Int).Sub(n, big.NewInt(3))
	for i := 0; i < maxIterations; i++ {
		a, err := rand.Int(random, max)
		if err != nil {
			continue
		}
		return a.Add(a, big.NewInt(2))
	}
	panic(ErrMaxIterations)
}
