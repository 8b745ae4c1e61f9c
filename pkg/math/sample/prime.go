package sample

import (
	"io"
	"math/big"

	"github.com/taurusgroup/paillier-go/internal/params"
	"github.com/taurusgroup/paillier-go/internal/pool"
)

// trialPrimes contains the first 128 odd prime numbers.
//
// Dividing a candidate by these before running Miller-Rabin filters out the
// vast majority of composites cheaply. It never changes a verdict.
var trialPrimes = []uint64{
	3, 5, 7, 11, 13, 17, 19, 23,
	29, 31, 37, 41, 43, 47, 53, 59,
	61, 67, 71, 73, 79, 83, 89, 97,
	101, 103, 107, 109, 113, 127, 131, 137,
	139, 149, 151, 157, 163, 167, 173, 179,
	181, 191, 193, 197, 199, 211, 223, 227,
	229, 233, 239, 241, 251, 257, 263, 269,
	271, 277, 281, 283, 293, 307, 311, 313,
	317, 331, 337, 347, 349, 353, 359, 367,
	373, 379, 383, 389, 397, 401, 409, 419,
	421, 431, 433, 439, 443, 449, 457, 461,
	463, 467, 479, 487, 491, 499, 503, 509,
	521, 523, 541, 547, 557, 563, 569, 571,
	577, 587, 593, 599, 601, 607, 613, 617,
	619, 631, 641, 643, 647, 653, 659, 661,
	673, 677, 683, 691, 701, 709, 719, 727,
	733, 739, 743, 751, 757, 761, 769, 773,
}

// IsPrime reports whether n is a probable prime, using `iterations` rounds
// of the Miller-Rabin test with witnesses drawn from random.
//
// The error probability is at most 4⁻ⁱᵗᵉʳᵃᵗⁱᵒⁿˢ; use at least
// params.PrimalityIterations rounds for production keys.
func IsPrime(random io.Reader, n *big.Int, iterations int) bool {
	two := big.NewInt(2)
	if n.Cmp(two) < 0 {
		return false
	}
	if n.Cmp(two) == 0 || n.Cmp(big.NewInt(3)) == 0 {
		return true
	}
	if n.Bit(0) == 0 {
		return false
	}

	scratch := new(big.Int)
	for _, p := range trialPrimes {
		scratch.SetUint64(p)
		if new(big.Int).Mod(n, scratch).Sign() == 0 {
			return n.Cmp(scratch) == 0
		}
	}

	// Write n-1 = 2ˢ⋅d with d odd.
	nMinusOne := new(big.Int).Sub(n, big.NewInt(1))
	d := new(big.Int).Set(nMinusOne)
	s := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		s++
	}

	x := new(big.Int)
Witnesses:
	for i := 0; i < iterations; i++ {
		a := Witness(random, n)
		x.Exp(a, d, n)
		if x.Cmp(big.NewInt(1)) == 0 || x.Cmp(nMinusOne) == 0 {
			continue
		}
		for j := 0; j < s-1; j++ {
			x.Exp(x, two, n)
			if x.Cmp(nMinusOne) == 0 {
				continue Witnesses
			}
		}
		return false
	}
	return true
}

// tryPrime samples a single odd candidate of exactly `bits` bits and tests
// it, returning nil if the candidate is composite.
func tryPrime(random io.Reader, bits int) *big.Int {
	buf := make([]byte, (bits+7)/8)
	mustReadBits(random, buf)

	// The number of significant bits in the first byte of our number.
	lastBits := uint(bits % 8)
	if lastBits == 0 {
		lastBits = 8
	}
	// Clear excess bits so the candidate has at most `bits` bits.
	buf[0] &= byte(int(1<<lastBits) - 1)
	// Force the top bit, so the candidate has exactly `bits` bits.
	buf[0] |= 1 << (lastBits - 1)
	// Force the candidate to be odd.
	buf[len(buf)-1] |= 1

	p := new(big.Int).SetBytes(buf)
	if !IsPrime(random, p, params.PrimalityIterations) {
		return nil
	}
	return p
}

// Prime returns a probable prime of exactly `bits` bits.
//
// The search is unbounded: it relies on the density of primes for
// termination. Callers needing bounded latency must impose their own cap.
func Prime(random io.Reader, bits int) *big.Int {
	for {
		if p := tryPrime(random, bits); p != nil {
			return p
		}
	}
}

// Paillier generates the two prime factors of a Paillier modulus.
//
// p and q are independent probable primes of `bits` bits each, so that
// n = p⋅q has 2⋅bits or 2⋅bits-1 bits. The workers of pl share the entropy
// source through a LockedReader.
func Paillier(random io.Reader, bits int, pl *pool.Pool) (p, q *big.Int) {
	reader := pool.NewLockedReader(random)
	results := pl.Search(2, func() interface{} {
		p := tryPrime(reader, bits)
		// You have to do this, because of how Go handles nil.
		if p == nil {
			return nil
		}
		return p
	})
	p, q = results[0].(*big.Int), results[1].(*big.Int)
	return
}
