// Command example demonstrates key generation, encryption, the homomorphic
// operations, and the single-party comparison helper.
package main

import (
	"crypto/rand"
	"fmt"
	"log"
	"math/big"

	"github.com/taurusgroup/paillier-go/internal/pool"
	"github.com/taurusgroup/paillier-go/pkg/paillier"
)

func main() {
	pl := pool.NewPool(0)
	defer pl.TearDown()

	// 64-bit primes keep the demo fast; pass bits <= 0 to get the 1024-bit
	// production default.
	const bits = 64

	fmt.Println("=== Paillier key generation ===")
	pk, sk, err := paillier.KeyGen(rand.Reader, bits, pl)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("n = %v\ng = %v\n", pk.N(), pk.G())
	fmt.Printf("fingerprint = %x\n", pk.Fingerprint())

	m1, m2 := big.NewInt(42), big.NewInt(17)
	ct1, _, err := pk.Enc(rand.Reader, m1)
	if err != nil {
		log.Fatal(err)
	}
	ct2, _, err := pk.Enc(rand.Reader, m2)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("\nEnc(%v) = %v\n", m1, ct1)

	sum := ct1.Clone().Add(pk, ct2)
	dec, err := sk.Dec(sum)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Dec(Enc(%v) ⊕ Enc(%v)) = %v\n", m1, m2, dec)

	scaled := ct1.Clone().Mul(pk, big.NewInt(3))
	dec, err = sk.Dec(scaled)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Dec(3 ⊙ Enc(%v)) = %v\n", m1, dec)

	d, err := sk.SignedDifference(ct2, ct1)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("signed difference %v - %v = %v\n", m2, m1, d)

	a, b := big.NewInt(100), big.NewInt(80)
	ge, err := sk.CompareGE(rand.Reader, a, b)
	if err != nil {
		log.Fatal(err)
	}
	if ge {
		fmt.Printf("\n%v >= %v\n", a, b)
	} else {
		fmt.Printf("\n%v < %v\n", a, b)
	}
}
