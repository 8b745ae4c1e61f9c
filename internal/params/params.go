package params

const (
	// BitsPrime is the default bit length of each prime factor of a
	// Paillier modulus. The modulus N = p⋅q then has roughly 2⋅BitsPrime bits.
	//
	// Key strength is parameterized per factor, not per modulus.
	BitsPrime = 1024

	// BitsPaillier is the default bit length of the modulus N.
	BitsPaillier = 2 * BitsPrime

	// PrimalityIterations is the number of Miller-Rabin rounds used when
	// testing prime candidates.
	//
	// More iterations mean fewer false positives, but more expensive
	// calculations. The error probability is at most 4⁻ᵏ for k rounds;
	// 20 is the same number that Go uses internally.
	PrimalityIterations = 20
)
