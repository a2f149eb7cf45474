package utils

import "math/rand/v2"

// Rand is the random source used for names, prices, inventory and descriptions.
// *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// NewRand returns a PCG-backed source. Seed 0 draws the seed from runtime entropy.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
