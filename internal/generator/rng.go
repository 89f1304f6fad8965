package generator

import (
	"math/rand/v2"

	"github.com/brianvoe/gofakeit/v7"
)

// noiseStream selects the PCG stream used for seeded corruption so it never
// overlaps the synthesis stream of the same combined seed.
const noiseStream uint64 = 0x6e6f697365

// Intner draws uniform integers in [0, n)
type Intner interface {
	IntN(n int) int
}

// Source is everything field synthesis draws from: uniform integers plus
// locale-flavored street, state and postal code values.
type Source interface {
	Intner
	Street() string
	State() string
	Zip() string
}

// RNG is a seeded random stream. The embedded rand.Rand and the faker share
// one PCG source, so every draw, whichever side makes it, advances the same
// reproducible sequence.
type RNG struct {
	*rand.Rand
	faker *gofakeit.Faker
}

// NewRNG creates a new seeded random number generator
func NewRNG(seed int64) *RNG {
	src := rand.NewPCG(uint64(seed), uint64(seed))
	return &RNG{
		Rand:  rand.New(src),
		faker: gofakeit.NewFaker(src, false),
	}
}

// Street returns a street address such as "364 Unionsville Ave"
func (r *RNG) Street() string {
	return r.faker.Street()
}

// State returns a state name
func (r *RNG) State() string {
	return r.faker.State()
}

// Zip returns a postal code
func (r *RNG) Zip() string {
	return r.faker.Zip()
}

// newNoiseSource returns the random source used for corruption. Unless
// deterministic is set it is seeded independently of the request.
func newNoiseSource(combinedSeed int64, deterministic bool) Intner {
	if deterministic {
		return rand.New(rand.NewPCG(uint64(combinedSeed), noiseStream))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Pick returns a uniformly chosen element of items. items must not be empty.
func Pick(src Intner, items []string) string {
	return items[src.IntN(len(items))]
}
