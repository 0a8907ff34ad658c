package generator

import (
	"fmt"
	"math/rand/v2"

	"github.com/brianvoe/gofakeit/v7"
)

// Rand is the single source of randomness for a generation run. Every draw,
// fake names included, comes from the same seeded PCG stream, so the output
// only depends on the seed and on the order of draws.
//
// Rand is not safe for concurrent use.
type Rand struct {
	faker *gofakeit.Faker
}

// NewRand returns a Rand seeded with seed. Seed 0 is a valid, fixed seed.
func NewRand(seed uint64) *Rand {
	return &Rand{faker: gofakeit.NewFaker(rand.NewPCG(seed, seed), false)}
}

// IntRange returns a uniform int in [min, max].
func (r *Rand) IntRange(min, max int) int {
	if min >= max {
		return min
	}
	return r.faker.IntRange(min, max)
}

// Float64 returns a uniform float in [0, 1).
func (r *Rand) Float64() float64 {
	return r.faker.Float64()
}

// Chance reports true with probability p.
func (r *Rand) Chance(p float64) bool {
	return r.Float64() < p
}

func (r *Rand) Pick(values []string) string {
	return values[r.IntRange(0, len(values)-1)]
}

func (r *Rand) PickInt(values []int) int {
	return values[r.IntRange(0, len(values)-1)]
}

// Sample draws k distinct values from [1, n] without replacement, in draw order.
func (r *Rand) Sample(n, k int) []int {
	if k > n {
		k = n
	}
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i + 1
	}
	for i := 0; i < k; i++ {
		j := r.IntRange(i, n-1)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}

// Digits returns a string of n random decimal digits.
func (r *Rand) Digits(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('0' + r.IntRange(0, 9))
	}
	return string(b)
}

func (r *Rand) FirstName() string {
	return r.faker.FirstName()
}

func (r *Rand) LastName() string {
	return r.faker.LastName()
}

// StreetName returns a street name such as "Oak Avenue".
func (r *Rand) StreetName() string {
	return fmt.Sprintf("%s %s", r.faker.StreetName(), r.faker.StreetSuffix())
}

// Weighted picks one of values with probability proportional to its weight.
func Weighted[T any](r *Rand, values []T, weights []float64) T {
	var total float64
	for _, w := range weights {
		total += w
	}
	x := r.Float64() * total
	for i, w := range weights {
		if x < w {
			return values[i]
		}
		x -= w
	}
	return values[len(values)-1]
}
