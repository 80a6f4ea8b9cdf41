package services

import "math/rand"

// Rand supplies the uniform randomness used for question selection and answer
// shuffling. *rand.Rand satisfies it, so tests can inject a seeded source.
type Rand interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// sharedRand delegates to the shared math/rand source, which is safe for
// concurrent use by request handlers.
type sharedRand struct{}

func (sharedRand) Intn(n int) int { return rand.Intn(n) }

func (sharedRand) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

func NewRand() Rand { return sharedRand{} }
