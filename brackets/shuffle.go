package brackets

import (
	"fmt"
	"math/rand/v2"
)

// Randomizer - источник случайных индексов. *rand.Rand из math/rand/v2 ему удовлетворяет,
// поэтому в тестах достаточно rand.New(rand.NewPCG(seed, seed)).
type Randomizer interface {
	IntN(n int) int
}

type globalRandomizer struct{}

func (globalRandomizer) IntN(n int) int { return rand.IntN(n) }

// DefaultRandomizer uses the runtime-seeded global source.
func DefaultRandomizer() Randomizer {
	return globalRandomizer{}
}

// NewSeededRandomizer returns a deterministic PCG-backed randomizer.
func NewSeededRandomizer(seed uint64) Randomizer {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Shuffle переставляет элементы на месте (Фишер–Йетс, от последнего индекса к первому).
func Shuffle[T any](items []T, rnd Randomizer) {
	for i := len(items) - 1; i > 0; i-- {
		j := rnd.IntN(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

// Shuffled returns a shuffled copy and leaves items untouched.
func Shuffled[T any](items []T, rnd Randomizer) []T {
	out := make([]T, len(items))
	copy(out, items)
	Shuffle(out, rnd)
	return out
}

// PickIndex выбирает случайный индекс в пуле из n элементов.
func PickIndex(n int, rnd Randomizer) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: nothing to pick from", ErrPrecondition)
	}
	return rnd.IntN(n), nil
}
