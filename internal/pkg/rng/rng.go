// Package rng provides the seeded random source threaded through a
// randomization attempt, plus shuffle and choice helpers over any
// dice.Roller.
package rng

import (
	"math/rand/v2"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/zone-rando/internal/errors"
)

// Compile-time check that Seeded satisfies dice.Roller
var _ dice.Roller = (*Seeded)(nil)

// Seeded is a reproducible dice.Roller. Two instances built from the same
// seed produce the same sequence of rolls.
type Seeded struct {
	seed int64
	r    *rand.Rand
}

// NewSeeded creates a roller from seed
func NewSeeded(seed int64) *Seeded {
	s := uint64(seed)
	return &Seeded{
		seed: seed,
		r:    rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15)),
	}
}

// Seed returns the seed the roller was built from
func (s *Seeded) Seed() int64 {
	return s.seed
}

// Roll returns a value in [1, size]
func (s *Seeded) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, errors.InvalidArgumentf("die size must be positive, got %d", size)
	}
	return s.r.IntN(size) + 1, nil
}

// RollN rolls count dice of the given size
func (s *Seeded) RollN(count, size int) ([]int, error) {
	if count < 0 {
		return nil, errors.InvalidArgumentf("dice count must not be negative, got %d", count)
	}
	out := make([]int, count)
	for i := range out {
		v, err := s.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Shuffle permutes items in place with a Fisher-Yates pass
func Shuffle[T any](roller dice.Roller, items []T) error {
	for i := len(items) - 1; i > 0; i-- {
		j, err := roller.Roll(i + 1)
		if err != nil {
			return errors.Wrap(err, "failed to shuffle")
		}
		j--
		items[i], items[j] = items[j], items[i]
	}
	return nil
}

// Choice picks one item uniformly
func Choice[T any](roller dice.Roller, items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, errors.InvalidArgument("cannot choose from an empty list")
	}
	i, err := roller.Roll(len(items))
	if err != nil {
		return zero, errors.Wrap(err, "failed to choose")
	}
	return items[i-1], nil
}

// Sample picks k distinct items uniformly without replacement. The input
// slice is left untouched.
func Sample[T any](roller dice.Roller, items []T, k int) ([]T, error) {
	if k < 0 || k > len(items) {
		return nil, errors.InvalidArgumentf("cannot sample %d items from %d", k, len(items))
	}
	pool := make([]T, len(items))
	copy(pool, items)
	for i := 0; i < k; i++ {
		j, err := roller.Roll(len(pool) - i)
		if err != nil {
			return nil, errors.Wrap(err, "failed to sample")
		}
		j += i - 1
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k], nil
}
