// Package rng is the seeded randomness context shared by the generators.
// Every generator owns one Source seeded at construction; nothing in the
// engine touches the process-global math/rand state, so a run is fully
// reproducible from its seed.
package rng

import (
	"encoding/hex"
	"fmt"
	"math/rand"
	"time"
)

type Source struct {
	r *rand.Rand
}

func New(seed int64) *Source {
	return &Source{r: rand.New(rand.NewSource(seed))}
}

func (s *Source) Float64() float64 { return s.r.Float64() }

// Uniform draws a float in the interval spanned by a and b; argument order
// does not matter.
func (s *Source) Uniform(a, b float64) float64 {
	if a > b {
		a, b = b, a
	}
	return a + s.r.Float64()*(b-a)
}

// IntBetween draws an int in [lo, hi] inclusive.
func (s *Source) IntBetween(lo, hi int) int {
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo + s.r.Intn(hi-lo+1)
}

// Probability reports a draw succeeding with probability p.
func (s *Source) Probability(p float64) bool { return s.r.Float64() < p }

// Hex returns n lowercase hex characters from the seeded stream.
func (s *Source) Hex(n int) string {
	b := make([]byte, (n+1)/2)
	s.r.Read(b)
	return hex.EncodeToString(b)[:n]
}

// Digits returns n decimal digits, first digit may be zero.
func (s *Source) Digits(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('0' + s.r.Intn(10))
	}
	return string(b)
}

// DateBetween draws a day-granular time in [start, end].
func (s *Source) DateBetween(start, end time.Time) time.Time {
	days := int(end.Sub(start).Hours() / 24)
	if days <= 0 {
		return start
	}
	return start.AddDate(0, 0, s.IntBetween(0, days))
}

// Pick returns one item drawn uniformly. Panics on an empty slice: callers
// own their candidate pools and an empty one is a generator defect.
func Pick[T any](s *Source, items []T) T {
	if len(items) == 0 {
		panic("rng: Pick from empty slice")
	}
	return items[s.r.Intn(len(items))]
}

// Weighted is the categorical-distribution primitive: it returns one of
// outcomes with probability proportional to its weight.
func Weighted[T any](s *Source, outcomes []T, weights []float64) T {
	if len(outcomes) == 0 || len(outcomes) != len(weights) {
		panic(fmt.Sprintf("rng: Weighted outcomes/weights mismatch (%d vs %d)", len(outcomes), len(weights)))
	}
	var total float64
	for _, w := range weights {
		if w < 0 {
			panic("rng: Weighted negative weight")
		}
		total += w
	}
	if total == 0 {
		panic("rng: Weighted all-zero weights")
	}
	target := s.r.Float64() * total
	var cum float64
	for i, w := range weights {
		cum += w
		if target < cum {
			return outcomes[i]
		}
	}
	return outcomes[len(outcomes)-1]
}
