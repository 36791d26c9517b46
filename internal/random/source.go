// ============================================================================
// nomen - pattern based name and code generator
// ============================================================================
//
// Package:     random
// Description: Seeded random source and seed derivation
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package random

import (
	"hash/fnv"
	"math/rand/v2"
	"time"
)

// Source is the random stream consumed by pattern generation
type Source interface {
	// IntN returns a uniform integer in [0, n). n must be positive.
	IntN(n int) int

	// Chance returns true with probability percent/100.
	// percent <= 0 is never true, percent >= 100 always true.
	Chance(percent int) bool
}

// Rand is a deterministic Source backed by PCG. It is not safe for
// concurrent use; give every generation session its own Rand.
type Rand struct {
	seed uint64
	r    *rand.Rand
}

// New creates a Rand seeded with seed
func New(seed uint64) *Rand {
	return &Rand{
		seed: seed,
		r:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Seed returns the seed the source was created with
func (r *Rand) Seed() uint64 {
	return r.seed
}

// IntN returns a uniform integer in [0, n)
func (r *Rand) IntN(n int) int {
	return r.r.IntN(n)
}

// Chance returns true with probability percent/100
func (r *Rand) Chance(percent int) bool {
	switch {
	case percent <= 0:
		return false
	case percent >= 100:
		return true
	}
	return r.r.IntN(100) < percent
}

// SeedFromString derives a seed from text with 64-bit FNV-1a
func SeedFromString(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}

// SeedFromTime derives a seed from a wall-clock instant
func SeedFromTime(t time.Time) uint64 {
	return uint64(t.UnixNano())
}

// Resolve picks the effective seed: an explicit numeric seed wins over a
// seed string, which wins over the current time.
func Resolve(explicit *uint64, text string, now func() time.Time) uint64 {
	switch {
	case explicit != nil:
		return *explicit
	case text != "":
		return SeedFromString(text)
	default:
		return SeedFromTime(now())
	}
}
