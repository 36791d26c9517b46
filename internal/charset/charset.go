// ============================================================================
// nomen - pattern based name and code generator
// ============================================================================
//
// Package:     charset
// Description: Fixed character classes used by pattern expressions
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package charset

// Source supplies uniform integers in [0, n)
type Source interface {
	IntN(n int) int
}

// Class is an immutable, ordered set of candidate characters
type Class struct {
	name  string
	chars []rune
}

var (
	// Consonant holds the 21 lowercase latin consonants
	Consonant = newClass("consonant", "bcdfghjklmnpqrstvwxyz")

	// Vowel holds the 5 lowercase latin vowels
	Vowel = newClass("vowel", "aeiou")

	// Digit holds the decimal digits
	Digit = newClass("digit", "0123456789")
)

func newClass(name, chars string) *Class {
	return &Class{name: name, chars: []rune(chars)}
}

// Name returns the class name
func (c *Class) Name() string {
	return c.name
}

// Len returns the number of characters in the class
func (c *Class) Len() int {
	return len(c.chars)
}

// Contains reports whether r belongs to the class
func (c *Class) Contains(r rune) bool {
	for _, ch := range c.chars {
		if ch == r {
			return true
		}
	}
	return false
}

// Chars returns a copy of the class characters
func (c *Class) Chars() []rune {
	out := make([]rune, len(c.chars))
	copy(out, c.chars)
	return out
}

// Pick returns one character drawn uniformly from the class
func (c *Class) Pick(rng Source) rune {
	return c.chars[rng.IntN(len(c.chars))]
}

// ByKey maps a pattern key to its class
func ByKey(key rune) (*Class, bool) {
	switch key {
	case 'c':
		return Consonant, true
	case 'v':
		return Vowel, true
	case 'd':
		return Digit, true
	default:
		return nil, false
	}
}
