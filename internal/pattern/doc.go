// ============================================================================
// nomen - pattern based name and code generator
// ============================================================================
//
// Package:     pattern
// Description: Package documentation
// Created:     2026-10-18
// License:     MIT
// ============================================================================

/*
Package pattern compiles pattern expressions into node trees and evaluates
them against a random source.

Syntax:

	c v d        one consonant, vowel or digit
	s            one space
	%text        literal text up to the next - ] } or #
	x:3          x exactly three times
	x:2:5        x between two and five times
	x?30         x with a 30 percent chance (x? means 50)
	x#           one character picked from what x produced
	[a-b-c]      a then b then c
	{a-b-c}      one of a, b or c
	a-b          items are separated by -

Example:

	root, err := pattern.Compile("c:2:4-v-{d-%AB}")
	if err != nil {
		return err
	}
	rng := random.New(seed)
	for i := 0; i < 5; i++ {
		fmt.Println(pattern.Generate(root, rng))
	}

Compilation is a single pass with no lookahead; the first error is
returned as a coded error from foundation/core/error carrying one of the
PATTERN_* codes. Generation cannot fail.
*/
package pattern
