// ============================================================================
// nomen - pattern based name and code generator
// ============================================================================
//
// Package:     pattern
// Description: Evaluation of a pattern tree against a random source
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package pattern

import (
	"fmt"
	"strings"

	"github.com/msto63/nomen/internal/random"
)

// Generate evaluates n once and returns the produced string.
//
// Generate never fails on a compiled tree. It advances rng by a number of
// draws that depends on the tree shape and on earlier draws, so callers
// must not assume a fixed number of draws per call.
func Generate(n Node, rng random.Source) string {
	var b strings.Builder
	generate(&b, n, rng)
	return b.String()
}

func generate(b *strings.Builder, n Node, rng random.Source) {
	switch n := n.(type) {
	case *Literal:
		b.WriteString(n.Text)

	case *Class:
		b.WriteRune(n.Set.Pick(rng))

	case *Repeat:
		count := n.Min
		if n.Max > n.Min {
			count += rng.IntN(n.Max - n.Min + 1)
		}
		for i := 0; i < count; i++ {
			generate(b, n.Child, rng)
		}

	case *Sequence:
		for _, child := range n.Children {
			generate(b, child, rng)
		}

	case *Alternation:
		generate(b, n.Children[rng.IntN(len(n.Children))], rng)

	case *Subsequence:
		produced := []rune(Generate(n.Child, rng))
		if len(produced) > 0 {
			b.WriteRune(produced[rng.IntN(len(produced))])
		}

	case *Chance:
		if rng.Chance(n.Percent) {
			generate(b, n.Child, rng)
		}

	default:
		panic(fmt.Sprintf("pattern: unknown node type %T", n))
	}
}
