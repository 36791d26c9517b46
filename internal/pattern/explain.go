// ============================================================================
// nomen - pattern based name and code generator
// ============================================================================
//
// Package:     pattern
// Description: Tree inspection helpers used by the check command
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package pattern

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Count returns the number of nodes in the tree
func Count(n Node) int {
	total := 1
	for _, child := range children(n) {
		total += Count(child)
	}
	return total
}

// Depth returns the height of the tree, 1 for a single node
func Depth(n Node) int {
	deepest := 0
	for _, child := range children(n) {
		if d := Depth(child); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}

// Length returns the shortest and longest output, in characters, that n
// can produce. Values saturate at math.MaxInt.
func Length(n Node) (shortest, longest int) {
	switch n := n.(type) {
	case *Literal:
		l := len([]rune(n.Text))
		return l, l
	case *Class:
		return 1, 1
	case *Repeat:
		lo, hi := Length(n.Child)
		return mulSat(lo, n.Min), mulSat(hi, n.Max)
	case *Sequence:
		for _, child := range n.Children {
			lo, hi := Length(child)
			shortest, longest = addSat(shortest, lo), addSat(longest, hi)
		}
		return shortest, longest
	case *Alternation:
		shortest = math.MaxInt
		for _, child := range n.Children {
			lo, hi := Length(child)
			if lo < shortest {
				shortest = lo
			}
			if hi > longest {
				longest = hi
			}
		}
		return shortest, longest
	case *Subsequence:
		lo, hi := Length(n.Child)
		return clamp01(lo), clamp01(hi)
	case *Chance:
		_, hi := Length(n.Child)
		if n.Percent >= 100 {
			lo, _ := Length(n.Child)
			return lo, hi
		}
		if n.Percent <= 0 {
			return 0, 0
		}
		return 0, hi
	}
	return 0, 0
}

// Tree renders n as an indented outline, one node per line
func Tree(n Node) string {
	var b strings.Builder
	writeTree(&b, n, "", true, true)
	return b.String()
}

func writeTree(b *strings.Builder, n Node, prefix string, last, root bool) {
	branch, next := "├── ", "│   "
	if last {
		branch, next = "└── ", "    "
	}
	if root {
		branch, next = "", ""
	}

	b.WriteString(prefix + branch + label(n) + "\n")

	kids := children(n)
	for i, child := range kids {
		writeTree(b, child, prefix+next, i == len(kids)-1, false)
	}
}

func label(n Node) string {
	switch n := n.(type) {
	case *Literal:
		return "literal " + strconv.Quote(n.Text)
	case *Class:
		return "class " + n.Set.Name()
	case *Repeat:
		if n.Min == n.Max {
			return fmt.Sprintf("repeat ×%d", n.Min)
		}
		return fmt.Sprintf("repeat %d..%d", n.Min, n.Max)
	case *Sequence:
		return "sequence"
	case *Alternation:
		return "one of"
	case *Subsequence:
		return "one character of"
	case *Chance:
		return fmt.Sprintf("%d%% chance of", n.Percent)
	}
	return fmt.Sprintf("%T", n)
}

func children(n Node) []Node {
	switch n := n.(type) {
	case *Repeat:
		return []Node{n.Child}
	case *Sequence:
		return n.Children
	case *Alternation:
		return n.Children
	case *Subsequence:
		return []Node{n.Child}
	case *Chance:
		return []Node{n.Child}
	}
	return nil
}

func addSat(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

func mulSat(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	if a > math.MaxInt/b {
		return math.MaxInt
	}
	return a * b
}

func clamp01(v int) int {
	if v > 1 {
		return 1
	}
	return v
}
