// ============================================================================
// nomen - pattern based name and code generator
// ============================================================================
//
// Package:     pattern
// Description: Node variants of a compiled pattern tree
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package pattern

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/msto63/nomen/internal/charset"
)

// Node is one element of a compiled pattern tree. The set of variants is
// closed: Literal, Class, Repeat, Sequence, Alternation, Subsequence and
// Chance. Trees are immutable once compiled and may be evaluated
// concurrently as long as every caller uses its own random source.
type Node interface {
	// String renders the node in constructor notation,
	// e.g. Repeat(Class(consonant), 1, 1)
	String() string

	node()
}

// Literal produces its text verbatim
type Literal struct {
	Text string
}

// Class produces one character drawn from a charset class
type Class struct {
	Set *charset.Class
}

// Repeat produces Child between Min and Max times inclusive
type Repeat struct {
	Child    Node
	Min, Max int
}

// Sequence produces every child in order. Never empty.
type Sequence struct {
	Children []Node
}

// Alternation produces exactly one uniformly chosen child. Never empty.
type Alternation struct {
	Children []Node
}

// Subsequence produces one character picked from Child's output
type Subsequence struct {
	Child Node
}

// Chance produces Child's output with a Percent in 100 probability
type Chance struct {
	Child   Node
	Percent int
}

func (*Literal) node()     {}
func (*Class) node()       {}
func (*Repeat) node()      {}
func (*Sequence) node()    {}
func (*Alternation) node() {}
func (*Subsequence) node() {}
func (*Chance) node()      {}

func (n *Literal) String() string {
	return fmt.Sprintf("Literal(%s)", strconv.Quote(n.Text))
}

func (n *Class) String() string {
	return fmt.Sprintf("Class(%s)", n.Set.Name())
}

func (n *Repeat) String() string {
	return fmt.Sprintf("Repeat(%s, %d, %d)", n.Child, n.Min, n.Max)
}

func (n *Sequence) String() string {
	return fmt.Sprintf("Sequence([%s])", joinNodes(n.Children))
}

func (n *Alternation) String() string {
	return fmt.Sprintf("Alternation([%s])", joinNodes(n.Children))
}

func (n *Subsequence) String() string {
	return fmt.Sprintf("Subsequence(%s)", n.Child)
}

func (n *Chance) String() string {
	return fmt.Sprintf("Chance(%s, %d)", n.Child, n.Percent)
}

func joinNodes(nodes []Node) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = n.String()
	}
	return strings.Join(parts, ", ")
}
