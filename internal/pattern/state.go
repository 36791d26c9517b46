// ============================================================================
// nomen - pattern based name and code generator
// ============================================================================
//
// Package:     pattern
// Description: Transition function of the single-pass pattern compiler
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package pattern

import (
	"strings"
	"unicode"

	nomerror "github.com/msto63/nomen/foundation/core/error"
	"github.com/msto63/nomen/internal/charset"
)

// mode is the state of the token currently being assembled
type mode int

const (
	modeEmpty   mode = iota // nothing pending
	modeNode                // node waiting for an optional suffix
	modeMin                 // node with an open minimum bound
	modeMax                 // node with closed minimum and open maximum bound
	modeLiteral             // accumulating literal text
	modeChance              // node with an open percent buffer
)

func (m mode) String() string {
	switch m {
	case modeEmpty:
		return "empty"
	case modeNode:
		return "node"
	case modeMin:
		return "min"
	case modeMax:
		return "max"
	case modeLiteral:
		return "literal"
	case modeChance:
		return "chance"
	default:
		return "unknown"
	}
}

// groupKind tells how a group combines its children
type groupKind int

const (
	groupConcat groupKind = iota
	groupAlternation
)

func (k groupKind) closer() rune {
	if k == groupAlternation {
		return '}'
	}
	return ']'
}

// token is the partially typed item
type token struct {
	mode mode
	node Node
	// leaf tokens get an explicit Repeat(node, 1, 1) when no range follows
	leaf bool
	min  strings.Builder
	max  strings.Builder
	pct  strings.Builder
	text strings.Builder
}

// group is one level of bracket nesting
type group struct {
	kind   groupKind
	opened int
	items  []Node
}

// state is the transient compiler state for one Compile call
type state struct {
	tok       *token
	current   *group
	stack     []*group
	offset    int
	maxRepeat int
}

func newState(maxRepeat int) *state {
	return &state{
		tok:       &token{},
		current:   &group{kind: groupConcat},
		maxRepeat: maxRepeat,
	}
}

// step applies one rune. Every legal transition is listed here; anything
// else falls through to a malformed token error.
func (s *state) step(r rune) error {
	if s.tok.mode == modeLiteral && !isLiteralTerminator(r) {
		s.tok.text.WriteRune(r)
		return nil
	}

	switch {
	case r == '-':
		return s.push()
	case r == '[':
		return s.open(groupConcat, r)
	case r == '{':
		return s.open(groupAlternation, r)
	case r == ']':
		return s.close(groupConcat, r)
	case r == '}':
		return s.close(groupAlternation, r)
	case r == '#':
		return s.subset()
	case r == '?':
		return s.chance()
	case r == ':':
		return s.rangeSeparator(r)
	case r >= '0' && r <= '9':
		return s.digit(r)
	case s.tok.mode != modeEmpty:
		return s.unexpected(r)
	case r == '%':
		s.tok = &token{mode: modeLiteral}
		return nil
	case r == 's':
		s.tok = &token{mode: modeNode, node: &Literal{Text: " "}, leaf: true}
		return nil
	case unicode.IsLetter(r):
		class, ok := charset.ByKey(r)
		if !ok {
			return compileError(nomerror.CodePatternUnknownClass, s.offset, r,
				"unknown class key %q", r)
		}
		s.tok = &token{mode: modeNode, node: &Class{Set: class}, leaf: true}
		return nil
	default:
		return s.unexpected(r)
	}
}

// finish handles end of input and returns the root node
func (s *state) finish() (Node, error) {
	if s.tok.mode == modeEmpty && len(s.stack) > 0 {
		return nil, s.unclosed()
	}
	if err := s.push(); err != nil {
		return nil, err
	}
	if len(s.stack) > 0 {
		return nil, s.unclosed()
	}

	items := s.current.items
	if len(items) == 1 {
		return items[0], nil
	}
	return &Sequence{Children: items}, nil
}

func (s *state) unclosed() error {
	g := s.current
	return compileError(nomerror.CodePatternUnbalancedGroup, s.offset, 0,
		"group opened at offset %d is never closed with %q", g.opened, g.kind.closer())
}

func (s *state) unexpected(r rune) error {
	return compileError(nomerror.CodePatternMalformedToken, s.offset, r,
		"unexpected token %q while in %s state", r, s.tok.mode)
}

// push finalizes the pending token into the current sibling list
func (s *state) push() error {
	n, err := s.resolve()
	if err != nil {
		return err
	}
	s.current.items = append(s.current.items, n)
	return nil
}

func (s *state) open(kind groupKind, r rune) error {
	if s.tok.mode != modeEmpty {
		return s.unexpected(r)
	}
	s.stack = append(s.stack, s.current)
	s.current = &group{kind: kind, opened: s.offset}
	return nil
}

func (s *state) close(kind groupKind, r rune) error {
	if len(s.stack) == 0 {
		return compileError(nomerror.CodePatternUnbalancedGroup, s.offset, r,
			"closing %q without an open group", r)
	}
	if s.current.kind != kind {
		return compileError(nomerror.CodePatternUnbalancedGroup, s.offset, r,
			"closing %q does not match group opened at offset %d", r, s.current.opened)
	}
	if err := s.push(); err != nil {
		return err
	}

	closed := s.current
	s.current = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]

	var n Node
	if kind == groupAlternation {
		n = &Alternation{Children: closed.items}
	} else {
		n = &Sequence{Children: closed.items}
	}
	s.tok = &token{mode: modeNode, node: n}
	return nil
}

func (s *state) subset() error {
	n, err := s.resolve()
	if err != nil {
		return err
	}
	s.tok = &token{mode: modeNode, node: &Subsequence{Child: n}}
	return nil
}

func (s *state) chance() error {
	n, err := s.resolve()
	if err != nil {
		return err
	}
	s.tok = &token{mode: modeChance, node: n}
	return nil
}

func (s *state) rangeSeparator(r rune) error {
	switch s.tok.mode {
	case modeNode:
		s.tok.mode = modeMin
	case modeMin:
		s.tok.mode = modeMax
	case modeMax:
		return compileError(nomerror.CodePatternMalformedToken, s.offset, r,
			"a range takes at most two bounds")
	default:
		return s.unexpected(r)
	}
	return nil
}

func (s *state) digit(r rune) error {
	switch s.tok.mode {
	case modeMin:
		s.tok.min.WriteRune(r)
	case modeMax:
		s.tok.max.WriteRune(r)
	case modeChance:
		s.tok.pct.WriteRune(r)
	default:
		return compileError(nomerror.CodePatternMalformedToken, s.offset, r,
			"digit %q outside a range or chance", r)
	}
	return nil
}

// resolve turns the pending token into a node and resets it
func (s *state) resolve() (Node, error) {
	tok := s.tok
	s.tok = &token{}

	switch tok.mode {
	case modeEmpty:
		return nil, compileError(nomerror.CodePatternEmptyConstruct, s.offset, 0, "no pending item")

	case modeNode:
		if tok.leaf {
			return &Repeat{Child: tok.node, Min: 1, Max: 1}, nil
		}
		return tok.node, nil

	case modeMin:
		n, err := s.bound(tok.min.String(), s.maxRepeat)
		if err != nil {
			return nil, err
		}
		return &Repeat{Child: tok.node, Min: n, Max: n}, nil

	case modeMax:
		lo, err := s.bound(tok.min.String(), s.maxRepeat)
		if err != nil {
			return nil, err
		}
		hi, err := s.bound(tok.max.String(), s.maxRepeat)
		if err != nil {
			return nil, err
		}
		if lo > hi {
			return nil, compileError(nomerror.CodePatternInvalidRange, s.offset, 0,
				"minimum %d exceeds maximum %d", lo, hi)
		}
		return &Repeat{Child: tok.node, Min: lo, Max: hi}, nil

	case modeLiteral:
		if tok.text.Len() == 0 {
			return nil, compileError(nomerror.CodePatternEmptyConstruct, s.offset, 0, "empty sequence")
		}
		return &Literal{Text: tok.text.String()}, nil

	case modeChance:
		pct := 50
		if tok.pct.Len() > 0 {
			var err error
			if pct, err = s.bound(tok.pct.String(), 100); err != nil {
				return nil, err
			}
		}
		return &Chance{Child: tok.node, Percent: pct}, nil
	}

	return nil, compileError(nomerror.CodeInternal, s.offset, 0, "unknown token mode %d", tok.mode)
}

// bound parses a digit buffer, most significant digit first
func (s *state) bound(digits string, limit int) (int, error) {
	if digits == "" {
		return 0, compileError(nomerror.CodePatternEmptyConstruct, s.offset, 0, "empty range value")
	}
	v := 0
	for _, d := range digits {
		v = v*10 + int(d-'0')
		if v > limit {
			return 0, compileError(nomerror.CodePatternInvalidRange, s.offset, 0,
				"value %s exceeds limit %d", digits, limit)
		}
	}
	return v, nil
}

func isLiteralTerminator(r rune) bool {
	switch r {
	case '-', ']', '}', '#':
		return true
	}
	return false
}
