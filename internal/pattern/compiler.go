// ============================================================================
// nomen - pattern based name and code generator
// ============================================================================
//
// Package:     pattern
// Description: Pattern compiler entry points
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package pattern

import (
	"time"
	"unicode/utf8"

	nomlog "github.com/msto63/nomen/foundation/core/log"
)

// DefaultMaxRepeat caps a single repeat bound when Options.MaxRepeat is
// zero. It keeps digit buffers from overflowing int; the size of the
// output is limited by callers through Length.
const DefaultMaxRepeat = 1_000_000

// Options configures compiler behavior
type Options struct {
	Logger    *nomlog.Logger
	MaxRepeat int
}

// Compiler turns pattern expressions into node trees. A Compiler holds no
// per-call state and may be shared.
type Compiler struct {
	logger  *nomlog.Logger
	options Options
}

// NewCompiler creates a compiler with the given options
func NewCompiler(opts Options) *Compiler {
	if opts.Logger == nil {
		opts.Logger = nomlog.Discard()
	}
	if opts.MaxRepeat <= 0 {
		opts.MaxRepeat = DefaultMaxRepeat
	}

	return &Compiler{
		logger:  opts.Logger.WithField("component", "pattern-compiler"),
		options: opts,
	}
}

var defaultCompiler = NewCompiler(Options{})

// Compile compiles expr with default options
func Compile(expr string) (Node, error) {
	return defaultCompiler.Compile(expr)
}

// MustCompile is like Compile but panics on error
func MustCompile(expr string) Node {
	n, err := Compile(expr)
	if err != nil {
		panic("pattern: " + err.Error())
	}
	return n
}

// Compile reads expr one rune at a time and returns the root node, or the
// first error encountered
func (c *Compiler) Compile(expr string) (Node, error) {
	start := time.Now()
	trace := c.logger.IsLevelEnabled(nomlog.LevelTrace)

	// ranging over invalid UTF-8 yields U+FFFD, which would end up in
	// literals in place of the original bytes
	if !utf8.ValidString(expr) {
		err := invalidEncoding(expr)
		c.logger.LogError(err)
		return nil, err
	}

	s := newState(c.options.MaxRepeat)
	for _, r := range expr {
		before := s.tok.mode
		if err := s.step(r); err != nil {
			c.logger.LogError(err)
			return nil, err
		}
		if trace && before != s.tok.mode {
			c.logger.Trace("token state changed", nomlog.Fields{
				"offset": s.offset,
				"rune":   string(r),
				"from":   before.String(),
				"to":     s.tok.mode.String(),
				"depth":  len(s.stack),
			})
		}
		s.offset++
	}

	root, err := s.finish()
	if err != nil {
		c.logger.LogError(err)
		return nil, err
	}

	c.logger.Timed("pattern compiled", start, nomlog.Fields{
		"pattern": expr,
		"nodes":   Count(root),
	})
	return root, nil
}
