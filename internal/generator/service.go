// ============================================================================
// nomen - pattern based name and code generator
// ============================================================================
//
// Package:     generator
// Description: Batch generation service on top of the pattern compiler
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package generator

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	nomerror "github.com/msto63/nomen/foundation/core/error"
	nomlog "github.com/msto63/nomen/foundation/core/log"
	"github.com/msto63/nomen/internal/pattern"
	"github.com/msto63/nomen/internal/presets"
	"github.com/msto63/nomen/internal/random"
	"github.com/msto63/nomen/pkg/core/cache"
)

// Defaults used when Options leave a limit at zero
const (
	DefaultMaxPatternLength = 4096
	DefaultMaxAttempts      = 100
	DefaultMaxOutputLength  = 65536
	DefaultCacheSize        = 256
)

// History is the subset of the history store the service needs
type History interface {
	Exists(ctx context.Context, pattern, output string) (bool, error)
	Record(ctx context.Context, runID, pattern string, seed uint64, outputs []string) error
}

// Options configures a Service
type Options struct {
	Compiler *pattern.Compiler
	Presets  *presets.Library
	// History is optional; when set every batch is recorded and unique
	// requests also avoid earlier outputs
	History          History
	Logger           *nomlog.Logger
	MaxPatternLength int
	// MaxOutputLength rejects patterns whose longest output, in runes,
	// exceeds it
	MaxOutputLength int
	MaxAttempts     int
	// CacheSize bounds the compiled tree cache; negative disables it
	CacheSize int
	Now       func() time.Time
	NewRunID  func() string
}

// Request describes one generate call
type Request struct {
	// Expression is a pattern or an @preset reference
	Expression string
	Count      int
	// Seed, when set, is used as is
	Seed *uint64
	// SeedText is hashed into a seed when Seed is nil
	SeedText string
	// Unique rejects outputs already produced in this batch or recorded
	// in the history
	Unique bool
}

// Batch is the result of one generate call
type Batch struct {
	RunID      string        `json:"run_id"`
	Seed       uint64        `json:"seed"`
	Expression string        `json:"expression"`
	Pattern    string        `json:"pattern"`
	Outputs    []string      `json:"outputs"`
	Attempts   int           `json:"attempts"`
	Duration   time.Duration `json:"duration"`
}

// Service compiles expressions and generates batches of outputs
type Service struct {
	compiler *pattern.Compiler
	presets  *presets.Library
	history  History
	trees    *cache.Cache[pattern.Node]
	logger   *nomlog.Logger
	opts     Options
}

// New creates a service, filling unset options with defaults
func New(opts Options) *Service {
	if opts.Logger == nil {
		opts.Logger = nomlog.Discard()
	}
	if opts.Compiler == nil {
		opts.Compiler = pattern.NewCompiler(pattern.Options{Logger: opts.Logger})
	}
	if opts.Presets == nil {
		opts.Presets = presets.NewLibrary(presets.Options{Compiler: opts.Compiler, Logger: opts.Logger})
	}
	if opts.MaxPatternLength <= 0 {
		opts.MaxPatternLength = DefaultMaxPatternLength
	}
	if opts.MaxOutputLength <= 0 {
		opts.MaxOutputLength = DefaultMaxOutputLength
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = DefaultMaxAttempts
	}
	if opts.CacheSize == 0 {
		opts.CacheSize = DefaultCacheSize
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewRunID == nil {
		opts.NewRunID = uuid.NewString
	}

	var trees *cache.Cache[pattern.Node]
	if opts.CacheSize > 0 {
		trees = cache.New[pattern.Node](cache.Config{MaxItems: opts.CacheSize})
	}

	return &Service{
		trees:    trees,
		compiler: opts.Compiler,
		presets:  opts.Presets,
		history:  opts.History,
		logger:   opts.Logger.WithField("component", "generator"),
		opts:     opts,
	}
}

// Compile resolves preset references, checks the length limits and
// compiles. It returns the root node and the pattern text that was compiled.
func (s *Service) Compile(expr string) (pattern.Node, string, error) {
	text, err := s.presets.Resolve(expr)
	if err != nil {
		return nil, "", err
	}

	if n := utf8.RuneCountInString(text); n > s.opts.MaxPatternLength {
		return nil, "", nomerror.Newf("pattern has %d characters, limit is %d", n, s.opts.MaxPatternLength).
			WithCode(nomerror.CodeInvalidInput).
			WithDetail("length", n)
	}

	root, err := s.compile(text)
	if err != nil {
		return nil, "", err
	}

	// nested repeats multiply, so the bound is checked on the whole tree
	if _, longest := pattern.Length(root); longest > s.opts.MaxOutputLength {
		return nil, "", nomerror.Newf("pattern can produce %d characters per output, limit is %d",
			longest, s.opts.MaxOutputLength).
			WithCode(nomerror.CodeInvalidInput).
			WithDetail("pattern", text).
			WithDetail("longest", longest)
	}
	return root, text, nil
}

// compile goes through the tree cache when it is enabled. Trees are
// immutable after compilation and safe to share.
func (s *Service) compile(text string) (pattern.Node, error) {
	if s.trees == nil {
		return s.compiler.Compile(text)
	}
	return s.trees.GetOrSet(text, func() (pattern.Node, error) {
		return s.compiler.Compile(text)
	})
}

// CacheStats reports hits and misses of the compiled tree cache
func (s *Service) CacheStats() (hits, misses int64) {
	if s.trees == nil {
		return 0, 0
	}
	hits, misses, _ = s.trees.Stats()
	return hits, misses
}

// Generate produces req.Count outputs from a single compiled tree and one
// random source seeded once for the whole batch
func (s *Service) Generate(ctx context.Context, req Request) (*Batch, error) {
	if req.Count < 1 {
		return nil, nomerror.Newf("count must be at least 1, got %d", req.Count).
			WithCode(nomerror.CodeInvalidInput)
	}

	root, text, err := s.Compile(req.Expression)
	if err != nil {
		return nil, err
	}

	seed := random.Resolve(req.Seed, req.SeedText, s.opts.Now)
	rng := random.New(seed)

	batch := &Batch{
		RunID:      s.opts.NewRunID(),
		Seed:       seed,
		Expression: req.Expression,
		Pattern:    text,
		Outputs:    make([]string, 0, req.Count),
	}
	logger := s.logger.WithRunID(batch.RunID)
	timer := nomlog.NewTimer(logger, "generate").
		WithField("pattern", text).
		WithField("seed", seed).
		WithField("count", req.Count)

	seen := make(map[string]bool, req.Count)
	for i := 0; i < req.Count; i++ {
		if err := ctx.Err(); err != nil {
			timer.StopWithError(err)
			return nil, err
		}

		out, attempts, err := s.next(ctx, root, text, rng, req.Unique, seen)
		batch.Attempts += attempts
		if err != nil {
			timer.StopWithError(err)
			return nil, err
		}
		if attempts > 1 {
			timer.Checkpoint("retried", nomlog.Fields{"index": i, "attempts": attempts})
		}
		seen[out] = true
		batch.Outputs = append(batch.Outputs, out)
	}

	if s.history != nil {
		if err := s.history.Record(ctx, batch.RunID, text, seed, batch.Outputs); err != nil {
			timer.StopWithError(err)
			return nil, err
		}
	}

	batch.Duration = timer.WithField("attempts", batch.Attempts).Stop()
	return batch, nil
}

// next draws one output, retrying while uniqueness rejects it
func (s *Service) next(ctx context.Context, root pattern.Node, text string, rng random.Source, unique bool, seen map[string]bool) (string, int, error) {
	if !unique {
		return pattern.Generate(root, rng), 1, nil
	}

	for attempt := 1; attempt <= s.opts.MaxAttempts; attempt++ {
		out := pattern.Generate(root, rng)
		if seen[out] {
			continue
		}
		if s.history != nil {
			issued, err := s.history.Exists(ctx, text, out)
			if err != nil {
				return "", attempt, err
			}
			if issued {
				continue
			}
		}
		return out, attempt, nil
	}

	return "", s.opts.MaxAttempts, nomerror.Newf("no unused output after %d attempts", s.opts.MaxAttempts).
		WithCode(nomerror.CodeExhausted).
		WithDetail("pattern", text).
		WithDetail("attempts", s.opts.MaxAttempts)
}
