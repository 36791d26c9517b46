// ============================================================================
// nomen - pattern based name and code generator
// ============================================================================
//
// Package:     presets
// Description: Named pattern library with built-in and YAML-defined presets
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package presets

import (
	"os"
	"regexp"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	nomerror "github.com/msto63/nomen/foundation/core/error"
	nomlog "github.com/msto63/nomen/foundation/core/log"
	"github.com/msto63/nomen/internal/pattern"
)

// RefPrefix marks an expression as a preset reference, e.g. "@pin"
const RefPrefix = "@"

var namePattern = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)

// Preset is a named pattern expression
type Preset struct {
	Name        string `yaml:"name"`
	Pattern     string `yaml:"pattern"`
	Description string `yaml:"description"`

	// Builtin is false for presets read from a file
	Builtin bool `yaml:"-"`
	// Source is the file the preset was read from
	Source string `yaml:"-"`
}

// File is the on-disk layout of a preset library
type File struct {
	Presets []Preset `yaml:"presets"`
}

var builtins = []Preset{
	{Name: "username", Pattern: "[c-v]:2:3-d:2", Description: "pronounceable handle with a numeric suffix"},
	{Name: "pin", Pattern: "d:4", Description: "four digit PIN"},
	{Name: "code", Pattern: "{c-d}:8", Description: "eight character code of consonants and digits"},
	{Name: "password", Pattern: "{c-v-d}:12:16", Description: "letters and digits, 12 to 16 characters"},
	{Name: "syllables", Pattern: "[c-v]:2:4-c?", Description: "word-like name built from syllables"},
}

// Options configures a Library
type Options struct {
	Compiler *pattern.Compiler
	Logger   *nomlog.Logger
}

// Library holds presets by name
type Library struct {
	mu       sync.RWMutex
	presets  map[string]*Preset
	compiler *pattern.Compiler
	logger   *nomlog.Logger
}

// NewLibrary creates a library holding the built-in presets
func NewLibrary(opts Options) *Library {
	if opts.Compiler == nil {
		opts.Compiler = pattern.NewCompiler(pattern.Options{})
	}
	if opts.Logger == nil {
		opts.Logger = nomlog.Discard()
	}

	l := &Library{
		presets:  make(map[string]*Preset, len(builtins)),
		compiler: opts.Compiler,
		logger:   opts.Logger.WithField("component", "presets"),
	}
	for _, p := range builtins {
		p.Builtin = true
		l.presets[p.Name] = &p
	}
	return l
}

// LoadFile reads user presets from a YAML file. A missing file is not an
// error. Any invalid entry rejects the whole file and leaves the library
// unchanged.
func (l *Library) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		l.logger.Debug("preset file not found", nomlog.Fields{"path": path})
		return nil
	}
	if err != nil {
		return nomerror.Wrap(err, "failed to read preset file").
			WithCode(nomerror.CodeConfigError).
			WithDetail("path", path)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nomerror.Wrap(err, "invalid preset file").
			WithCode(nomerror.CodePresetInvalid).
			WithDetail("path", path)
	}

	seen := make(map[string]bool, len(file.Presets))
	for i := range file.Presets {
		p := &file.Presets[i]
		p.Source = path
		if err := l.validate(p); err != nil {
			return err
		}
		if seen[p.Name] {
			return nomerror.Newf("preset %q defined twice", p.Name).
				WithCode(nomerror.CodePresetInvalid).
				WithDetail("path", path)
		}
		seen[p.Name] = true
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range file.Presets {
		p := &file.Presets[i]
		if existing, ok := l.presets[p.Name]; ok && existing.Builtin {
			l.logger.Info("user preset overrides built-in", nomlog.Fields{"preset": p.Name, "path": path})
		}
		l.presets[p.Name] = p
	}

	l.logger.Debug("presets loaded", nomlog.Fields{"count": len(file.Presets), "path": path})
	return nil
}

// Add registers a single preset after validating it
func (l *Library) Add(p Preset) error {
	if err := l.validate(&p); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.presets[p.Name] = &p
	return nil
}

// validate checks the name and compiles the pattern
func (l *Library) validate(p *Preset) error {
	p.Name = strings.TrimSpace(p.Name)
	if !namePattern.MatchString(p.Name) {
		return nomerror.Newf("invalid preset name %q", p.Name).
			WithCode(nomerror.CodePresetInvalid).
			WithDetail("preset", p.Name)
	}
	if _, err := l.compiler.Compile(p.Pattern); err != nil {
		return nomerror.Wrap(err, "preset "+p.Name+" does not compile").
			WithCode(nomerror.CodePresetInvalid).
			WithDetail("preset", p.Name)
	}
	return nil
}

// Get returns the preset called name
func (l *Library) Get(name string) (*Preset, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	p, ok := l.presets[name]
	if !ok {
		return nil, nomerror.Newf("unknown preset %q", name).
			WithCode(nomerror.CodePresetNotFound).
			WithDetail("preset", name)
	}
	cp := *p
	return &cp, nil
}

// List returns all presets sorted by name
func (l *Library) List() []Preset {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Preset, 0, len(l.presets))
	for _, p := range l.presets {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// IsReference reports whether expr names a preset
func IsReference(expr string) bool {
	return strings.HasPrefix(expr, RefPrefix)
}

// Resolve returns the pattern for expr. Expressions starting with @ are
// looked up by name; anything else is returned unchanged.
func (l *Library) Resolve(expr string) (string, error) {
	if !IsReference(expr) {
		return expr, nil
	}
	p, err := l.Get(strings.TrimPrefix(expr, RefPrefix))
	if err != nil {
		return "", err
	}
	return p.Pattern, nil
}
