// ============================================================================
// nomen - pattern based name and code generator
// ============================================================================
//
// Package:     preview
// Description: Interactive pattern editor with live samples
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package preview

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	nomerror "github.com/msto63/nomen/foundation/core/error"
	"github.com/msto63/nomen/internal/pattern"
	"github.com/msto63/nomen/internal/random"
	"github.com/msto63/nomen/internal/tui"
)

// Compiler resolves and compiles an expression, see generator.Service
type Compiler interface {
	Compile(expr string) (pattern.Node, string, error)
}

// Config configures the preview model
type Config struct {
	Compiler Compiler
	Pattern  string
	Seed     uint64
	Samples  int
	// NewSeed is called on ctrl+r, defaults to the clock
	NewSeed func() uint64
}

// Model is the bubbletea model of the preview screen
type Model struct {
	input    textinput.Model
	compiler Compiler
	newSeed  func() uint64

	seed    uint64
	count   int
	root    pattern.Node
	text    string
	samples []string
	err     error

	width    int
	quitting bool
}

// NewModel creates a preview model and renders the initial pattern
func NewModel(cfg Config) Model {
	if cfg.Samples <= 0 {
		cfg.Samples = 8
	}
	if cfg.NewSeed == nil {
		cfg.NewSeed = func() uint64 { return random.SeedFromTime(time.Now()) }
	}

	input := textinput.New()
	input.Placeholder = "pattern or @preset, e.g. c:2:4-v-{d-%AB}"
	input.Prompt = "› "
	input.CharLimit = 512
	input.Width = 60
	input.SetValue(cfg.Pattern)
	input.Focus()

	m := Model{
		input:    input,
		compiler: cfg.Compiler,
		newSeed:  cfg.NewSeed,
		seed:     cfg.Seed,
		count:    cfg.Samples,
	}
	m.refresh()
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "ctrl+r":
			newSeed := m.newSeed
			return m, func() tea.Msg { return reseedMsg{seed: newSeed()} }
		}

	case reseedMsg:
		m.seed = msg.seed
		m.sample()
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		if msg.Width > 8 {
			m.input.Width = msg.Width - 8
		}
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.refresh()
	}
	return m, cmd
}

// refresh recompiles the current input and redraws the samples
func (m *Model) refresh() {
	m.root, m.text, m.err = nil, "", nil
	m.samples = nil

	expr := m.input.Value()
	if expr == "" {
		return
	}
	m.root, m.text, m.err = m.compiler.Compile(expr)
	if m.err != nil {
		m.root = nil
		return
	}
	m.sample()
}

// sample draws a fresh batch for the current seed. The same seed and
// pattern always show the same samples.
func (m *Model) sample() {
	if m.root == nil {
		return
	}
	rng := random.New(m.seed)
	m.samples = make([]string, m.count)
	for i := range m.samples {
		m.samples[i] = pattern.Generate(m.root, rng)
	}
}

// Samples returns the samples currently shown
func (m Model) Samples() []string {
	return m.samples
}

// Seed returns the seed of the current samples
func (m Model) Seed() uint64 {
	return m.seed
}

// Err returns the compile error of the current input
func (m Model) Err() error {
	return m.err
}

// Pattern returns the current input
func (m Model) Pattern() string {
	return m.input.Value()
}

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(tui.RenderTitle("nomen preview"))
	b.WriteString("\n\n")
	b.WriteString(tui.FocusedInputStyle.Render(m.input.View()))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		code := ""
		var nomErr *nomerror.Error
		if errors.As(m.err, &nomErr) {
			code = string(nomErr.Code())
		}
		b.WriteString(tui.RenderError(code, m.err.Error()))
	case len(m.samples) > 0:
		lines := make([]string, len(m.samples))
		for i, s := range m.samples {
			lines[i] = tui.IndexStyle.Render(fmt.Sprintf("%d.", i+1)) + tui.OutputStyle.Render(s)
		}
		b.WriteString(tui.BoxStyle.Render(strings.Join(lines, "\n")))
		if m.text != m.input.Value() {
			b.WriteString("\n" + tui.SubtitleStyle.Render("= "+m.text))
		}
	default:
		b.WriteString(tui.SubtitleStyle.Render("type a pattern to see samples"))
	}

	b.WriteString("\n")
	b.WriteString(tui.RenderHelp(fmt.Sprintf("seed %d · ctrl+r reseed · esc quit", m.seed)))
	b.WriteString("\n")
	return b.String()
}
