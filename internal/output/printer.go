// ============================================================================
// nomen - pattern based name and code generator
// ============================================================================
//
// Package:     output
// Description: Plain and styled rendering of command results
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package output

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	nomerror "github.com/msto63/nomen/foundation/core/error"
	"github.com/msto63/nomen/internal/generator"
	"github.com/msto63/nomen/internal/history"
	"github.com/msto63/nomen/internal/pattern"
	"github.com/msto63/nomen/internal/presets"
	"github.com/msto63/nomen/internal/tui"
	"github.com/msto63/nomen/pkg/core/version"
)

// Printer writes command results either as raw lines or styled for a terminal
type Printer struct {
	w      io.Writer
	pretty bool
}

// New creates a printer writing to w
func New(w io.Writer, pretty bool) *Printer {
	return &Printer{w: w, pretty: pretty}
}

// Pretty reports whether styled output is enabled
func (p *Printer) Pretty() bool {
	return p.pretty
}

// Batch prints generated outputs. Plain mode writes exactly one output per
// line and nothing else.
func (p *Printer) Batch(b *generator.Batch) {
	if !p.pretty {
		for _, out := range b.Outputs {
			fmt.Fprintln(p.w, out)
		}
		return
	}

	lines := make([]string, len(b.Outputs))
	for i, out := range b.Outputs {
		lines[i] = tui.IndexStyle.Render(fmt.Sprintf("%d.", i+1)) + tui.OutputStyle.Render(out)
	}
	if len(b.Outputs) == 1 {
		lines[0] = tui.OutputStyle.Render(b.Outputs[0])
	}

	fmt.Fprintln(p.w, tui.BoxStyle.Render(strings.Join(lines, "\n")))
	fmt.Fprintln(p.w, tui.SubtitleStyle.Render(
		fmt.Sprintf("seed %d · reproduce with --calc-seed %d", b.Seed, b.Seed)))
}

// Tree prints the compiled structure of a pattern
func (p *Printer) Tree(expr, text string, root pattern.Node) {
	shortest, longest := pattern.Length(root)
	summary := fmt.Sprintf("%d nodes, depth %d, output length %s",
		pattern.Count(root), pattern.Depth(root), lengthRange(shortest, longest))

	if !p.pretty {
		if expr != text {
			fmt.Fprintf(p.w, "%s = %s\n", expr, text)
		}
		fmt.Fprint(p.w, pattern.Tree(root))
		fmt.Fprintln(p.w, summary)
		return
	}

	header := tui.RenderTitle(text)
	if expr != text {
		header = tui.RenderTitle(expr) + tui.SubtitleStyle.Render(" = "+text)
	}
	fmt.Fprintln(p.w, header)
	fmt.Fprint(p.w, pattern.Tree(root))
	fmt.Fprintln(p.w, tui.SubtitleStyle.Render(summary))
}

func lengthRange(shortest, longest int) string {
	if shortest == longest {
		return fmt.Sprint(shortest)
	}
	return fmt.Sprintf("%d..%d", shortest, longest)
}

// Presets prints the preset library
func (p *Printer) Presets(list []presets.Preset) {
	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
	for _, preset := range list {
		origin := "builtin"
		if !preset.Builtin {
			origin = preset.Source
		}
		name := "@" + preset.Name
		if p.pretty {
			name = tui.OutputStyle.Render(name)
			origin = tui.SubtitleStyle.Render(origin)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", name, preset.Pattern, preset.Description, origin)
	}
	tw.Flush()
}

// History prints recorded outputs, newest first
func (p *Printer) History(entries []history.Entry) {
	if len(entries) == 0 {
		if p.pretty {
			fmt.Fprintln(p.w, tui.SubtitleStyle.Render("history is empty"))
		}
		return
	}

	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
	for _, e := range entries {
		output := e.Output
		if p.pretty {
			output = tui.OutputStyle.Render(output)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n",
			e.CreatedAt.Local().Format("2006-01-02 15:04:05"), output, e.Pattern, e.Seed, e.RunID)
	}
	tw.Flush()
}

// Version prints build information
func (p *Printer) Version(info version.Info) {
	if !p.pretty {
		fmt.Fprintln(p.w, info.String())
		return
	}
	fmt.Fprintln(p.w, lipgloss.JoinHorizontal(lipgloss.Top,
		tui.RenderTitle("nomen "+info.Version),
		tui.SubtitleStyle.Render(fmt.Sprintf("  %s · %s · %s", info.Commit, info.GoVersion, info.Platform)),
	))
}

// Error prints err with its code, if it carries one
func (p *Printer) Error(err error) {
	if err == nil {
		return
	}
	code := ""
	var nomErr *nomerror.Error
	if errors.As(err, &nomErr) && nomErr.Code() != nomerror.CodeUnknown {
		code = string(nomErr.Code())
	}

	if !p.pretty {
		if code != "" {
			fmt.Fprintf(p.w, "error [%s]: %v\n", code, err)
			return
		}
		fmt.Fprintf(p.w, "error: %v\n", err)
		return
	}
	fmt.Fprintln(p.w, tui.RenderError(code, err.Error()))
}
