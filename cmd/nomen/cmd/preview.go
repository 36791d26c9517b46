// ============================================================================
// nomen - pattern based name and code generator
// ============================================================================
//
// Package:     cmd
// Description: CLI command for the interactive preview TUI
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package cmd

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/msto63/nomen/internal/random"
	"github.com/msto63/nomen/internal/tui/preview"
)

var previewSamples int

var previewCmd = &cobra.Command{
	Use:   "preview [pattern]",
	Short: "Edit a pattern with live samples",
	Long: `Starts an interactive editor that recompiles the pattern on every
keystroke and shows a fresh set of samples or the compile error.

Keys:
  ctrl+r      new seed
  esc, ctrl+c quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().IntVarP(&previewSamples, "samples", "n", 8, "number of samples shown")
}

func runPreview(cmd *cobra.Command, args []string) error {
	expr := ""
	if len(args) == 1 {
		expr = args[0]
	}

	m := preview.NewModel(preview.Config{
		Compiler: current.service,
		Pattern:  expr,
		Seed:     random.SeedFromTime(time.Now()),
		Samples:  previewSamples,
	})

	p := tea.NewProgram(m,
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
		tea.WithContext(cmd.Context()),
	)
	_, err := p.Run()
	return err
}
