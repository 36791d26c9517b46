// ============================================================================
// nomen - pattern based name and code generator
// ============================================================================
//
// Package:     cmd
// Description: generate command
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package cmd

import (
	"github.com/spf13/cobra"

	nomlog "github.com/msto63/nomen/foundation/core/log"
	"github.com/msto63/nomen/internal/generator"
)

var (
	genCount    int
	genSeed     string
	genCalcSeed uint64
	genUnique   bool
)

var generateCmd = &cobra.Command{
	Use:     "generate <pattern|@preset>",
	Aliases: []string{"gen", "g"},
	Short:   "Generate outputs from a pattern",
	Long: `Generate one or more outputs from a pattern expression or preset.

The seed is taken from --calc-seed when given, otherwise derived from
--seed, otherwise from the clock. The pretty output shows the seed so a
run can be repeated with --calc-seed.

Examples:
  nomen generate "c:2:4-v-{d-%AB}" -n 5
  nomen generate @username -s alice
  nomen generate @pin --calc-seed 1234 --not-pretty`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().IntVarP(&genCount, "count", "n", 0, "number of outputs (default from config, 1)")
	generateCmd.Flags().StringVarP(&genSeed, "seed", "s", "", "seed text, hashed into a numeric seed")
	generateCmd.Flags().Uint64VarP(&genCalcSeed, "calc-seed", "c", 0, "previously calculated numeric seed")
	generateCmd.Flags().BoolVarP(&genUnique, "unique", "u", false, "never repeat an output within the run or the history")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	a := current

	req := generator.Request{
		Expression: args[0],
		Count:      a.cfg.Generate.Count,
		SeedText:   genSeed,
		Unique:     genUnique,
	}
	if cmd.Flags().Changed("count") {
		req.Count = genCount
	}
	if cmd.Flags().Changed("calc-seed") {
		seed := genCalcSeed
		req.Seed = &seed
	}

	batch, err := a.service.Generate(cmd.Context(), req)
	if err != nil {
		return err
	}

	a.logger.WithRunID(batch.RunID).Info("batch generated", nomlog.Fields{
		"seed":     batch.Seed,
		"count":    len(batch.Outputs),
		"attempts": batch.Attempts,
	})
	printer(cmd).Batch(batch)
	return nil
}
