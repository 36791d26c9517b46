// ============================================================================
// nomen - pattern based name and code generator
// ============================================================================
//
// Package:     cmd
// Description: Root command, global flags and shared setup
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package cmd

import (
	"os"

	"github.com/spf13/cobra"

	nomlog "github.com/msto63/nomen/foundation/core/log"
	"github.com/msto63/nomen/internal/generator"
	"github.com/msto63/nomen/internal/history"
	"github.com/msto63/nomen/internal/output"
	"github.com/msto63/nomen/internal/pattern"
	"github.com/msto63/nomen/internal/presets"
	"github.com/msto63/nomen/pkg/core/config"
	"github.com/msto63/nomen/pkg/core/logging"
)

var (
	cfgFile   string
	verbose   bool
	notPretty bool
)

// app holds everything a command needs, built once per invocation
type app struct {
	cfg      *config.Config
	logger   *nomlog.Logger
	compiler *pattern.Compiler
	presets  *presets.Library
	store    *history.Store
	service  *generator.Service
}

var current *app

var rootCmd = &cobra.Command{
	Use:   "nomen",
	Short: "nomen - pattern based name and code generator",
	Long: `nomen generates names, codes and identifiers from short pattern
expressions with a reproducible random seed.

Pattern syntax:
  c v d        one consonant, vowel or digit
  s            one space
  %text        literal text
  x:3 x:2:5    repeat exactly 3 times, or 2 to 5 times
  x?30         include x with 30% chance (x? means 50%)
  x#           one character of what x produced
  [a-b]        a then b
  {a-b}        a or b
  @name        a named preset, see 'nomen presets'`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return teardown()
	},
}

// Execute runs the root command and reports any error on stderr
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		output.New(rootCmd.ErrOrStderr(), !notPretty).Error(err)
		teardown()
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $NOMEN_CONFIG, ./nomen.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")
	rootCmd.PersistentFlags().BoolVar(&notPretty, "not-pretty", false, "print plain output without styling")
}

// setup loads the configuration and wires the services
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logCfg := logging.LoggerConfig{
		ServiceName: "nomen",
		Level:       cfg.General.LogLevel,
		Format:      cfg.General.LogFormat,
		Output:      cmd.ErrOrStderr(),
	}
	if verbose {
		logCfg.Level = "debug"
	}
	logger := logging.NewLogger(logCfg)
	logger.Debug("configuration loaded", nomlog.Fields{"source": cfg.Source()})

	compiler := pattern.NewCompiler(pattern.Options{
		Logger:    logger,
		MaxRepeat: cfg.Generate.MaxRepeat,
	})

	library := presets.NewLibrary(presets.Options{Compiler: compiler, Logger: logger})
	if cfg.Presets.File != "" {
		if err := library.LoadFile(cfg.Presets.File); err != nil {
			return err
		}
	}

	a := &app{
		cfg:      cfg,
		logger:   logger,
		compiler: compiler,
		presets:  library,
	}

	opts := generator.Options{
		Compiler:         compiler,
		Presets:          library,
		Logger:           logger,
		MaxPatternLength: cfg.Generate.MaxPatternLength,
		MaxOutputLength:  cfg.Generate.MaxOutputLength,
		MaxAttempts:      cfg.History.MaxAttempts,
	}
	if cfg.History.Enabled {
		store, err := history.Open(history.Config{Path: cfg.History.Path})
		if err != nil {
			return err
		}
		a.store = store
		opts.History = store
	}
	a.service = generator.New(opts)

	current = a
	return nil
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}
	return config.LoadFromEnv()
}

func teardown() error {
	if current == nil {
		return nil
	}
	a := current
	current = nil
	if a.store != nil {
		return a.store.Close()
	}
	return nil
}

// printer returns a printer for stdout honoring config and --not-pretty
func printer(cmd *cobra.Command) *output.Printer {
	pretty := !notPretty
	if current != nil && !current.cfg.PrettyOutput() {
		pretty = false
	}
	return output.New(cmd.OutOrStdout(), pretty)
}

// fileExists reports whether path names an existing file
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
