package cmd

import (
	"github.com/spf13/cobra"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List named presets",
	Long: `List the built-in presets and those from the preset file named in
the [presets] section of the config. Use a preset as @name wherever a
pattern is expected.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		printer(cmd).Presets(current.presets.List())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}
