package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/nomen/pkg/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Args:  cobra.NoArgs,
	// no config needed
	PersistentPreRunE:  func(cmd *cobra.Command, args []string) error { return nil },
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		printer(cmd).Version(version.Get())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
