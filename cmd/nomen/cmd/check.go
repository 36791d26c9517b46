package cmd

import (
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <pattern|@preset>",
	Short: "Compile a pattern and show its structure",
	Long: `Compile a pattern without generating anything. On success the node
tree is printed together with the possible output length; on failure the
error names its kind and the offset where compilation stopped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, text, err := current.service.Compile(args[0])
		if err != nil {
			return err
		}
		printer(cmd).Tree(args[0], text, root)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
