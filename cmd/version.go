package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/soliterra/markfile/pkg/version"
)

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:     "version",
	Short:   "Display the version of markfile you are running",
	Example: "markfile version",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), version.Version)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
