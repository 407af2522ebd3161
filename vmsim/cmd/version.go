package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set at link time with -ldflags "-X ...cmd.version=v1.2.3".
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of vmsim",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "vmsim %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
