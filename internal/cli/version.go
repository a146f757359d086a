package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccinit-cli/ccinit/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if version.IsDevBuild() {
			fmt.Fprintf(cmd.OutOrStdout(), "ccinit %s (development build)\n", version.Version)
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "ccinit %s (commit %s, built %s)\n",
			version.Version, version.Commit, version.BuildDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
