package cmd

import (
	"fmt"

	"github.com/metal-toolbox/hwmanager/internal/version"
	"github.com/spf13/cobra"
)

var cmdVersion = &cobra.Command{
	Use:   "version",
	Short: "Print hwmanager version along with dependency information.",
	Run: func(_ *cobra.Command, args []string) {
		fmt.Printf(
			"commit: %s\nbranch: %s\ngit summary: %s\nbuildDate: %s\nversion: %s\nGo version: %s\nbmclib version: %s\ncommon version: %s\n",
			version.GitCommit, version.GitBranch, version.GitSummary, version.BuildDate, version.AppVersion, version.GoVersion, version.BmclibVersion, version.CommonVersion)
	},
}

func init() {
	rootCmd.AddCommand(cmdVersion)
}
