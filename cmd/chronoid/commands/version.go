package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chronoid/chronoid/display"
	"github.com/chronoid/chronoid/version"
)

// VersionCmd shows version and build information.
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show chronoid version information",
	Long:  `Display version, build time, commit hash, and platform information for the chronoid binary.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.Get()

		if display.ShouldOutputJSON(cmd) {
			return display.OutputJSON(info)
		}
		fmt.Println(info.String())
		fmt.Printf("Platform: %s\n", info.Platform)
		fmt.Printf("Go: %s\n", info.GoVersion)
		return nil
	},
}
