package commands

import (
	"github.com/spf13/cobra"

	"github.com/chronoid/chronoid/display"
)

// CheckCmd validates a catalog file before it is deployed.
var CheckCmd = &cobra.Command{
	Use:   "check [catalog-file]",
	Short: "Validate a catalog file",
	Long: `Validate a catalog: patterns must compile, stay within the supported
regex subset, carry known categories, and every format's example must
match its own pattern. The overlap analysis then runs so contradictory
catalogs are rejected and indistinguishable formats are reported.

With no argument the configured catalog is checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			cfg.Catalog.Path = args[0]
		}

		engine, err := buildEngine(cmd.Context())
		if err != nil {
			return err
		}

		if display.ShouldOutputJSON(cmd) {
			return display.OutputJSON(overlapReport(engine.Graph(), engine.Ranks()))
		}
		display.RenderCheck(engine.Registry(), engine.Graph())
		return nil
	},
}
