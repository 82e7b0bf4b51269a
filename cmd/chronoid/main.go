package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chronoid/chronoid/cmd/chronoid/commands"
	"github.com/chronoid/chronoid/config"
	"github.com/chronoid/chronoid/logger"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "chronoid",
	Short: "chronoid - Timestamp format identification",
	Long: `chronoid - Identify which timestamp format produced a string.

chronoid matches inputs against a catalog of timestamp format patterns,
ranks the matches by how specific their languages are, and reports a
unique winner or an honest ambiguity.

Available commands:
  identify - Classify one or more timestamp strings
  overlaps - Show the containment structure of the catalog
  check    - Validate a catalog file
  version  - Show version information

Examples:
  chronoid identify 1716159600            # Unique: UNIX_SECONDS
  chronoid identify "2025-05-19 14:30:15" # From the built-in catalog
  chronoid identify --catalog my.yaml -   # Read inputs from stdin
  chronoid overlaps                       # Containment between formats
  chronoid check my.yaml                  # Validate before deploying`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		// Flags override file and environment settings.
		if verbosity, _ := cmd.Flags().GetCount("verbose"); verbosity > 0 {
			cfg.Log.Verbosity = verbosity
		}
		if cmd.Flags().Changed("json") {
			cfg.Log.JSON, _ = cmd.Flags().GetBool("json")
		}
		if catalogPath, _ := cmd.Flags().GetString("catalog"); catalogPath != "" {
			cfg.Catalog.Path = catalogPath
		}
		if cmd.Flags().Changed("watch") {
			cfg.Catalog.Watch, _ = cmd.Flags().GetBool("watch")
		}

		if err := logger.InitializeWithLevel(cfg.Log.JSON, logger.VerbosityToLevel(cfg.Log.Verbosity)); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		commands.SetConfig(cfg)
		return nil
	},
}

func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFromFile(configPath)
	}
	return config.Load()
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	rootCmd.PersistentFlags().Bool("json", false, "Output results as JSON")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a chronoid config file")
	rootCmd.PersistentFlags().String("catalog", "", "Path to a YAML catalog file (default: built-in catalog)")
	rootCmd.PersistentFlags().Bool("watch", false, "Reload the catalog file when it changes")

	rootCmd.AddCommand(commands.IdentifyCmd)
	rootCmd.AddCommand(commands.OverlapsCmd)
	rootCmd.AddCommand(commands.CheckCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
