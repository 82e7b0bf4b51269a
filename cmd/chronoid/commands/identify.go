package commands

import (
	"bufio"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chronoid/chronoid/classify"
	"github.com/chronoid/chronoid/config"
	"github.com/chronoid/chronoid/display"
	"github.com/chronoid/chronoid/logger"
)

// IdentifyCmd classifies timestamp strings against the catalog.
var IdentifyCmd = &cobra.Command{
	Use:   "identify <timestamp>...",
	Short: "Classify timestamp strings",
	Long: `Classify one or more timestamp strings against the format catalog.

Every format in the catalog is tried against each input. When several
formats match, the most specific ones win; remaining ties are either
resolved by the catalog's category priority or reported as ambiguous.

Pass "-" as the only argument to read inputs from stdin, one per line.
With --watch and a catalog file, stdin mode reloads the catalog
whenever the file changes.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := buildEngine(cmd.Context())
		if err != nil {
			return err
		}

		if len(args) == 1 && args[0] == "-" {
			return identifyStream(cmd, engine)
		}

		for _, input := range args {
			if err := identifyOne(cmd, engine, input); err != nil {
				return err
			}
		}
		return nil
	},
}

func identifyOne(cmd *cobra.Command, engine *classify.Engine, input string) error {
	res, err := engine.Classify(input)
	if err != nil {
		return err
	}
	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(res)
	}
	display.RenderResult(engine.Registry(), res)
	return nil
}

// identifyStream classifies stdin lines until EOF, optionally reloading
// the catalog when the watched file changes.
func identifyStream(cmd *cobra.Command, engine *classify.Engine) error {
	if cfg.Catalog.Watch && cfg.Catalog.Path != "" {
		watcher, err := config.NewCatalogWatcher(cfg.Catalog.Path)
		if err != nil {
			return err
		}
		defer watcher.Stop()

		watcher.OnReload(func(path string) error {
			defs, prio, err := cfg.Definitions()
			if err != nil {
				return err
			}
			return engine.Reload(cmd.Context(), defs, prio, analysisOptions())
		})
		watcher.Start()
		logger.Infow("watching catalog file",
			logger.FieldCatalog, cfg.Catalog.Path)
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if err := identifyOne(cmd, engine, input); err != nil {
			return err
		}
	}
	return scanner.Err()
}
