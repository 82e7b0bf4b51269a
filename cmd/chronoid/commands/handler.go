// Package commands implements the chronoid CLI subcommands.
package commands

import (
	"context"

	"github.com/chronoid/chronoid/classify"
	"github.com/chronoid/chronoid/config"
	"github.com/chronoid/chronoid/overlap"
)

// cfg holds the configuration resolved by the root command. SetConfig
// runs before any subcommand.
var cfg = &config.Config{}

// SetConfig installs the resolved configuration for all subcommands.
func SetConfig(c *config.Config) {
	cfg = c
}

func analysisOptions() overlap.Options {
	return overlap.Options{Workers: cfg.Analysis.Workers}
}

// buildEngine loads the configured catalog and runs the overlap
// analysis, returning a ready classification engine.
func buildEngine(ctx context.Context) (*classify.Engine, error) {
	defs, prio, err := cfg.Definitions()
	if err != nil {
		return nil, err
	}
	return classify.NewEngine(ctx, defs, prio, analysisOptions())
}
