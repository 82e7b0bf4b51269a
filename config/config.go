// Package config loads chronoid configuration from files, environment
// variables and defaults using Viper.
package config

import (
	"github.com/chronoid/chronoid/catalog"
	"github.com/chronoid/chronoid/errors"
)

// Config is the full chronoid configuration.
type Config struct {
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Analysis AnalysisConfig `mapstructure:"analysis"`
	Log      LogConfig      `mapstructure:"log"`
}

// CatalogConfig selects the format catalog and tie-break priority.
type CatalogConfig struct {
	// Path to a YAML catalog file. Empty means the built-in catalog.
	Path string `mapstructure:"path"`
	// Priority lists category names, most preferred first. When set it
	// replaces any priority carried by the catalog file.
	Priority []string `mapstructure:"priority"`
	// Watch enables reloading when the catalog file changes.
	Watch bool `mapstructure:"watch"`
}

// AnalysisConfig tunes the overlap analysis.
type AnalysisConfig struct {
	// Workers for the pairwise comparison pool. 0 means one per CPU.
	Workers int `mapstructure:"workers"`
}

// LogConfig controls log output.
type LogConfig struct {
	JSON      bool `mapstructure:"json"`
	Verbosity int  `mapstructure:"verbosity"`
}

// Definitions resolves the configured catalog into format definitions
// and a tie-break priority. An explicit priority in the config wins
// over one embedded in the catalog file.
func (c *Config) Definitions() ([]catalog.FormatDefinition, *catalog.Priority, error) {
	var defs []catalog.FormatDefinition
	var filePrio *catalog.Priority

	if c.Catalog.Path == "" {
		defs = catalog.Builtin()
	} else {
		file, err := catalog.DecodeFile(c.Catalog.Path)
		if err != nil {
			return nil, nil, err
		}
		defs = file.Formats
		if len(file.Priority) > 0 {
			filePrio, err = catalog.NewPriority(file.Priority)
			if err != nil {
				return nil, nil, errors.Wrapf(err, "catalog file %s", c.Catalog.Path)
			}
		}
	}

	if len(c.Catalog.Priority) > 0 {
		cats := make([]catalog.Category, len(c.Catalog.Priority))
		for i, name := range c.Catalog.Priority {
			cats[i] = catalog.Category(name)
		}
		prio, err := catalog.NewPriority(cats)
		if err != nil {
			return nil, nil, err
		}
		return defs, prio, nil
	}
	return defs, filePrio, nil
}
