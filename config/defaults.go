package config

import "github.com/spf13/viper"

// SetDefaults configures default values for all configuration options.
func SetDefaults(v *viper.Viper) {
	// Catalog defaults. An empty path selects the built-in catalog.
	v.SetDefault("catalog.path", "")
	v.SetDefault("catalog.priority", []string{})
	v.SetDefault("catalog.watch", false)

	// Analysis defaults. 0 workers means one per CPU.
	v.SetDefault("analysis.workers", 0)

	// Log defaults
	v.SetDefault("log.json", false)
	v.SetDefault("log.verbosity", 0)
}
