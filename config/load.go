package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/chronoid/chronoid/errors"
)

// Load reads configuration from defaults, config files and CHRONOID_*
// environment variables. File precedence, lowest to highest: system,
// user, project. Environment variables win over files.
func Load() (*Config, error) {
	return LoadWithViper(initViper())
}

// LoadWithViper unmarshals configuration from a prepared Viper instance.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &cfg, nil
}

// LoadFromFile loads configuration from one specific file, ignoring the
// usual search paths and environment variables.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}
	return LoadWithViper(v)
}

func initViper() *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix("CHRONOID")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)
	mergeConfigFiles(v)
	return v
}

// findProjectConfig walks up from the working directory looking for a
// chronoid.yaml.
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		path := filepath.Join(dir, "chronoid.yaml")
		if _, err := os.Stat(path); err == nil {
			return path
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

func mergeConfigFiles(v *viper.Viper) {
	homeDir, _ := os.UserHomeDir()

	paths := []string{
		"/etc/chronoid/chronoid.yaml",
		filepath.Join(homeDir, ".chronoid", "chronoid.yaml"),
	}
	if project := findProjectConfig(); project != "" {
		paths = append(paths, project)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		file := viper.New()
		file.SetConfigFile(path)
		if err := file.ReadInConfig(); err != nil {
			continue
		}
		for key, value := range file.AllSettings() {
			v.Set(key, value)
		}
	}
}
