package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	configName = ".bstree"
	configType = "yaml"
	envPrefix  = "BSTREE"
)

// DefaultMeasureN is the number of values inserted by measure.
const DefaultMeasureN = 1024

// Config of the bstree command.
type Config struct {
	Verbose bool          `mapstructure:"verbose"`
	NoColor bool          `mapstructure:"no_color"`
	Measure MeasureConfig `mapstructure:"measure"`
}

type MeasureConfig struct {
	N    int   `mapstructure:"n"`
	Seed int64 `mapstructure:"seed"`
}

// flagKeys maps config keys to the flags that override them.
var flagKeys = map[string]string{
	"verbose":      "verbose",
	"no_color":     "no-color",
	"measure.n":    "n",
	"measure.seed": "seed",
}

// LoadConfig reads defaults, then the config file, then BSTREE_* environment
// variables, then the flags of cmd that were set. A missing config file isn't
// an error unless configPath names it explicitly.
func LoadConfig(configPath string, cmd *cobra.Command) (*Config, error) {
	viperCfg := viper.New()

	viperCfg.SetDefault("verbose", false)
	viperCfg.SetDefault("no_color", false)
	viperCfg.SetDefault("measure.n", DefaultMeasureN)
	viperCfg.SetDefault("measure.seed", 0)

	viperCfg.SetConfigType(configType)
	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viperCfg.AutomaticEnv()

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(configName)
		viperCfg.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viperCfg.AddConfigPath(home)
		}
	}

	if cmd != nil {
		for key, name := range flagKeys {
			if f := cmd.Flags().Lookup(name); f != nil {
				if err := viperCfg.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFound) {
			return nil, fmt.Errorf("read config: %w", readErr)
		}
	}

	var cfg Config

	if err := viperCfg.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// ErrInvalidMeasureN is returned for a non-positive measure.n.
var ErrInvalidMeasureN = errors.New("measure.n must be positive")

func (c *Config) Validate() error {
	if c.Measure.N <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidMeasureN, c.Measure.N)
	}
	return nil
}
