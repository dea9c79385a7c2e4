// Package config loads the optional .fjrc file that seeds default
// values for the cmd/fj flags (color output, warnings-as-errors,
// trace mode). FJ's core has no notion of configuration; this exists
// purely for the CLI driver, the way a cobra-based tool in this corpus
// always carries one next to its flag parsing.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config holds every value cmd/fj can source from .fjrc instead of a
// flag. A true warnings_as_errors, trace or show_tree loaded here switches
// the matching flag on; passing that flag as false does not switch it off.
// --no-color turns color off whatever is loaded here.
type Config struct {
	WarningsAsErrors bool `mapstructure:"warnings_as_errors"`
	Trace            bool `mapstructure:"trace"`
	Color            bool `mapstructure:"color"`
	ShowTree         bool `mapstructure:"show_tree"`
}

// Load reads .fjrc from configPath, or searches the current directory
// and $HOME for one named ".fjrc" if configPath is empty. A missing
// file is not an error — Load returns the defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(".fjrc")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if !isNotFound(err) {
			return nil, fmt.Errorf("failed to read .fjrc: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal .fjrc: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("warnings_as_errors", false)
	v.SetDefault("trace", false)
	v.SetDefault("color", true)
	v.SetDefault("show_tree", true)
}

func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return true
	}
	return os.IsNotExist(err)
}
