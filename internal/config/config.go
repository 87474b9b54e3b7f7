// Package config loads tool configuration: defaults first, then an
// optional atena.yaml, then ATENA_* environment variables, highest last.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all atena configuration.
type Config struct {
	// ProvidersFile points at a YAML provider master. Empty means the
	// built-in master.
	ProvidersFile string
	// PreviewLimit caps the preview table row count.
	PreviewLimit int
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// Load reads configuration. A missing config file is not an error; an
// unreadable or malformed one is.
func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("providers_file", "")
	v.SetDefault("preview_limit", 100)
	v.SetDefault("log_level", "info")

	v.SetConfigName("atena")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/atena")

	v.SetEnvPrefix("ATENA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: %w", err)
		}
	}

	return Config{
		ProvidersFile: v.GetString("providers_file"),
		PreviewLimit:  v.GetInt("preview_limit"),
		LogLevel:      v.GetString("log_level"),
	}, nil
}
