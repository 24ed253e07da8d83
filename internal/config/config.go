// Package config resolves runtime configuration from flags,
// environment variables, and an optional .env file, in that order of
// precedence. All settings live under the DEALFLOW_ prefix.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/openfield/dealflow/pkg/logging"
)

// Config holds the resolved runtime settings.
type Config struct {
	// StorePath is the live workbook file, typically inside a
	// cloud-synced directory.
	StorePath string

	// TempDir stages writes outside the synced directory.
	TempDir string

	// MirrorPath is the sqlite mirror of cleaned occupational comps.
	MirrorPath string

	LogLevel  string
	LogFormat string
}

// Load reads the .env file if present, then resolves settings through
// viper. Flag bindings registered by the CLI take precedence over the
// environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logging.Debug().Err(err).Msg("no .env file loaded")
	}

	viper.SetEnvPrefix("DEALFLOW")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("store", "dealflow.yaml")
	viper.SetDefault("temp-dir", os.TempDir())
	viper.SetDefault("mirror", "")
	viper.SetDefault("log-level", "info")
	viper.SetDefault("log-format", "console")

	return &Config{
		StorePath:  viper.GetString("store"),
		TempDir:    viper.GetString("temp-dir"),
		MirrorPath: viper.GetString("mirror"),
		LogLevel:   viper.GetString("log-level"),
		LogFormat:  viper.GetString("log-format"),
	}
}

// GetString reads a single key, preferring the process environment
// when viper has no value.
func GetString(key string) string {
	if v := viper.GetString(key); v != "" {
		return v
	}
	return os.Getenv(key)
}
