package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LoaderOptions controls where settings are read from.
type LoaderOptions struct {
	// ConfigFile is an explicit YAML file path. When empty, config.yml is
	// searched in . and ./config.
	ConfigFile string
	// EnvFile is an explicit .env file path. When empty, ./.env is loaded if
	// it exists.
	EnvFile string
	// EnvPrefix namespaces environment overrides. Defaults to the upper-cased
	// client name with dashes replaced by underscores.
	EnvPrefix string
}

// Load reads, defaults, and validates Settings for the named client.
// Environment variables override file values; a missing config file is not an
// error as long as the result validates.
func Load(clientName string, opts LoaderOptions) (*Settings, error) {
	if err := loadEnvFile(opts.EnvFile); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	prefix := opts.EnvPrefix
	if prefix == "" {
		prefix = strings.ToUpper(strings.ReplaceAll(clientName, "-", "_"))
	}
	v.SetEnvPrefix(prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.ConfigFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	settings.ApplyDefaults()
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &settings, nil
}

func loadEnvFile(path string) error {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("config: load env file %s: %w", path, err)
		}
		return nil
	}
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return fmt.Errorf("config: load .env: %w", err)
		}
	}
	return nil
}
