// Copyright (c) 2025 Legend Score Team
// lscli - terminal client for the Legend Score administration API
// This source code is licensed under the MIT license found in the LICENSE file.

// package config loads the lscli configuration. Precedence, lowest to
// highest: built-in defaults, lscli.yaml (user config dir, then the working
// directory), LSCLI_* environment variables, command-line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the resolved application configuration.
type Config struct {
	API      APIConfig `mapstructure:"api"`
	Language string    `mapstructure:"language"`
	Debug    bool      `mapstructure:"debug"`
}

// APIConfig holds the backend connection settings. BaseURL is resolved once
// at startup; an empty value makes the client fall back to its development
// default.
type APIConfig struct {
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`
}

// getConfigPath returns the full path for the user configuration file.
func getConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not get user config directory: %w", err)
	}
	return filepath.Join(configDir, "lscli", "lscli.yaml"), nil
}

// Load resolves the configuration for the given command. The command's
// flags are bound into viper so that flag values take precedence over file
// and environment sources. An explicit config file path (from --config)
// overrides the search locations.
func Load(cmd *cobra.Command, explicitPath string) (Config, error) {
	var c Config
	v := viper.New()

	v.SetDefault("api.base_url", "")
	v.SetDefault("language", "en")
	v.SetDefault("debug", false)

	v.SetConfigName("lscli")
	v.SetConfigType("yaml")

	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
	}
	if userConfigPath, err := getConfigPath(); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; anything else is fatal.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
	}

	v.AutomaticEnv()
	v.AllowEmptyEnv(true)
	v.SetEnvPrefix("lscli")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Flag names use dashes while config keys use dots, so each flag is
	// bound to its key explicitly.
	if cmd != nil {
		bindings := map[string]string{
			"api.base_url": "api-base-url",
			"language":     "lang",
			"debug":        "debug",
		}
		for key, name := range bindings {
			if f := cmd.PersistentFlags().Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return c, err
				}
			}
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	return c, nil
}

// WriteConfigFile persists the configuration to the user config location.
func WriteConfigFile(c *Config) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	return os.WriteFile(path, data, 0600)
}
