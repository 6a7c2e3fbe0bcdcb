// Package config provides configuration loading for the Rentora client.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultAPIURL is the local development backend address used when no
// configuration is present.
const DefaultAPIURL = "http://localhost:8081/api"

// Config holds all client-side configuration.
type Config struct {
	// APIURL is the backend base address. Overridden by RENTORA_API_URL.
	APIURL string `mapstructure:"api_url"`
	// Timeout is the per-request ceiling.
	Timeout time.Duration `mapstructure:"timeout"`
	// SessionFile is where the persisted session lives.
	SessionFile string `mapstructure:"session_file"`
}

// Load reads configuration from an optional rentora.yaml (current
// directory or ~/.rentora) and RENTORA_* environment variables. Missing
// configuration is not an error; everything has a local-development
// default.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("rentora")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".rentora"))
		v.SetDefault("session_file", filepath.Join(home, ".rentora", "session.json"))
	} else {
		v.SetDefault("session_file", "session.json")
	}

	v.SetEnvPrefix("RENTORA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("api_url", DefaultAPIURL)
	v.SetDefault("timeout", 10*time.Second)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
