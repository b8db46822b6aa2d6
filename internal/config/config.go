package config

import (
	"errors"
	"io"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"handrank-server/internal/util"
)

// Config provides configuration for the hand evaluation server
type Config struct {
	loaded bool
	Addr   string `yaml:"addr" envconfig:"addr"`
	Log    struct {
		Level             string `yaml:"level" envconfig:"level"`
		Format            string `yaml:"format" envconfig:"format"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
	CORS struct {
		AllowedOrigins []string `yaml:"allowedOrigins" envconfig:"allowed_origins"`
	} `yaml:"cors"`
	// MaxBatch is the most hands a single batch request may evaluate
	MaxBatch  int `yaml:"maxBatch" envconfig:"max_batch"`
	WebSocket struct {
		Enabled bool `yaml:"enabled" envconfig:"enabled"`
	} `yaml:"webSocket"`
}

var config Config

// DefaultConfig returns the configuration used when no file is present
func DefaultConfig() Config {
	cfg := Config{
		Addr:     ":5000",
		MaxBatch: 100,
	}

	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.CORS.AllowedOrigins = []string{"*"}
	cfg.WebSocket.Enabled = true

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// Values from the YAML file override the defaults, and environment variables
// prefixed with HANDRANK_ override both. A missing file is not an error.
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("HANDRANK_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if file != nil {
		defer file.Close()

		// an empty file decodes to io.EOF
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
	}

	if err := envconfig.Process("handrank", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
